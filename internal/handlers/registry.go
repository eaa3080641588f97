package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ReviewHandler       *ReviewHandler
	SchoolHandler       *SchoolHandler
	AnalyticsHandler    *AnalyticsHandler
	NotificationHandler *NotificationHandler
}
