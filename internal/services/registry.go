package services

import "schoolhub_backend/internal/email"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	ReviewService       ReviewService
	SchoolService       SchoolService
	NotificationService NotificationService
	EmailService        email.Provider
}
