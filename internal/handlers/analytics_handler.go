package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schoolhub_backend/internal/middleware"
	"schoolhub_backend/internal/models"
	"schoolhub_backend/internal/services"
	"schoolhub_backend/internal/services/dto"
	"schoolhub_backend/pkg/apperrors"
)

type AnalyticsHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewAnalyticsHandler(base *BaseHandler, reviewService services.ReviewService) *AnalyticsHandler {
	return &AnalyticsHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/schools/:schoolId/rating", h.SchoolRating)

	admin := r.Group("/admin/reviews")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", h.Dashboard)
	}
}

// SchoolRating handles GET /schools/:schoolId/rating — the public aggregate.
// Approved reviews only; there is no parameter to widen the scope here.
func (h *AnalyticsHandler) SchoolRating(c *gin.Context) {
	schoolID := c.Param("schoolId")
	if schoolID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing school id"))
		return
	}

	resp, err := h.reviewService.GetSchoolRatingSummary(h.GetDB(c), schoolID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Dashboard handles GET /admin/reviews/dashboard. scope=all must be asked
// for explicitly; the default remains the public view even for admins.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	var query dto.DashboardQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.reviewService.GetModerationDashboard(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
