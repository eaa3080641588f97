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

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService) *ReviewHandler {
	return &ReviewHandler{BaseHandler: base, reviewService: reviewService}
}

func (h *ReviewHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/reviews")
	{
		public.GET("", h.ListPublic)
	}

	// Parent only
	parent := r.Group("/reviews")
	parent.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleParent))
	{
		parent.POST("", h.Submit)
	}

	// School owner only
	owner := r.Group("/reviews")
	owner.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleSchoolOwner))
	{
		owner.POST("/:reviewId/report", h.Report)
		owner.GET("/owner", h.ListForOwner)
	}

	// Admin routes
	admin := r.Group("/admin/reviews")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListForAdmin)
	}

	decision := r.Group("/reviews")
	decision.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		decision.POST("/:reviewId/decision", h.Decide)
	}
}

// Submit handles POST /reviews. The review is published immediately on
// success; a second review for the same school by the same parent is a 409.
func (h *ReviewHandler) Submit(c *gin.Context) {
	parentID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.SubmitReview(h.GetDB(c), parentID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Report handles POST /reviews/:reviewId/report. Only the owner of the
// reviewed school may report, and only an approved review is reportable.
func (h *ReviewHandler) Report(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reviewID := c.Param("reviewId")
	if reviewID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing review id"))
		return
	}

	var req dto.ReportReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.ReportReview(h.GetDB(c), ownerID, reviewID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Decide handles POST /reviews/:reviewId/decision. accept=true rejects the
// review and keeps the dispute reason; accept=false restores it and clears
// the report.
func (h *ReviewHandler) Decide(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	reviewID := c.Param("reviewId")
	if reviewID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing review id"))
		return
	}

	var req dto.DecideReportRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.reviewService.DecideReport(h.GetDB(c), adminID, reviewID, *req.Accept)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPublic handles GET /reviews. Unauthenticated callers only ever see
// approved reviews; any other status filter is clamped.
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	var query dto.ReviewListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}
	query.Status = string(models.ReviewStatusApproved)

	resp, err := h.reviewService.ListReviewsForSchool(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListForAdmin handles GET /admin/reviews: any status, any school.
func (h *ReviewHandler) ListForAdmin(c *gin.Context) {
	var query dto.ReviewListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.reviewService.ListReviewsForSchool(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListForOwner handles GET /reviews/owner: reviews of the caller's schools
// in every status, including hidden ones the public list omits.
func (h *ReviewHandler) ListForOwner(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ReviewListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.reviewService.ListReviewsForSchoolOwner(h.GetDB(c), ownerID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
