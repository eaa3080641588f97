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

type SchoolHandler struct {
	*BaseHandler
	schoolService services.SchoolService
}

func NewSchoolHandler(base *BaseHandler, schoolService services.SchoolService) *SchoolHandler {
	return &SchoolHandler{BaseHandler: base, schoolService: schoolService}
}

func (h *SchoolHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Public routes
	public := r.Group("/schools")
	{
		public.GET("", h.List)
		public.GET("/:schoolId", h.Get)
	}

	// School owner only
	owner := r.Group("/schools")
	owner.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleSchoolOwner))
	{
		owner.POST("", h.Create)
	}
}

func (h *SchoolHandler) Create(c *gin.Context) {
	ownerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSchoolRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.schoolService.CreateSchool(h.GetDB(c), ownerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *SchoolHandler) Get(c *gin.Context) {
	schoolID := c.Param("schoolId")
	if schoolID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing school id"))
		return
	}

	resp, err := h.schoolService.GetSchool(h.GetDB(c), schoolID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *SchoolHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.schoolService.ListSchools(h.GetDB(c), c.Query("city"), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
