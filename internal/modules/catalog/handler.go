package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carwash/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.GET("/services", h.List)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/services", h.Create)
	admin.PUT("/services/:id", h.Update)
	admin.DELETE("/services/:id", h.Deactivate)
}

func (h *Handler) List(c *gin.Context) {
	services, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, services)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, svc)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	svc, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Internal(c, err)
		return
	}
	response.OK(c, svc)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Service not found")
			return
		}
		response.Internal(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
