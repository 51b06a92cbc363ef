package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carwash/internal/middleware"
	"carwash/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create is reachable by guests; OptionalAuth sets the caller id only when
// a valid token is present, so CallerID returns 0 for anonymous requests.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req, middleware.CallerID(c))
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			response.Error(c, http.StatusBadRequest, "Missing required fields")
		case errors.Is(err, ErrInvalidServiceID):
			response.Error(c, http.StatusBadRequest, "Invalid service id")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		default:
			response.Internal(c, err)
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	bookings, err := h.service.ListMine(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, bookings)
}

func (h *Handler) ListAll(c *gin.Context) {
	views, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Internal(c, err)
		return
	}
	response.OK(c, views)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, refetchFailed, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	h.writeUpdated(c, b, refetchFailed)
}

func (h *Handler) MarkDone(c *gin.Context) {
	b, refetchFailed, err := h.service.MarkDone(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	h.writeUpdated(c, b, refetchFailed)
}

func (h *Handler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, refetchFailed, err := h.service.AssignWasher(c.Request.Context(), c.Param("id"), req.WasherID)
	if err != nil {
		if errors.Is(err, ErrNotAWasher) {
			response.Error(c, http.StatusBadRequest, "Assignee is not a washer")
			return
		}
		h.writeLifecycleError(c, err)
		return
	}
	h.writeUpdated(c, b, refetchFailed)
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	b, refetchFailed, err := h.service.UpdatePayment(c.Request.Context(), c.Param("id"), req.PaymentStatus)
	if err != nil {
		h.writeLifecycleError(c, err)
		return
	}
	h.writeUpdated(c, b, refetchFailed)
}

func (h *Handler) Receipt(c *gin.Context) {
	receipt, err := h.service.Receipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}
		response.Internal(c, err)
		return
	}
	response.OK(c, receipt)
}

func (h *Handler) writeLifecycleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidPaymentStatus):
		response.Error(c, http.StatusBadRequest, "Unknown status value")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "Status transition not allowed")
	default:
		response.Internal(c, err)
	}
}

// writeUpdated returns the full booking after a lifecycle write. When the
// write landed but the re-read failed, the payload carries the minimal
// record plus a note so clients know the displayed fields may be stale.
func (h *Handler) writeUpdated(c *gin.Context, b any, refetchFailed bool) {
	if refetchFailed {
		response.OK(c, gin.H{
			"booking": b,
			"note":    "updated but re-fetch failed",
		})
		return
	}
	response.OK(c, gin.H{"booking": b})
}
