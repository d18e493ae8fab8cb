package api

import (
	"context"
	"net/http"
	"strings"

	"dakar-rentals/internal/domain/booking"
	"dakar-rentals/internal/domain/inventory"
	reqdto "dakar-rentals/internal/handler/dto/request"
	resdto "dakar-rentals/internal/handler/dto/response"
	"dakar-rentals/internal/handler/httperr"
	"dakar-rentals/internal/pkg/errs"
	"dakar-rentals/internal/usecase/commands"
	"dakar-rentals/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const bookingNotFound = "Booking not found"

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: bookingCommands,
		queries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Submit a reservation for an apartment or a car. The total is computed server-side.
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, "Item not found")
		return
	}

	c.Header("Location", "/api/bookings/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description Admin listing, newest first. Filters combine with AND.
// @Tags bookings
// @Produce json
// @Param type query string false "apartment or car"
// @Param status query string false "pending, confirmed or cancelled"
// @Param search query string false "substring of name, email or phone"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	filter, err := parseBookingFilter(c)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	views, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidID(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking status
// @Description Moves a pending booking to confirmed or cancelled.
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Target status"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidID(c, err)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithFields(c, err, "Invalid request format", "status")
		return
	}

	view, err := h.commands.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Confirm booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, h.commands.Confirm)
}

// @Summary Cancel booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.commands.Cancel)
}

// @Summary Delete booking
// @Description Removes a booking in any status.
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidID(c, err)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidID(c, err)
		return
	}

	view, err := apply(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err, bookingNotFound)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func parseBookingFilter(c *gin.Context) (queries.BookingFilter, error) {
	var filter queries.BookingFilter
	var fields []string

	if raw := strings.ToLower(strings.TrimSpace(c.Query("type"))); raw != "" {
		t, err := inventory.ParseItemType(raw)
		if err != nil {
			fields = append(fields, "type")
		} else {
			filter.Type = &t
		}
	}
	if raw := strings.ToLower(strings.TrimSpace(c.Query("status"))); raw != "" {
		s, err := booking.ParseStatus(raw)
		if err != nil {
			fields = append(fields, "status")
		} else {
			filter.Status = &s
		}
	}
	filter.Search = strings.TrimSpace(c.Query("search"))

	if len(fields) > 0 {
		return filter, errs.NewValidationError("invalid booking filter", fields...)
	}
	return filter, nil
}
