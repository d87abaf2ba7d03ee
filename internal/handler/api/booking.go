package api

import (
	"errors"
	"net/http"

	"leen-studio/internal/domain/booking"
	reqdto "leen-studio/internal/handler/dto/request"
	"leen-studio/internal/handler/middleware"
	"leen-studio/internal/usecase/commands"
	"leen-studio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	sessionQueries  queries.SessionQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, sessionQueries queries.SessionQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		sessionQueries:  sessionQueries,
	}
}

// @Summary Get booking state
// @Description Get the session booking wizard state
// @Tags booking
// @Produce json
// @Success 200 {object} queries.BookingView
// @Router /booking [get]
func (h *BookingHandler) Get(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.sessionQueries.Booking(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select service
// @Description Choose a class service and advance to the soul check
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SelectServiceRequest true "Service selection"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /booking/service [post]
func (h *BookingHandler) SelectService(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectServiceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SelectService(c.Request.Context(), sessionID, req.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Soul check
// @Description Resolve the free-text feeling into a mantra and class recommendation
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SoulCheckRequest true "How the guest feels"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Router /booking/soul-check [post]
func (h *BookingHandler) SoulCheck(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SoulCheckRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SoulCheck(c.Request.Context(), sessionID, req.Feeling)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Select schedule
// @Description Pick a date inside the seven-day window and a time slot
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.SelectScheduleRequest true "Date and time slot"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/schedule [post]
func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.SelectScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SelectSchedule(c.Request.Context(), sessionID, req.Date, req.TimeSlot)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set contact
// @Description Record the guest's name and preferred contact channel
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact details"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/contact [post]
func (h *BookingHandler) SetContact(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.ContactRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SetContact(c.Request.Context(), sessionID, req.Name, req.Channel, req.Value)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Apply booking promo
// @Description Apply a flat-amount promo code to the offering
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.BookingPromoRequest true "Promo code"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Router /booking/promo [post]
func (h *BookingHandler) ApplyPromo(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.BookingPromoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.ApplyPromo(c.Request.Context(), sessionID, req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set daycare
// @Description Toggle the flat-fee kids daycare add-on
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.DaycareRequest true "Daycare toggle"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Router /booking/daycare [put]
func (h *BookingHandler) SetDaycare(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.DaycareRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.SetDaycare(c.Request.Context(), sessionID, *req.Add)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Confirm booking
// @Description Process the offering and issue the booking ticket
// @Tags booking
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmBookingRequest true "Offering details"
// @Success 200 {object} queries.BookingView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /booking/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Confirm(c.Request.Context(), sessionID, req.Daycare, req.Method)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Step back
// @Description Move one wizard step backward without losing entered data
// @Tags booking
// @Produce json
// @Success 200 {object} queries.BookingView
// @Failure 409 {object} map[string]string
// @Router /booking/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.Back(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reset booking
// @Description Return the wizard to the service step, dropping all state
// @Tags booking
// @Produce json
// @Success 200 {object} queries.BookingView
// @Router /booking/reset [post]
func (h *BookingHandler) Reset(c *gin.Context) {
	sessionID, ok := middleware.MustSessionID(c)
	if !ok {
		return
	}

	view, err := h.bookingCommands.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Service not found",
		})
	case errors.Is(err, commands.ErrUnknownPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown payment method",
		})
	case errors.Is(err, booking.ErrUnknownPromo):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": booking.ErrUnknownPromo.Error(),
		})
	case errors.Is(err, booking.ErrDateOutOfWindow),
		errors.Is(err, booking.ErrUnknownTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule selection",
		})
	case errors.Is(err, booking.ErrEmptyName),
		errors.Is(err, booking.ErrInvalidEmail),
		errors.Is(err, booking.ErrInvalidPhone),
		errors.Is(err, booking.ErrUnknownChannel):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid contact details",
		})
	case errors.Is(err, booking.ErrServiceRequired),
		errors.Is(err, booking.ErrScheduleRequired),
		errors.Is(err, booking.ErrContactRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Earlier wizard steps are incomplete",
		})
	case errors.Is(err, booking.ErrAlreadyConfirmed),
		errors.Is(err, booking.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Invalid wizard transition",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
