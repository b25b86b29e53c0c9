package api

import (
	"net/http"

	reqdto "hostelops/internal/handler/dto/request"
	resdto "hostelops/internal/handler/dto/response"
	"hostelops/internal/handler/httperr"
	"hostelops/internal/handler/middleware"
	"hostelops/internal/pkg/errs"
	"hostelops/internal/usecase/commands"
	"hostelops/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Attach a booking to an existing order's room line item
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	bookingID, err := h.bookingCommands.AttachToOrder(c.Request.Context(), req, branchID)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), branchID, bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	c.Header("Location", "/api/bookings/"+bookingID.String())
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get booking by ID with its transfer history
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), branchID, id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Description List bookings in the caller's branch with keyset pagination
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by booking status"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	filters := queries.BookingFilters{}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}

	cursor, limit := parsePageParams(c)
	items, next, err := h.bookingQueries.ListByBranch(c.Request.Context(), branchID, filters, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingPage(items, next))
}

// @Summary Check in
// @Description Mark the booking's party as arrived, optionally revising headcount
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.CheckInRequest false "Check-in request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/check-in [post]
func (h *BookingHandler) CheckIn(c *gin.Context) {
	branchID, bookingID, ok := h.scopedBookingID(c)
	if !ok {
		return
	}

	var req reqdto.CheckInRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	if err := h.bookingCommands.CheckIn(c.Request.Context(), branchID, bookingID, req); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	h.respondBooking(c, branchID, bookingID)
}

// @Summary Transfer booking
// @Description Move a checked-in booking's party to another room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransferRequest true "Transfer request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/transfer [post]
func (h *BookingHandler) Transfer(c *gin.Context) {
	branchID, bookingID, ok := h.scopedBookingID(c)
	if !ok {
		return
	}

	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	var req reqdto.TransferRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.bookingCommands.Transfer(c.Request.Context(), branchID, bookingID, staffID, req); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	h.respondBooking(c, branchID, bookingID)
}

// @Summary Extend stay
// @Description Bill extra duration through the order service and move the scheduled check-out
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ExtendStayRequest true "Extension request"
// @Success 200 {object} resdto.ExtendStayResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /bookings/{id}/extend [post]
func (h *BookingHandler) ExtendStay(c *gin.Context) {
	branchID, bookingID, ok := h.scopedBookingID(c)
	if !ok {
		return
	}

	var req reqdto.ExtendStayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.bookingCommands.ExtendStay(c.Request.Context(), branchID, bookingID, req)
	if err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.ExtendStayResponse{
		OrderRef:    result.OrderRef,
		TotalCharge: result.TotalCharge,
	})
}

// @Summary Depart
// @Description Close the booking and release its headcount from the room
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/depart [post]
func (h *BookingHandler) Depart(c *gin.Context) {
	branchID, bookingID, ok := h.scopedBookingID(c)
	if !ok {
		return
	}

	var req struct {
		Notes *string `json:"notes,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	if err := h.bookingCommands.Depart(c.Request.Context(), branchID, bookingID, req.Notes); err != nil {
		h.respondLifecycleError(c, err)
		return
	}

	h.respondBooking(c, branchID, bookingID)
}

func (h *BookingHandler) scopedBookingID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return branchID, bookingID, true
}

func (h *BookingHandler) respondBooking(c *gin.Context, branchID, bookingID uuid.UUID) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), branchID, bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondLifecycleError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid booking status", nil)
	case errs.Is(err, commands.ErrCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "Capacity exceeded", nil)
	case errs.Is(err, commands.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room not available", nil)
	case errs.Is(err, commands.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid input", nil)
	case errs.Is(err, commands.ErrOrderServiceFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Order service unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
