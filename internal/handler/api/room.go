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

type RoomHandler struct {
	roomCommands    commands.RoomCommands
	bookingCommands commands.BookingCommands
	roomQueries     queries.RoomQueries
	bookingQueries  queries.BookingQueries
}

func NewRoomHandler(
	roomCommands commands.RoomCommands,
	bookingCommands commands.BookingCommands,
	roomQueries queries.RoomQueries,
	bookingQueries queries.BookingQueries,
) *RoomHandler {
	return &RoomHandler{
		roomCommands:    roomCommands,
		bookingCommands: bookingCommands,
		roomQueries:     roomQueries,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create room
// @Description Register a new room in the caller's branch
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room request"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	roomID, err := h.roomCommands.Create(c.Request.Context(), req, branchID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrDuplicateRoomNumber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Duplicate room number", nil)
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), branchID, roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}

	c.Header("Location", "/api/rooms/"+roomID.String())
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Get room
// @Description Get room by ID with its derived status
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	view, err := h.roomQueries.GetByID(c.Request.Context(), branchID, roomID)
	if err != nil {
		if errs.Is(err, queries.ErrRoomNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List rooms
// @Description List active rooms in the caller's branch with keyset pagination
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by availability status"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.RoomPageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return
	}

	filters := queries.RoomFilters{}
	if status := c.Query("status"); status != "" {
		filters.Status = &status
	}

	cursor, limit := parsePageParams(c)
	items, next, err := h.roomQueries.ListByBranch(c.Request.Context(), branchID, filters, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomPage(items, next))
}

// @Summary List room bookings
// @Description List the active bookings currently attached to a room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.BookingListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rooms/{id}/bookings [get]
func (h *RoomHandler) ListRoomBookings(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	items, err := h.bookingQueries.ListActiveByRoom(c.Request.Context(), branchID, roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update room
// @Description Update a room's details; occupancy is not touched here
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Room update request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.roomCommands.Update(c.Request.Context(), branchID, roomID, req); err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, branchID, roomID)
}

// @Summary Deactivate room
// @Description Take a room out of service; existing bookings are unaffected
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	if err := h.roomCommands.Deactivate(c.Request.Context(), branchID, roomID); err != nil {
		h.respondRoomError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Pin room status
// @Description Set the staff-authoritative maintenance or reserved status
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.PinRoomRequest true "Pin request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/pin [put]
func (h *RoomHandler) PinRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	var req reqdto.PinRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.roomCommands.Pin(c.Request.Context(), branchID, roomID, req.Status); err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, branchID, roomID)
}

// @Summary Unpin room status
// @Description Clear the pinned status so availability derives from occupancy again
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/pin [delete]
func (h *RoomHandler) UnpinRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	if err := h.roomCommands.Unpin(c.Request.Context(), branchID, roomID); err != nil {
		h.respondRoomError(c, err)
		return
	}

	h.respondRoom(c, branchID, roomID)
}

// @Summary Free room
// @Description Room-level partial checkout: lower the occupant count without a booking
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body object true "People leaving"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{id}/free [post]
func (h *RoomHandler) FreeRoom(c *gin.Context) {
	branchID, roomID, ok := h.scopedRoomID(c)
	if !ok {
		return
	}

	var req struct {
		PeopleLeaving int32 `json:"people_leaving" binding:"required,min=1"`
	}
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.bookingCommands.FreeRoom(c.Request.Context(), branchID, roomID, req.PeopleLeaving); err != nil {
		switch {
		case errs.Is(err, commands.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		case errs.Is(err, commands.ErrInvalidInput):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid input", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	h.respondRoom(c, branchID, roomID)
}

func (h *RoomHandler) scopedRoomID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	branchID, ok := middleware.GetBranchID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Internal error", nil)
		return uuid.Nil, uuid.Nil, false
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}

	return branchID, roomID, true
}

func (h *RoomHandler) respondRoom(c *gin.Context, branchID, roomID uuid.UUID) {
	view, err := h.roomQueries.GetByID(c.Request.Context(), branchID, roomID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) respondRoomError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, commands.ErrInvalidInput):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid input", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
