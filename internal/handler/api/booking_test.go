//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hostelops/internal/domain/staff"
	"hostelops/internal/handler/api"
	resdto "hostelops/internal/handler/dto/response"
	"hostelops/internal/usecase/commands"
	"hostelops/internal/usecase/queries"
	"hostelops/tests/common/builder"
	"hostelops/tests/common/httptest"
	"hostelops/tests/common/testutil"
	commandsmock "hostelops/tests/mock/commands"
	queriesmock "hostelops/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	branchID     uuid.UUID
	staffID      uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.branchID = uuid.New()
	s.staffID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("branch_id", s.branchID)
		c.Set("staff_role", staff.RoleFrontDesk)
		c.Next()
	}

	// Setup routes
	s.router.POST("/bookings", authMiddleware, s.handler.CreateBooking)
	s.router.GET("/bookings", authMiddleware, s.handler.ListBookings)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.POST("/bookings/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/bookings/:id/transfer", authMiddleware, s.handler.Transfer)
	s.router.POST("/bookings/:id/extend", authMiddleware, s.handler.ExtendStay)
	s.router.POST("/bookings/:id/depart", authMiddleware, s.handler.Depart)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bb := builder.NewBookingBuilder().WithBranchID(s.branchID)
	reqBody := bb.BuildDTO()
	returnView := bb.BuildReadModel()

	validationTestCases := []testCaseBooking{
		{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: order_ref (required)", mutate: testutil.Field("order_ref", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: customer_name (required)", mutate: testutil.Field("customer_name", nil), expectCode: http.StatusBadRequest},
		{name: "num_occupants boundary invalid (0)", mutate: testutil.Field("num_occupants", 0), expectCode: http.StatusBadRequest},
		{name: "num_occupants boundary OK (1)", mutate: testutil.Field("num_occupants", 1), expectCode: http.StatusCreated},
		{name: "duration_count boundary invalid (0)", mutate: testutil.Field("duration_count", 0), expectCode: http.StatusBadRequest},
		{name: "duration_unit invalid (week)", mutate: testutil.Field("duration_unit", "week"), expectCode: http.StatusBadRequest},
		{name: "duration_unit OK (hour)", mutate: testutil.Field("duration_unit", "hour"), expectCode: http.StatusCreated},
	}

	s.Run("success: returns 201 Created with booking view", func() {
		s.mockCommands.EXPECT().AttachToOrder(gomock.Any(), gomock.Any(), s.branchID).
			Return(returnView.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.OrderRef, response.OrderRef)
		s.Equal("pending_checkin", response.Status)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + returnView.ID.String()})
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, tc := range validationTestCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

				if tc.expectCode == http.StatusCreated {
					s.mockCommands.EXPECT().AttachToOrder(gomock.Any(), gomock.Any(), s.branchID).
						Return(returnView.ID, nil).Times(1)
					s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, returnView.ID).
						Return(returnView, nil).Times(1)
				}
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				if tc.expectCode == http.StatusCreated {
					httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
				} else {
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				}
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "capacity exceeded",
				commandsError:  commands.ErrCapacityExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Capacity exceeded",
			},
			{
				name:           "room unavailable",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room not available",
			},
			{
				name:           "invalid input",
				commandsError:  commands.ErrInvalidInput,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid input",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AttachToOrder(gomock.Any(), gomock.Any(), s.branchID).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	bb := builder.NewBookingBuilder().WithBranchID(s.branchID)
	bb.ID = bookingID
	returnView := bb.BuildReadModel()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.CustomerName, response.CustomerName)
		s.Equal(returnView.NumOccupants, response.NumOccupants)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 500 Internal Server Error on query failure", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	baseURL := "/bookings"

	items := []*queries.BookingListItem{
		builder.NewBookingBuilder().WithBranchID(s.branchID).BuildListItem(),
		builder.NewBookingBuilder().WithBranchID(s.branchID).BuildListItem(),
	}

	s.Run("success: returns booking list", func() {
		s.mockQueries.EXPECT().ListByBranch(gomock.Any(), s.branchID, queries.BookingFilters{}, (*queries.Cursor)(nil), 0).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "bearer-token")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, len(items))
		s.Nil(response.NextCursor)
	})

	s.Run("success: status filter, cursor and limit are forwarded", func() {
		url := baseURL + "?status=checked_in&cursor=abc123&limit=10"
		status := "checked_in"
		expectedFilters := queries.BookingFilters{Status: &status}
		expectedCursor := &queries.Cursor{After: "abc123"}
		nextCursor := &queries.Cursor{After: "next456"}

		s.mockQueries.EXPECT().ListByBranch(gomock.Any(), s.branchID, expectedFilters, expectedCursor, 10).
			Return(items[:1], nextCursor, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
		s.NotNil(response.NextCursor)
		s.Equal("next456", *response.NextCursor)
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		s.mockQueries.EXPECT().ListByBranch(gomock.Any(), s.branchID, queries.BookingFilters{}, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL+"?cursor=broken", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, baseURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCheckIn
// ================================================================================

func (s *BookingHandlerTestSuite) TestCheckIn() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/check-in"

	now := time.Now()
	bb := builder.NewBookingBuilder().WithBranchID(s.branchID).AsCheckedIn(now)
	bb.ID = bookingID
	returnView := bb.BuildReadModel()

	s.Run("success: check-in without body keeps booked headcount", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.branchID, bookingID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("checked_in", response.Status)
		s.NotNil(response.ActualCheckIn)
	})

	s.Run("success: check-in with revised headcount", func() {
		revised := int32(3)
		body := map[string]any{"revised_occupants": revised}

		s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.branchID, bookingID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for negative revised headcount", func() {
		body := map[string]any{"revised_occupants": -1}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/invalid-uuid/check-in", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "already checked in",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking status",
			},
			{
				name:           "revised headcount exceeds capacity",
				commandsError:  commands.ErrCapacityExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Capacity exceeded",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CheckIn(gomock.Any(), s.branchID, bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestTransfer
// ================================================================================

func (s *BookingHandlerTestSuite) TestTransfer() {
	bookingID := uuid.New()
	toRoomID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/transfer"
	reqBody := map[string]any{"to_room_id": toRoomID.String()}

	now := time.Now()
	bb := builder.NewBookingBuilder().WithBranchID(s.branchID).WithRoomID(toRoomID).AsCheckedIn(now)
	bb.ID = bookingID
	returnView := bb.BuildReadModel()
	returnView.Transfers = []queries.TransferView{
		{
			FromRoomID:     uuid.New(),
			FromRoomNumber: "101",
			ToRoomID:       toRoomID,
			ToRoomNumber:   "202",
			TransferredBy:  s.staffID,
			TransferredAt:  now,
		},
	}

	s.Run("success: returns 200 OK with transfer history", func() {
		s.mockCommands.EXPECT().Transfer(gomock.Any(), s.branchID, bookingID, s.staffID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(toRoomID, response.RoomID)
		s.Len(response.Transfers, 1)
		s.Equal(toRoomID, response.Transfers[0].ToRoomID)
		s.Equal(s.staffID, response.Transfers[0].TransferredBy)
	})

	s.Run("error: 400 Bad Request when to_room_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "target room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "target room cannot take the party",
				commandsError:  commands.ErrCapacityExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Capacity exceeded",
			},
			{
				name:           "target room pinned",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room not available",
			},
			{
				name:           "booking not checked in",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking status",
			},
			{
				name:           "transfer to the same room",
				commandsError:  commands.ErrInvalidInput,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid input",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transfer(gomock.Any(), s.branchID, bookingID, s.staffID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestExtendStay
// ================================================================================

func (s *BookingHandlerTestSuite) TestExtendStay() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/extend"
	reqBody := map[string]any{"extra_duration": 2}

	s.Run("success: returns 200 OK with billing result", func() {
		result := &commands.ExtendStayResult{OrderRef: "EXT-1001", TotalCharge: 5000}
		s.mockCommands.EXPECT().ExtendStay(gomock.Any(), s.branchID, bookingID, gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ExtendStayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("EXT-1001", response.OrderRef)
		s.Equal(int64(5000), response.TotalCharge)
	})

	s.Run("error: 400 Bad Request when extra_duration is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "order service down",
				commandsError:  commands.ErrOrderServiceFailed,
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Order service unavailable",
			},
			{
				name:           "booking not checked in",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking status",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExtendStay(gomock.Any(), s.branchID, bookingID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDepart
// ================================================================================

func (s *BookingHandlerTestSuite) TestDepart() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/depart"

	now := time.Now()
	bb := builder.NewBookingBuilder().WithBranchID(s.branchID).AsDeparted(now.Add(-24*time.Hour), now)
	bb.ID = bookingID
	returnView := bb.BuildReadModel()

	s.Run("success: departure without notes", func() {
		s.mockCommands.EXPECT().Depart(gomock.Any(), s.branchID, bookingID, (*string)(nil)).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("departed", response.Status)
		s.NotNil(response.ActualCheckOut)
	})

	s.Run("success: departure with notes", func() {
		notes := "left a bag at reception"
		s.mockCommands.EXPECT().Depart(gomock.Any(), s.branchID, bookingID, gomock.Any()).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.branchID, bookingID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"notes": notes}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "already departed",
				commandsError:  commands.ErrInvalidTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking status",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Depart(gomock.Any(), s.branchID, bookingID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
