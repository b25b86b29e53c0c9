package response

import (
	"time"

	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                uuid.UUID          `json:"id"`
	BranchID          uuid.UUID          `json:"branchId"`
	RoomID            uuid.UUID          `json:"roomId"`
	RoomNumber        string             `json:"roomNumber"`
	OrderRef          string             `json:"orderRef"`
	CustomerName      string             `json:"customerName"`
	NumOccupants      int32              `json:"numOccupants"`
	Status            string             `json:"status"`
	DurationCount     int32              `json:"durationCount"`
	DurationUnit      string             `json:"durationUnit"`
	ScheduledCheckIn  time.Time          `json:"scheduledCheckIn"`
	ScheduledCheckOut *time.Time         `json:"scheduledCheckOut,omitempty"`
	ActualCheckIn     *time.Time         `json:"actualCheckIn,omitempty"`
	ActualCheckOut    *time.Time         `json:"actualCheckOut,omitempty"`
	Notes             *string            `json:"notes,omitempty"`
	Transfers         []TransferResponse `json:"transfers"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type TransferResponse struct {
	FromRoomID     uuid.UUID `json:"fromRoomId"`
	FromRoomNumber string    `json:"fromRoomNumber"`
	ToRoomID       uuid.UUID `json:"toRoomId"`
	ToRoomNumber   string    `json:"toRoomNumber"`
	TransferredBy  uuid.UUID `json:"transferredBy"`
	TransferredAt  time.Time `json:"transferredAt"`
	Notes          *string   `json:"notes,omitempty"`
}

type BookingListResponse struct {
	ID                uuid.UUID  `json:"id"`
	RoomID            uuid.UUID  `json:"roomId"`
	RoomNumber        string     `json:"roomNumber"`
	CustomerName      string     `json:"customerName"`
	NumOccupants      int32      `json:"numOccupants"`
	Status            string     `json:"status"`
	ScheduledCheckOut *time.Time `json:"scheduledCheckOut,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

type BookingPageResponse struct {
	Bookings   []*BookingListResponse `json:"bookings"`
	NextCursor *string                `json:"nextCursor,omitempty"`
}

type ExtendStayResponse struct {
	OrderRef    string `json:"orderRef"`
	TotalCharge int64  `json:"totalCharge"`
}

func FromBookingView(bv *queries.BookingView) *BookingResponse {
	transfers := make([]TransferResponse, len(bv.Transfers))
	for i, t := range bv.Transfers {
		transfers[i] = TransferResponse{
			FromRoomID:     t.FromRoomID,
			FromRoomNumber: t.FromRoomNumber,
			ToRoomID:       t.ToRoomID,
			ToRoomNumber:   t.ToRoomNumber,
			TransferredBy:  t.TransferredBy,
			TransferredAt:  t.TransferredAt,
			Notes:          t.Notes,
		}
	}

	return &BookingResponse{
		ID:                bv.ID,
		BranchID:          bv.BranchID,
		RoomID:            bv.RoomID,
		RoomNumber:        bv.RoomNumber,
		OrderRef:          bv.OrderRef,
		CustomerName:      bv.CustomerName,
		NumOccupants:      bv.NumOccupants,
		Status:            bv.Status,
		DurationCount:     bv.DurationCount,
		DurationUnit:      bv.DurationUnit,
		ScheduledCheckIn:  bv.ScheduledCheckIn,
		ScheduledCheckOut: bv.ScheduledCheckOut,
		ActualCheckIn:     bv.ActualCheckIn,
		ActualCheckOut:    bv.ActualCheckOut,
		Notes:             bv.Notes,
		Transfers:         transfers,
		CreatedAt:         bv.CreatedAt,
		UpdatedAt:         bv.UpdatedAt,
	}
}

func FromBookingListItem(item *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:                item.ID,
		RoomID:            item.RoomID,
		RoomNumber:        item.RoomNumber,
		CustomerName:      item.CustomerName,
		NumOccupants:      item.NumOccupants,
		Status:            item.Status,
		ScheduledCheckOut: item.ScheduledCheckOut,
		CreatedAt:         item.CreatedAt,
	}
}

func FromBookingPage(items []*queries.BookingListItem, next *queries.Cursor) *BookingPageResponse {
	bookings := make([]*BookingListResponse, len(items))
	for i, item := range items {
		bookings[i] = FromBookingListItem(item)
	}
	page := &BookingPageResponse{Bookings: bookings}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}
