package response

import (
	"time"

	"hostelops/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	BranchID         uuid.UUID `json:"branchId"`
	RoomNumber       string    `json:"roomNumber"`
	Category         string    `json:"category"`
	FloorSection     string    `json:"floorSection"`
	Status           string    `json:"status"`
	Pinned           bool      `json:"pinned"`
	CurrentOccupants int32     `json:"currentOccupants"`
	MaxOccupants     int32     `json:"maxOccupants"`
	CostAmount       int64     `json:"costAmount"`
	CostDuration     string    `json:"costDuration"`
	Benefits         []string  `json:"benefits"`
	MediaRef         *string   `json:"mediaRef,omitempty"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type RoomListResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomNumber       string    `json:"roomNumber"`
	Category         string    `json:"category"`
	Status           string    `json:"status"`
	CurrentOccupants int32     `json:"currentOccupants"`
	MaxOccupants     int32     `json:"maxOccupants"`
	CostAmount       int64     `json:"costAmount"`
	CostDuration     string    `json:"costDuration"`
	CreatedAt        time.Time `json:"createdAt"`
}

type RoomPageResponse struct {
	Rooms      []*RoomListResponse `json:"rooms"`
	NextCursor *string             `json:"nextCursor,omitempty"`
}

type ReconciliationResponse struct {
	RoomID            uuid.UUID `json:"roomId"`
	RoomNumber        string    `json:"roomNumber"`
	RecordedOccupants int32     `json:"recordedOccupants"`
	BookedHeadcount   int32     `json:"bookedHeadcount"`
	Drift             int32     `json:"drift"`
}

type OccupancySummaryResponse struct {
	TotalRooms         int32 `json:"totalRooms"`
	AvailableRooms     int32 `json:"availableRooms"`
	PartiallyOccupied  int32 `json:"partiallyOccupiedRooms"`
	OccupiedRooms      int32 `json:"occupiedRooms"`
	PinnedRooms        int32 `json:"pinnedRooms"`
	OccupantsTotal     int32 `json:"occupantsTotal"`
	CapacityTotal      int32 `json:"capacityTotal"`
	ActiveBookingCount int32 `json:"activeBookingCount"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:               rm.ID,
		BranchID:         rm.BranchID,
		RoomNumber:       rm.RoomNumber,
		Category:         rm.Category,
		FloorSection:     rm.FloorSection,
		Status:           rm.Status,
		Pinned:           rm.Pinned,
		CurrentOccupants: rm.CurrentOccupants,
		MaxOccupants:     rm.MaxOccupants,
		CostAmount:       rm.CostAmount,
		CostDuration:     rm.CostDuration,
		Benefits:         rm.Benefits,
		MediaRef:         rm.MediaRef,
		IsActive:         rm.IsActive,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}

func FromRoomListItem(rm *queries.RoomListItem) *RoomListResponse {
	return &RoomListResponse{
		ID:               rm.ID,
		RoomNumber:       rm.RoomNumber,
		Category:         rm.Category,
		Status:           rm.Status,
		CurrentOccupants: rm.CurrentOccupants,
		MaxOccupants:     rm.MaxOccupants,
		CostAmount:       rm.CostAmount,
		CostDuration:     rm.CostDuration,
		CreatedAt:        rm.CreatedAt,
	}
}

func FromRoomPage(items []*queries.RoomListItem, next *queries.Cursor) *RoomPageResponse {
	rooms := make([]*RoomListResponse, len(items))
	for i, item := range items {
		rooms[i] = FromRoomListItem(item)
	}
	page := &RoomPageResponse{Rooms: rooms}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}

func FromReconciliationRow(row *queries.ReconciliationRow) *ReconciliationResponse {
	return &ReconciliationResponse{
		RoomID:            row.RoomID,
		RoomNumber:        row.RoomNumber,
		RecordedOccupants: row.RecordedOccupants,
		BookedHeadcount:   row.BookedHeadcount,
		Drift:             row.Drift,
	}
}

func FromOccupancySummary(s *queries.OccupancySummary) *OccupancySummaryResponse {
	return &OccupancySummaryResponse{
		TotalRooms:         s.TotalRooms,
		AvailableRooms:     s.AvailableRooms,
		PartiallyOccupied:  s.PartiallyOccupied,
		OccupiedRooms:      s.OccupiedRooms,
		PinnedRooms:        s.PinnedRooms,
		OccupantsTotal:     s.OccupantsTotal,
		CapacityTotal:      s.CapacityTotal,
		ActiveBookingCount: s.ActiveBookingCount,
	}
}
