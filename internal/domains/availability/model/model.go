package model

import (
	"time"

	"stayhub/shared/model"
)

const (
	TableName  = "availabilities"
	EntityName = "availability"

	FieldRoomTypeID     = "room_type_id"
	FieldDate           = "date"
	FieldAvailableCount = "available_count"
)

// Rejection reasons reported per item by a bulk update.
const (
	ReasonInvalidDate           = "InvalidDate"
	ReasonInvalidFlag           = "InvalidFlag"
	ReasonPastDate              = "PastDate"
	ReasonHasActiveReservations = "HasActiveReservations"
)

// Availability is the number of units of a room type left on one date. A date without a
// row is fully available.
type Availability struct {
	RoomTypeID     string    `db:"room_type_id"`
	Date           time.Time `db:"date"`
	AvailableCount int       `db:"available_count"`
	model.Metadata
}

// Count returns the units available on the date for a room type of totalQuantity units,
// falling back to totalQuantity for an unloaded record and never exceeding it.
func (a Availability) Count(totalQuantity int) int {
	if a.RoomTypeID == "" {
		return totalQuantity
	}

	return max(0, min(a.AvailableCount, totalQuantity))
}

// CountFor is the stored count written for the availability flag.
func CountFor(isAvailable bool, totalQuantity int) int {
	if isAvailable {
		return totalQuantity
	}

	return 0
}

// ChangedEvent is published after a bulk update wrote at least one date.
type ChangedEvent struct {
	RoomTypeID string   `json:"room_type_id"`
	Dates      []string `json:"dates"`
	ChangedBy  string   `json:"changed_by"`
	OccurredAt string   `json:"occurred_at"`
}
