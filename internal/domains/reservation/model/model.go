package model

import (
	"time"

	"stayhub/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldCheckIn    = "check_in"
	FieldCheckOut   = "check_out"
	FieldStatus     = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses hold their nights against availability.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// Reservation is owned by the booking flow. This service only reads it.
type Reservation struct {
	ID         string    `db:"id"`
	RoomTypeID string    `db:"room_type_id"`
	UserID     string    `db:"user_id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Quantity   int       `db:"quantity"`
	Status     string    `db:"status"`
	model.Metadata
}
