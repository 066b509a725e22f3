package model

import (
	"stayhub/shared/failure"
	"stayhub/shared/model"
)

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldName          = "name"
	FieldBasePrice     = "base_price"
	FieldCapacity      = "capacity"
	FieldTotalQuantity = "total_quantity"
)

var (
	ErrNotFound  = failure.NotFound("room type not found")
	ErrForbidden = failure.Forbidden("room type belongs to another owner")
)

// RoomType is a category of bookable unit. BasePrice is the nightly price in minor currency units.
type RoomType struct {
	ID            string `db:"id"`
	PropertyID    string `db:"property_id"`
	Name          string `db:"name"`
	BasePrice     int64  `db:"base_price"`
	Capacity      int    `db:"capacity"`
	TotalQuantity int    `db:"total_quantity"`
	OwnerID       string `column:"owner_id" db:"owner_id"      table:"properties"`
	PropertyName  string `column:"name"     db:"property_name" table:"properties"`
	model.Metadata
}

func (RoomType) GetJoinQuery() string {
	return "JOIN properties ON properties.id = room_types.property_id"
}

// OwnedBy reports whether userID owns the property of the room type. An empty userID matches any owner.
func (r RoomType) OwnedBy(userID string) bool {
	return userID == "" || r.OwnerID == userID
}

// Authorize returns ErrNotFound for an unloaded room type and ErrForbidden when ownerID does not own it.
func (r RoomType) Authorize(ownerID string) error {
	if r.ID == "" {
		return ErrNotFound
	}

	if !r.OwnedBy(ownerID) {
		return ErrForbidden
	}

	return nil
}
