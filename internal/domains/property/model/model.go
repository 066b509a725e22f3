package model

import "stayhub/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID       = "id"
	FieldOwnerID  = "owner_id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldActive   = "active"
)

type Property struct {
	ID       string `db:"id"`
	OwnerID  string `db:"owner_id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Active   bool   `db:"active"`
	model.Metadata
}

// OwnedBy reports whether userID owns the property. An empty userID matches any owner.
func (p Property) OwnedBy(userID string) bool {
	return userID == "" || p.OwnerID == userID
}
