package model

const (
	EventActionCreated = "created"
	EventActionUpdated = "updated"
	EventActionDeleted = "deleted"
)

// ChangedEvent is published whenever a rule is written or removed.
type ChangedEvent struct {
	Action     string `json:"action"`
	RuleID     string `json:"rule_id"`
	RoomTypeID string `json:"room_type_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	ChangedBy  string `json:"changed_by"`
	OccurredAt string `json:"occurred_at"`
}
