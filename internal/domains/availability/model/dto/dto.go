package dto

import (
	"time"

	peakRateModel "stayhub/internal/domains/peakrate/model"
	propertyModel "stayhub/internal/domains/property/model"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	"stayhub/shared/period"
)

// AvailabilityItem is one entry of a bulk update. Items are checked one by one, so a bad date or
// a missing flag rejects only its own entry.
type AvailabilityItem struct {
	Date        string `json:"date"        example:"2025-02-14"`
	IsAvailable *bool  `json:"isAvailable" example:"true"`
}

type BulkAvailabilityRequest struct {
	Availability []AvailabilityItem `json:"availability" validate:"required,min=1,max=366,dive"`
}

// Changes returns the submitted items in order.
func (b *BulkAvailabilityRequest) Changes() []Change {
	changes := make([]Change, len(b.Availability))
	for i, item := range b.Availability {
		changes[i] = Change{
			Date:        item.Date,
			IsAvailable: item.IsAvailable != nil && *item.IsAvailable,
			MissingFlag: item.IsAvailable == nil,
		}
	}

	return changes
}

type Change struct {
	Date        string
	IsAvailable bool
	MissingFlag bool
}

type Rejection struct {
	Date   string `json:"date"`
	Reason string `json:"reason" example:"HasActiveReservations"`
}

type BulkResult struct {
	Applied  []string    `json:"applied"`
	Rejected []Rejection `json:"rejected"`
}

func NewBulkResult() BulkResult {
	return BulkResult{Applied: []string{}, Rejected: []Rejection{}}
}

func (b *BulkResult) Reject(date, reason string) {
	b.Rejected = append(b.Rejected, Rejection{Date: date, Reason: reason})
}

type AvailabilityResponse struct {
	RoomTypeID     string `json:"room_type_id"`
	Date           string `json:"date"`
	IsAvailable    bool   `json:"is_available"`
	AvailableCount int    `json:"available_count"`
}

func (a *AvailabilityResponse) FromCount(roomTypeID string, day time.Time, count int) {
	a.RoomTypeID = roomTypeID
	a.Date = period.FormatDate(day)
	a.IsAvailable = count > 0
	a.AvailableCount = count
}

type DayResponse struct {
	Date           string  `json:"date"`
	IsAvailable    bool    `json:"is_available"`
	AvailableCount int     `json:"available_count"`
	Price          int64   `json:"price"`
	PeakRateID     *string `json:"peak_rate_id"`
}

type MonthlyViewResponse struct {
	RoomTypeID    string        `json:"room_type_id"`
	RoomTypeName  string        `json:"room_type_name"`
	BasePrice     int64         `json:"base_price"`
	Capacity      int           `json:"capacity"`
	TotalQuantity int           `json:"total_quantity"`
	Month         string        `json:"month"`
	Days          []DayResponse `json:"days"`
}

func (m *MonthlyViewResponse) FromRoomType(roomType roomTypeModel.RoomType, year, month int) {
	m.RoomTypeID = roomType.ID
	m.RoomTypeName = roomType.Name
	m.BasePrice = roomType.BasePrice
	m.Capacity = roomType.Capacity
	m.TotalQuantity = roomType.TotalQuantity
	m.Month = period.FormatMonth(year, month)
	m.Days = []DayResponse{}
}

func (m *MonthlyViewResponse) AddDay(day time.Time, count int, resolution peakRateModel.Resolution) {
	row := DayResponse{
		Date:           period.FormatDate(day),
		IsAvailable:    count > 0,
		AvailableCount: count,
		Price:          resolution.Price,
	}

	if resolution.Rule != nil {
		row.PeakRateID = &resolution.Rule.ID
	}

	m.Days = append(m.Days, row)
}

type PropertyCalendarResponse struct {
	PropertyID   string                `json:"property_id"`
	PropertyName string                `json:"property_name"`
	Location     string                `json:"location"`
	Month        string                `json:"month"`
	RoomTypes    []MonthlyViewResponse `json:"room_types"`
}

func (p *PropertyCalendarResponse) FromProperty(property propertyModel.Property, year, month int) {
	p.PropertyID = property.ID
	p.PropertyName = property.Name
	p.Location = property.Location
	p.Month = period.FormatMonth(year, month)
	p.RoomTypes = []MonthlyViewResponse{}
}
