package model

import (
	"time"

	"stayhub/shared/failure"
	"stayhub/shared/model"
	"stayhub/shared/period"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "peak_rate_rules"
	EntityName = "peak_rate_rule"

	FieldID          = "id"
	FieldRoomTypeID  = "room_type_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldRateType    = "rate_type"
	FieldValue       = "value"
	FieldDescription = "description"
)

const (
	RateTypeFixed      = "FIXED"
	RateTypePercentage = "PERCENTAGE"
)

// MaxPrice bounds base prices and FIXED values in minor units. It fits the NUMERIC(12,2) value
// column, and the highest PERCENTAGE markup of it still fits an int64.
const MaxPrice int64 = 9_999_999_999

var (
	hundred = decimal.NewFromInt(100)

	MinPercentage = decimal.NewFromInt(-100)
	MaxPercentage = decimal.NewFromInt(1000)
	MaxFixed      = decimal.NewFromInt(MaxPrice)
)

var (
	ErrNotFound        = failure.NotFound("no peak rate covers this date")
	ErrDuplicateRange  = failure.Conflict("peak rate already defined for this date range")
	ErrInvalidRange    = failure.BadRequestFromString("start_date must not be after end_date")
	ErrPastStartDate   = failure.BadRequestFromString("start_date must not be in the past")
	ErrPastEndDate     = failure.BadRequestFromString("end_date must not be in the past")
	ErrInvalidRateType = failure.BadRequestFromString("rate_type must be FIXED or PERCENTAGE")
	ErrInvalidFixed    = failure.BadRequestFromString("FIXED value must be a positive whole amount of at most 9999999999")
	ErrInvalidPercent  = failure.BadRequestFromString("PERCENTAGE value must be greater than -100 and at most 1000")
	ErrValuePrecision  = failure.BadRequestFromString("value must have at most two decimal places")
)

// PeakRateRule overrides the nightly price of a room type between StartDate and EndDate inclusive.
// FIXED rules replace the price with Value (minor units); PERCENTAGE rules mark the base price up by Value percent.
type PeakRateRule struct {
	ID          string          `db:"id"`
	RoomTypeID  string          `db:"room_type_id"`
	StartDate   time.Time       `db:"start_date"`
	EndDate     time.Time       `db:"end_date"`
	RateType    string          `db:"rate_type"`
	Value       decimal.Decimal `db:"value"`
	Description *string         `db:"description"`
	model.Metadata
}

// Validate checks the range and the value against the rate type. Dates relative to today are
// checked by the caller since updates keep rules that already started.
func (r PeakRateRule) Validate() error {
	if period.Day(r.StartDate).After(period.Day(r.EndDate)) {
		return ErrInvalidRange
	}

	if !r.Value.Equal(r.Value.Round(2)) {
		return ErrValuePrecision
	}

	switch r.RateType {
	case RateTypeFixed:
		if !r.Value.IsInteger() || !r.Value.IsPositive() || r.Value.GreaterThan(MaxFixed) {
			return ErrInvalidFixed
		}
	case RateTypePercentage:
		if r.Value.LessThanOrEqual(MinPercentage) || r.Value.GreaterThan(MaxPercentage) {
			return ErrInvalidPercent
		}
	default:
		return ErrInvalidRateType
	}

	return nil
}

// Covers reports whether day falls inside the rule.
func (r PeakRateRule) Covers(day time.Time) bool {
	return period.Contains(period.Day(r.StartDate), period.Day(r.EndDate), period.Day(day))
}

// Overlaps reports whether the rule shares at least one day with [start, end].
func (r PeakRateRule) Overlaps(start, end time.Time) bool {
	return period.RangesOverlap(period.Day(r.StartDate), period.Day(r.EndDate), period.Day(start), period.Day(end))
}

// SameRange reports whether the rule spans exactly [start, end].
func (r PeakRateRule) SameRange(start, end time.Time) bool {
	return period.Day(r.StartDate).Equal(period.Day(start)) && period.Day(r.EndDate).Equal(period.Day(end))
}

// Apply returns the nightly price under the rule, rounded half up to a whole minor unit.
func (r PeakRateRule) Apply(basePrice int64) int64 {
	switch r.RateType {
	case RateTypeFixed:
		return r.Value.Round(0).IntPart()
	case RateTypePercentage:
		return decimal.NewFromInt(basePrice).
			Mul(hundred.Add(r.Value)).
			Div(hundred).
			Round(0).
			IntPart()
	default:
		return basePrice
	}
}

// supersedes orders rules by last write: modified_at, then created_at, then id.
func (r PeakRateRule) supersedes(other PeakRateRule) bool {
	if !r.ModifiedAt.Equal(other.ModifiedAt) {
		return r.ModifiedAt.After(other.ModifiedAt)
	}

	if !r.CreatedAt.Equal(other.CreatedAt) {
		return r.CreatedAt.After(other.CreatedAt)
	}

	return r.ID > other.ID
}
