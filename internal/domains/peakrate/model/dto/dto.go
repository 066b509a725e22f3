package dto

import (
	"time"

	"stayhub/internal/domains/peakrate/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/period"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePeakRateRequest struct {
	StartDate   string          `json:"start_date"  validate:"required,date"                      example:"2025-12-24"`
	EndDate     string          `json:"end_date"    validate:"required,date"                      example:"2025-12-26"`
	RateType    string          `json:"rate_type"   validate:"required,oneof=FIXED PERCENTAGE"    example:"PERCENTAGE"`
	Value       decimal.Decimal `json:"value"       swaggertype:"number"                          example:"20"`
	Description *string         `json:"description" validate:"omitempty,max=255"`
}

// ToModel builds the rule. The request must have passed struct validation, so both dates parse.
func (c *CreatePeakRateRequest) ToModel(roomTypeID, user string) model.PeakRateRule {
	start, _ := period.ParseDate(c.StartDate)
	end, _ := period.ParseDate(c.EndDate)

	return model.PeakRateRule{
		ID:          uuid.NewString(),
		RoomTypeID:  roomTypeID,
		StartDate:   start,
		EndDate:     end,
		RateType:    c.RateType,
		Value:       c.Value,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdatePeakRateRequest struct {
	StartDate   *string          `json:"start_date"  validate:"omitempty,date"                   example:"2025-12-24"`
	EndDate     *string          `json:"end_date"    validate:"omitempty,date"                   example:"2025-12-26"`
	RateType    *string          `json:"rate_type"   validate:"omitempty,oneof=FIXED PERCENTAGE" example:"FIXED"`
	Value       *decimal.Decimal `json:"value"       swaggertype:"number"                        example:"85000"`
	Description *string          `json:"description" validate:"omitempty,max=255"`
}

func (u *UpdatePeakRateRequest) IsEmpty() bool {
	return u.StartDate == nil && u.EndDate == nil && u.RateType == nil && u.Value == nil && u.Description == nil
}

// Merge returns rule with the submitted fields applied.
func (u *UpdatePeakRateRequest) Merge(rule model.PeakRateRule) model.PeakRateRule {
	if u.StartDate != nil {
		rule.StartDate, _ = period.ParseDate(*u.StartDate)
	}

	if u.EndDate != nil {
		rule.EndDate, _ = period.ParseDate(*u.EndDate)
	}

	if u.RateType != nil {
		rule.RateType = *u.RateType
	}

	if u.Value != nil {
		rule.Value = *u.Value
	}

	if u.Description != nil {
		rule.Description = u.Description
	}

	return rule
}

// Values lists the columns written back for a merged rule.
func Values(rule model.PeakRateRule, user string, now time.Time) map[string]any {
	return map[string]any{
		model.FieldStartDate:     period.Day(rule.StartDate),
		model.FieldEndDate:       period.Day(rule.EndDate),
		model.FieldRateType:      rule.RateType,
		model.FieldValue:         rule.Value,
		model.FieldDescription:   rule.Description,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: user,
	}
}

type PeakRateResponse struct {
	ID          string          `json:"id"`
	RoomTypeID  string          `json:"room_type_id"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	RateType    string          `json:"rate_type"`
	Value       decimal.Decimal `json:"value"        swaggertype:"number"`
	Description *string         `json:"description"`
	gDto.Metadata
}

func (r *PeakRateResponse) FromModel(model model.PeakRateRule) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.StartDate = period.FormatDate(model.StartDate)
	r.EndDate = period.FormatDate(model.EndDate)
	r.RateType = model.RateType
	r.Value = model.Value
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

// OverlapWarning names an existing rule that shares days with the written one.
type OverlapWarning struct {
	RuleID    string `json:"rule_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type PeakRateMutationResponse struct {
	Rule     PeakRateResponse `json:"rule"`
	Warnings []OverlapWarning `json:"warnings,omitempty"`
}

func (r *PeakRateMutationResponse) FromModel(rule model.PeakRateRule, overlapping []model.PeakRateRule) {
	r.Rule.FromModel(rule)

	for _, other := range overlapping {
		r.Warnings = append(r.Warnings, OverlapWarning{
			RuleID:    other.ID,
			StartDate: period.FormatDate(other.StartDate),
			EndDate:   period.FormatDate(other.EndDate),
		})
	}
}

type GetPeakRatesResponse struct {
	PeakRates []PeakRateResponse `json:"peak_rates"`
}

func (r *GetPeakRatesResponse) FromModels(models []model.PeakRateRule) {
	r.PeakRates = make([]PeakRateResponse, len(models))
	for i, mod := range models {
		r.PeakRates[i].FromModel(mod)
	}
}

// QuoteResponse is the nightly price of a room type on one date.
type QuoteResponse struct {
	RoomTypeID string  `json:"room_type_id"`
	Date       string  `json:"date"`
	BasePrice  int64   `json:"base_price"`
	Price      int64   `json:"price"`
	PeakRateID *string `json:"peak_rate_id"`
}

func (q *QuoteResponse) FromResolution(roomTypeID string, basePrice int64, date time.Time, res model.Resolution) {
	q.RoomTypeID = roomTypeID
	q.Date = period.FormatDate(date)
	q.BasePrice = basePrice
	q.Price = res.Price

	if res.Rule != nil {
		q.PeakRateID = &res.Rule.ID
	}
}
