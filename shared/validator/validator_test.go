package validator_test

import (
	"strings"
	"testing"

	"stayhub/shared/failure"
	"stayhub/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bulkItem struct {
	Date        string `json:"date"         validate:"required,date"`
	IsAvailable *bool  `json:"is_available" validate:"required"`
}

type testRequest struct {
	Name     string     `json:"name"      validate:"required"`
	Capacity int        `json:"capacity"  validate:"gte=1,lte=50"`
	Month    string     `json:"month"     validate:"omitempty,month"`
	RateType string     `json:"rate_type" validate:"omitempty,oneof=FIXED PERCENTAGE"`
	Items    []bulkItem `json:"items"     validate:"omitempty,max=2,dive"`
}

func TestValidateStruct(t *testing.T) {
	yes := true

	tests := []struct {
		name    string
		data    testRequest
		wantMsg string
	}{
		{
			name: "valid",
			data: testRequest{Name: "Deluxe", Capacity: 2, Month: "2025-02", RateType: "FIXED",
				Items: []bulkItem{{Date: "2025-02-01", IsAvailable: &yes}}},
		},
		{
			name:    "missing required uses json name",
			data:    testRequest{Capacity: 2},
			wantMsg: "name is required",
		},
		{
			name:    "capacity out of range",
			data:    testRequest{Name: "Deluxe", Capacity: 51},
			wantMsg: "capacity must be less than or equal to 50",
		},
		{
			name:    "invalid month",
			data:    testRequest{Name: "Deluxe", Capacity: 2, Month: "2025-13"},
			wantMsg: "month must be in YYYY-MM format between 2000-01 and 2100-12",
		},
		{
			name:    "unknown rate type",
			data:    testRequest{Name: "Deluxe", Capacity: 2, RateType: "DISCOUNT"},
			wantMsg: "rate_type must be one of FIXED PERCENTAGE",
		},
		{
			name: "too many items",
			data: testRequest{Name: "Deluxe", Capacity: 2, Items: []bulkItem{
				{Date: "2025-02-01", IsAvailable: &yes},
				{Date: "2025-02-02", IsAvailable: &yes},
				{Date: "2025-02-03", IsAvailable: &yes},
			}},
			wantMsg: "items must have at most 2 items",
		},
		{
			name:    "impossible date inside slice",
			data:    testRequest{Name: "Deluxe", Capacity: 2, Items: []bulkItem{{Date: "2025-02-30", IsAvailable: &yes}}},
			wantMsg: "items[0].date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:    "missing flag inside slice",
			data:    testRequest{Name: "Deluxe", Capacity: 2, Items: []bulkItem{{Date: "2025-02-01"}}},
			wantMsg: "items[0].is_available is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-02-01", "date"))
	assert.Error(t, validator.ValidateVar("2025-02-29", "date"))
	assert.NoError(t, validator.ValidateVar("2100-12", "month"))
	assert.Error(t, validator.ValidateVar("2101-01", "month"))
	assert.Error(t, validator.ValidateVar("", "required"))
	assert.Error(t, validator.ValidateVar("not-a-uuid", "uuid"))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validator.ValidateID("3f9c2b7e-1d4a-4e8b-9c6f-2a5b7d8e0f11"))

	for _, id := range []string{"", "42", "not-a-uuid'; --", "3f9c2b7e1d4a4e8b9c6f2a5b7d8e0f1"} {
		assert.ErrorIs(t, validator.ValidateID(id), failure.InvalidID, id)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid body", body: `{"name":"Deluxe","capacity":2}`},
		{name: "fails validation", body: `{"name":"","capacity":2}`, wantErr: true},
		{name: "malformed body", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data testRequest

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
