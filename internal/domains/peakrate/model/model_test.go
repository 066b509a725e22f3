package model_test

import (
	"testing"

	"stayhub/internal/domains/peakrate/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPeakRateRule_Validate(t *testing.T) {
	tests := []struct {
		name     string
		rateType string
		value    string
		start    int
		end      int
		wantErr  error
	}{
		{name: "fixed", rateType: model.RateTypeFixed, value: "85000", start: 10, end: 12},
		{name: "single day", rateType: model.RateTypeFixed, value: "85000", start: 10, end: 10},
		{name: "percentage discount", rateType: model.RateTypePercentage, value: "-99.5", start: 10, end: 12},
		{name: "percentage upper bound", rateType: model.RateTypePercentage, value: "1000", start: 10, end: 12},
		{name: "reversed range", rateType: model.RateTypeFixed, value: "85000", start: 12, end: 10, wantErr: model.ErrInvalidRange},
		{name: "fractional fixed", rateType: model.RateTypeFixed, value: "850.5", start: 10, end: 12, wantErr: model.ErrInvalidFixed},
		{name: "zero fixed", rateType: model.RateTypeFixed, value: "0", start: 10, end: 12, wantErr: model.ErrInvalidFixed},
		{name: "fixed upper bound", rateType: model.RateTypeFixed, value: "9999999999", start: 10, end: 12},
		{name: "fixed above the value column", rateType: model.RateTypeFixed, value: "100000000000", start: 10, end: 12, wantErr: model.ErrInvalidFixed},
		{name: "negative fixed", rateType: model.RateTypeFixed, value: "-1", start: 10, end: 12, wantErr: model.ErrInvalidFixed},
		{name: "free room", rateType: model.RateTypePercentage, value: "-100", start: 10, end: 12, wantErr: model.ErrInvalidPercent},
		{name: "above upper bound", rateType: model.RateTypePercentage, value: "1000.01", start: 10, end: 12, wantErr: model.ErrInvalidPercent},
		{name: "three decimals", rateType: model.RateTypePercentage, value: "10.125", start: 10, end: 12, wantErr: model.ErrValuePrecision},
		{name: "unknown rate type", rateType: "MULTIPLIER", value: "2", start: 10, end: 12, wantErr: model.ErrInvalidRateType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := model.PeakRateRule{
				StartDate: day(3, tt.start),
				EndDate:   day(3, tt.end),
				RateType:  tt.rateType,
				Value:     decimal.RequireFromString(tt.value),
			}

			err := r.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
