package dto_test

import (
	"testing"

	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/shared/validator"

	"github.com/stretchr/testify/assert"
)

func TestCreateRoomTypeRequest_BasePrice(t *testing.T) {
	tests := []struct {
		name      string
		basePrice int64
		wantErr   string
	}{
		{name: "highest price", basePrice: 9_999_999_999},
		{name: "zero", basePrice: 0, wantErr: "base_price is required"},
		{name: "above the cap", basePrice: 10_000_000_000, wantErr: "base_price must be less than or equal to 9999999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateRoomTypeRequest{
				PropertyID:    "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e41",
				Name:          "Deluxe",
				BasePrice:     tt.basePrice,
				Capacity:      2,
				TotalQuantity: 5,
			}

			err := validator.ValidateStruct(&req)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestUpdateRoomTypeRequest_BasePrice(t *testing.T) {
	basePrice := int64(10_000_000_000)

	err := validator.ValidateStruct(&dto.UpdateRoomTypeRequest{BasePrice: &basePrice})

	assert.EqualError(t, err, "base_price must be less than or equal to 9999999999")
}
