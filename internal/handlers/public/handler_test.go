package public_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub/infras/otel/mocks"
	"stayhub/internal/domains/availability/model/dto"
	availabilityMocks "stayhub/internal/domains/availability/service/mocks"
	"stayhub/internal/handlers/public"
	"stayhub/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const propertyID = "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e41"

func TestGetCalendarPricing(t *testing.T) {
	tests := []struct {
		name     string
		month    string
		calendar dto.PropertyCalendarResponse
		err      error
		wantCode int
	}{
		{
			name:     "calendar",
			month:    "2025-02",
			calendar: dto.PropertyCalendarResponse{PropertyID: propertyID, Month: "2025-02", RoomTypes: []dto.MonthlyViewResponse{}},
			wantCode: http.StatusOK,
		},
		{
			name:     "invalid month",
			month:    "2025-13",
			err:      failure.InvalidMonthFormat,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "inactive property",
			month:    "2025-02",
			err:      failure.NotFound("property not found"),
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			availability := availabilityMocks.NewMockAvailability(ctrl)

			availability.EXPECT().PropertyCalendar(gomock.Any(), propertyID, tt.month).Return(tt.calendar, tt.err)

			handler := public.New(availability, mocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/public/properties/"+propertyID+"/calendar-pricing?month="+tt.month, nil))

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.err == nil {
				assert.JSONEq(t, `{"data":{"property_id":"`+propertyID+`","property_name":"","location":"","month":"2025-02","room_types":[]}}`, recorder.Body.String())
			}
		})
	}
}

func TestGetCalendarPricingMalformedID(t *testing.T) {
	ctrl := gomock.NewController(t)

	handler := public.New(availabilityMocks.NewMockAvailability(ctrl), mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/public/properties/not-a-uuid/calendar-pricing?month=2025-02", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.JSONEq(t, `{"error":"id must be a valid UUID"}`, recorder.Body.String())
}
