package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"stayhub/config"
	"stayhub/infras/kafka"
	kafkaMocks "stayhub/infras/kafka/mocks"
	"stayhub/infras/otel/mocks"
	peakRateMocks "stayhub/internal/domains/peakrate/mocks"
	"stayhub/internal/domains/peakrate/model"
	"stayhub/internal/domains/peakrate/model/dto"
	"stayhub/internal/domains/peakrate/service"
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	roomTypeModel "stayhub/internal/domains/roomtype/model"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	roomTypeID = "3f9c2b7e-1d4a-4e8b-9c6f-2a5b7d8e0f11"
	topic      = "peak_rate.changed"
)

var roomType = roomTypeModel.RoomType{ID: roomTypeID, OwnerID: "owner-1", Name: "Deluxe", BasePrice: 100000, TotalQuantity: 5}

type fixture struct {
	repo         *peakRateMocks.MockPeakRate
	roomTypeRepo *roomTypeMocks.MockRoomType
	kafka        *kafkaMocks.MockClient
	svc          service.PeakRate
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	t.Cleanup(timezone.SetClock(func() time.Time {
		return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	}))

	f := fixture{
		repo:         peakRateMocks.NewMockPeakRate(ctrl),
		roomTypeRepo: roomTypeMocks.NewMockRoomType(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topics.PeakRateChanged = topic

	f.svc = service.New(f.repo, f.roomTypeRepo, f.kafka, cfg, mocks.NewOtel())

	return f
}

func date(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func rule(id string, start, end time.Time, writtenAt time.Time) model.PeakRateRule {
	return model.PeakRateRule{
		ID:         id,
		RoomTypeID: roomTypeID,
		StartDate:  start,
		EndDate:    end,
		RateType:   model.RateTypePercentage,
		Value:      decimal.NewFromInt(20),
		Metadata:   gModel.NewMetadata("owner-1", writtenAt),
	}
}

func ownerContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")
}

func TestPeakRateService_Create(t *testing.T) {
	req := dto.CreatePeakRateRequest{
		StartDate: "2025-02-10",
		EndDate:   "2025-02-14",
		RateType:  model.RateTypePercentage,
		Value:     decimal.NewFromInt(20),
	}

	tests := []struct {
		name         string
		ownerID      string
		req          func() dto.CreatePeakRateRequest
		setupMock    func(f fixture)
		wantCode     int
		wantWarnings []string
	}{
		{
			name:    "successful creation",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 14)).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "admin acts on any room type",
			ownerID: "",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
			},
		},
		{
			name:    "partial overlap is accepted with a warning",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 14)).
					Return([]model.PeakRateRule{rule("r-old", date(2, 12), date(2, 20), date(1, 1))}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
			},
			wantWarnings: []string{"r-old"},
		},
		{
			name:    "exact duplicate range",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 14)).
					Return([]model.PeakRateRule{rule("r-old", date(2, 10), date(2, 14), date(1, 1))}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:    "concurrent duplicate caught by the unique index",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name:    "start date in the past",
			ownerID: "owner-1",
			req: func() dto.CreatePeakRateRequest {
				r := req
				r.StartDate = "2025-01-31"

				return r
			},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "fractional fixed price",
			ownerID: "owner-1",
			req: func() dto.CreatePeakRateRequest {
				r := req
				r.RateType = model.RateTypeFixed
				r.Value = decimal.RequireFromString("85000.5")

				return r
			},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:    "room type of another owner",
			ownerID: "owner-2",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "unknown room type",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomTypeModel.RoomType{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:    "publish failure does not fail the request",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(errors.New("broker unreachable"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			r := req
			if tt.req != nil {
				r = tt.req()
			}

			res, err := f.svc.Create(ownerContext(), roomTypeID, tt.ownerID, r)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.Rule.ID)
			assert.Equal(t, "2025-02-10", res.Rule.StartDate)
			assert.Equal(t, "2025-02-14", res.Rule.EndDate)
			assert.Equal(t, "owner-1", res.Rule.CreatedBy)

			ids := make([]string, 0, len(res.Warnings))
			for _, w := range res.Warnings {
				ids = append(ids, w.RuleID)
			}

			assert.ElementsMatch(t, tt.wantWarnings, ids)
		})
	}
}

func TestPeakRateService_Create_PublishesEvent(t *testing.T) {
	f := newFixture(t)

	f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
	f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, roomTypeID, messages[0].Key)

			event, ok := messages[0].Value.(model.ChangedEvent)
			require.True(t, ok)
			assert.Equal(t, model.EventActionCreated, event.Action)
			assert.Equal(t, "2025-02-01", event.StartDate)
			assert.Equal(t, "owner-1", event.ChangedBy)

			return nil
		})

	_, err := f.svc.Create(ownerContext(), roomTypeID, "owner-1", dto.CreatePeakRateRequest{
		StartDate: "2025-02-01",
		EndDate:   "2025-02-01",
		RateType:  model.RateTypeFixed,
		Value:     decimal.NewFromInt(85000),
	})

	require.NoError(t, err)
}

func TestPeakRateService_List(t *testing.T) {
	t.Run("rules overlapping the window", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 1), date(2, 28)).Return([]model.PeakRateRule{
			rule("r-1", date(1, 25), date(2, 2), date(1, 1)),
			rule("r-2", date(2, 14), date(2, 14), date(1, 2)),
		}, nil)

		res, err := f.svc.List(context.Background(), roomTypeID, "owner-1", date(2, 1), date(2, 28))

		require.NoError(t, err)
		require.Len(t, res.PeakRates, 2)
		assert.Equal(t, "r-1", res.PeakRates[0].ID)
		assert.Equal(t, "2025-01-25", res.PeakRates[0].StartDate)
	})

	t.Run("reversed window", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.List(context.Background(), roomTypeID, "owner-1", date(2, 28), date(2, 1))

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))

		_, err := f.svc.List(context.Background(), roomTypeID, "owner-1", time.Time{}, time.Time{})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestPeakRateService_Update(t *testing.T) {
	older := rule("r-old", date(2, 1), date(2, 28), date(1, 1))
	newer := rule("r-new", date(2, 10), date(2, 15), date(1, 5))
	fixed := model.RateTypeFixed
	value := decimal.NewFromInt(90000)
	markup := decimal.NewFromInt(30)
	newEnd := "2025-02-18"
	pastStart := "2025-01-20"

	tests := []struct {
		name      string
		req       dto.UpdatePeakRateRequest
		setupMock func(f fixture)
		wantCode  int
		wantID    string
	}{
		{
			name: "updates the effective rule",
			req:  dto.UpdatePeakRateRequest{RateType: &fixed, Value: &value, EndDate: &newEnd},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).
					Return([]model.PeakRateRule{older, newer}, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 18)).
					Return([]model.PeakRateRule{older, newer}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, values map[string]any, _ any) (int64, error) {
						assert.Equal(t, model.RateTypeFixed, values[model.FieldRateType])
						assert.Equal(t, date(2, 18), values[model.FieldEndDate])
						assert.Equal(t, "owner-1", values[constant.FieldModifiedBy])

						return 1, nil
					})
				f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
			},
			wantID: "r-new",
		},
		{
			name:     "nothing to update",
			req:      dto.UpdatePeakRateRequest{},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "no rule covers the date",
			req:  dto.UpdatePeakRateRequest{Value: &value},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).Return(nil, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "merged range duplicates another rule",
			req:  dto.UpdatePeakRateRequest{EndDate: &newEnd},
			setupMock: func(f fixture) {
				clash := rule("r-clash", date(2, 10), date(2, 18), date(1, 2))

				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).
					Return([]model.PeakRateRule{newer}, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 18)).
					Return([]model.PeakRateRule{newer, clash}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "moving the start into the past",
			req:  dto.UpdatePeakRateRequest{StartDate: &pastStart},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).
					Return([]model.PeakRateRule{newer}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "rule removed concurrently",
			req:  dto.UpdatePeakRateRequest{Value: &markup},
			setupMock: func(f fixture) {
				f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).
					Return([]model.PeakRateRule{newer}, nil)
				f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 10), date(2, 15)).
					Return([]model.PeakRateRule{newer}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, values map[string]any, _ any) (int64, error) {
						assert.True(t, markup.Equal(values[model.FieldValue].(decimal.Decimal)))

						return 0, nil
					})
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMock != nil {
				tt.setupMock(f)
			}

			res, err := f.svc.Update(ownerContext(), roomTypeID, "owner-1", date(2, 12), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.Rule.ID)
			assert.Equal(t, "2025-02-18", res.Rule.EndDate)
			require.Len(t, res.Warnings, 1)
			assert.Equal(t, "r-old", res.Warnings[0].RuleID)
		})
	}
}

func TestPeakRateService_Delete(t *testing.T) {
	older := rule("r-old", date(2, 1), date(2, 28), date(1, 1))
	newer := rule("r-new", date(2, 10), date(2, 15), date(1, 5))

	t.Run("deletes the effective rule", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 12), date(2, 12)).
			Return([]model.PeakRateRule{newer, older}, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "r-new", args[model.FieldID])

				return nil
			})
		f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)

		require.NoError(t, f.svc.Delete(ownerContext(), roomTypeID, "owner-1", date(2, 12)))
	})

	t.Run("no rule covers the date", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
		f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(3, 1), date(3, 1)).Return(nil, nil)

		err := f.svc.Delete(ownerContext(), roomTypeID, "owner-1", date(3, 1))

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("room type of another owner", func(t *testing.T) {
		f := newFixture(t)

		f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)

		err := f.svc.Delete(ownerContext(), roomTypeID, "owner-2", date(2, 12))

		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}

func TestPeakRateService_ResolveRate(t *testing.T) {
	t.Run("percentage rule applies", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 14), date(2, 14)).
			Return([]model.PeakRateRule{rule("r-1", date(2, 10), date(2, 20), date(1, 1))}, nil)

		res, err := f.svc.ResolveRate(context.Background(), roomTypeID, date(2, 14), 100000)

		require.NoError(t, err)
		assert.Equal(t, int64(120000), res.Price)
		assert.Equal(t, "r-1", res.Rule.ID)
	})

	t.Run("no rule falls back to base price", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 14), date(2, 14)).Return(nil, nil)

		res, err := f.svc.ResolveRate(context.Background(), roomTypeID, date(2, 14), 100000)

		require.NoError(t, err)
		assert.Equal(t, int64(100000), res.Price)
		assert.Nil(t, res.Rule)
	})

	t.Run("invalid base price never reaches storage", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ResolveRate(context.Background(), roomTypeID, date(2, 14), 0)

		require.ErrorIs(t, err, model.ErrInvalidBasePrice)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestPeakRateService_Quote(t *testing.T) {
	f := newFixture(t)

	f.roomTypeRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomType, nil)
	f.repo.EXPECT().Overlapping(gomock.Any(), roomTypeID, date(2, 14), date(2, 14)).
		Return([]model.PeakRateRule{rule("r-1", date(2, 10), date(2, 20), date(1, 1))}, nil)

	res, err := f.svc.Quote(context.Background(), roomTypeID, "owner-1", date(2, 14))

	require.NoError(t, err)
	assert.Equal(t, int64(100000), res.BasePrice)
	assert.Equal(t, int64(120000), res.Price)
	require.NotNil(t, res.PeakRateID)
	assert.Equal(t, "r-1", *res.PeakRateID)
	assert.Equal(t, "2025-02-14", res.Date)
}

func TestPeakRateService_MalformedRoomTypeID(t *testing.T) {
	const malformed = "not-a-uuid"

	markup := decimal.NewFromInt(30)

	calls := map[string]func(svc service.PeakRate) error{
		"Create": func(svc service.PeakRate) error {
			_, err := svc.Create(ownerContext(), malformed, "owner-1", dto.CreatePeakRateRequest{
				StartDate: "2025-02-10",
				EndDate:   "2025-02-14",
				RateType:  model.RateTypePercentage,
				Value:     markup,
			})

			return err
		},
		"List": func(svc service.PeakRate) error {
			_, err := svc.List(ownerContext(), malformed, "owner-1", time.Time{}, time.Time{})

			return err
		},
		"Update": func(svc service.PeakRate) error {
			_, err := svc.Update(ownerContext(), malformed, "owner-1", date(2, 12), dto.UpdatePeakRateRequest{Value: &markup})

			return err
		},
		"Delete": func(svc service.PeakRate) error {
			return svc.Delete(ownerContext(), malformed, "owner-1", date(2, 12))
		},
		"ResolveRate": func(svc service.PeakRate) error {
			_, err := svc.ResolveRate(context.Background(), malformed, date(2, 14), 100000)

			return err
		},
		"Quote": func(svc service.PeakRate) error {
			_, err := svc.Quote(ownerContext(), malformed, "owner-1", date(2, 14))

			return err
		},
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			err := call(f.svc)

			require.ErrorIs(t, err, failure.InvalidID)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
