package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	propertyMocks "stayhub/internal/domains/property/mocks"
	propertyModel "stayhub/internal/domains/property/model"
	roomTypeMocks "stayhub/internal/domains/roomtype/mocks"
	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/internal/domains/roomtype/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	roomTypeID = "3f9c2b7e-1d4a-4e8b-9c6f-2a5b7d8e0f11"
	propertyID = "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e41"
)

type fixture struct {
	repo         *roomTypeMocks.MockRoomType
	propertyRepo *propertyMocks.MockProperty
	cache        *cacheMocks.MockRedisCache
	svc          service.RoomType
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:         roomTypeMocks.NewMockRoomType(ctrl),
		propertyRepo: propertyMocks.NewMockProperty(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.propertyRepo, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		PropertyID:    propertyID,
		Name:          "Deluxe",
		BasePrice:     100000,
		Capacity:      2,
		TotalQuantity: 5,
	}
	property := propertyModel.Property{ID: propertyID, OwnerID: "owner-1", Name: "Villa Ubud"}

	tests := []struct {
		name      string
		ownerID   string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:    "successful creation",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "unknown property",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(propertyModel.Property{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:    "property of another owner",
			ownerID: "owner-2",
			setupMock: func(f fixture) {
				f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "storage error",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.propertyRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(property, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, tt.ownerID)
			res, err := f.svc.Create(ctx, tt.ownerID, req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Villa Ubud", res.PropertyName)
			assert.Equal(t, int64(100000), res.BasePrice)
			assert.Equal(t, 5, res.TotalQuantity)
		})
	}
}

func TestRoomTypeService_Get(t *testing.T) {
	t.Run("cache hit still checks owner", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), "room_type:get:"+roomTypeID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.RoomTypeResponse) = dto.RoomTypeResponse{ID: roomTypeID, OwnerID: "owner-1"}

				return nil
			})

		_, err := f.svc.Get(context.Background(), roomTypeID, "owner-2")

		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("cache miss", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{ID: roomTypeID, OwnerID: "owner-1", Name: "Deluxe"}, nil)

		res, err := f.svc.Get(context.Background(), roomTypeID, "owner-1")

		require.NoError(t, err)
		assert.Equal(t, "Deluxe", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		_, err := f.svc.Get(context.Background(), roomTypeID, "owner-1")

		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestRoomTypeService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.RoomType{{ID: roomTypeID}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.RoomTypes, 1)
	assert.Equal(t, 1, res.TotalPage)
}

func TestRoomTypeService_UpdateAndDelete(t *testing.T) {
	stored := model.RoomType{ID: roomTypeID, OwnerID: "owner-1"}
	price := int64(125000)

	t.Run("update", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, int64(125000), fields[model.FieldBasePrice])
				assert.NotContains(t, fields, model.FieldCapacity)

				return 1, nil
			})

		assert.NoError(t, f.svc.Update(context.Background(), roomTypeID, "owner-1", dto.UpdateRoomTypeRequest{BasePrice: &price}))
	})

	t.Run("update by another owner", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := f.svc.Update(context.Background(), roomTypeID, "owner-2", dto.UpdateRoomTypeRequest{BasePrice: &price})

		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(context.Background(), roomTypeID, "owner-1"))
	})

	t.Run("delete unknown", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.RoomType{}, nil)

		assert.ErrorIs(t, f.svc.Delete(context.Background(), roomTypeID, "owner-1"), model.ErrNotFound)
	})
}

func TestRoomTypeService_MalformedID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")

	f := newFixture(t)

	_, err := f.svc.Get(ctx, "42", "owner-1")
	require.ErrorIs(t, err, failure.InvalidID)

	err = f.svc.Update(ctx, "42", "owner-1", dto.UpdateRoomTypeRequest{Name: "Suite"})
	require.ErrorIs(t, err, failure.InvalidID)

	err = f.svc.Delete(ctx, "42", "owner-1")
	require.ErrorIs(t, err, failure.InvalidID)
}
