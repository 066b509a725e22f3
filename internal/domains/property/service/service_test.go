package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"stayhub/config"
	"stayhub/infras/otel/mocks"
	propertyMocks "stayhub/internal/domains/property/mocks"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	"stayhub/internal/domains/property/service"
	cacheMocks "stayhub/shared/cache/mocks"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	propertyID      = "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e41"
	otherPropertyID = "8d1e4a6c-2b3f-4c5d-8e7f-9a0b1c2d3e42"
)

type fixture struct {
	repo  *propertyMocks.MockProperty
	cache *cacheMocks.MockRedisCache
	svc   service.Property
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	repo := propertyMocks.NewMockProperty(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return fixture{
		repo:  repo,
		cache: redisCache,
		svc:   service.New(repo, cfg, redisCache, mocks.NewOtel()),
	}
}

func TestPropertyService_Create(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, property model.Property) error {
			assert.Equal(t, "owner-1", property.OwnerID)
			assert.True(t, property.Active)
			assert.NotEmpty(t, property.ID)

			return nil
		})

	res, err := f.svc.Create(context.Background(), "owner-1", dto.CreatePropertyRequest{Name: "Villa Ubud"})

	require.NoError(t, err)
	assert.Equal(t, "Villa Ubud", res.Name)
	assert.Equal(t, "owner-1", res.CreatedBy)
}

func TestPropertyService_CreateStorageError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))

	_, err := f.svc.Create(context.Background(), "owner-1", dto.CreatePropertyRequest{Name: "Villa Ubud"})

	assert.Error(t, err)
}

func TestPropertyService_Get(t *testing.T) {
	stored := model.Property{ID: propertyID, OwnerID: "owner-1", Name: "Villa Ubud", Active: true}

	tests := []struct {
		name      string
		ownerID   string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:    "cache miss loads from storage",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "property:get:"+propertyID, gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
		{
			name:    "admin scope reads any owner",
			ownerID: constant.Empty,
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
		},
		{
			name:    "other owner is forbidden",
			ownerID: "owner-2",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "unknown property",
			ownerID: "owner-1",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Property{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Get(context.Background(), propertyID, tt.ownerID)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, propertyID, res.ID)
		})
	}
}

func TestPropertyService_GetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), filter).Return(11, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, filter).Return([]model.Property{{ID: propertyID}, {ID: otherPropertyID}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, filter)

	require.NoError(t, err)
	assert.Len(t, res.Properties, 2)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 11, res.TotalData)
}

func TestPropertyService_UpdateAndDelete(t *testing.T) {
	stored := model.Property{ID: propertyID, OwnerID: "owner-1"}
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")

	t.Run("update writes transformed fields", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) (int64, error) {
				assert.Equal(t, "Villa Sanur", fields[model.FieldName])
				assert.Equal(t, "owner-1", fields[constant.FieldModifiedBy])

				return 1, nil
			})

		assert.NoError(t, f.svc.Update(ctx, propertyID, "owner-1", dto.UpdatePropertyRequest{Name: "Villa Sanur"}))
	})

	t.Run("delete by another owner is forbidden", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)

		err := f.svc.Delete(ctx, propertyID, "owner-2")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("delete", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.Delete(ctx, propertyID, "owner-1"))
	})
}

func TestPropertyService_MalformedID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")

	f := newFixture(t)

	_, err := f.svc.Get(ctx, "villa-ubud", "owner-1")
	require.ErrorIs(t, err, failure.InvalidID)

	err = f.svc.Update(ctx, "villa-ubud", "owner-1", dto.UpdatePropertyRequest{Name: "Villa Sanur"})
	require.ErrorIs(t, err, failure.InvalidID)

	err = f.svc.Delete(ctx, "villa-ubud", "owner-1")
	require.ErrorIs(t, err, failure.InvalidID)
}
