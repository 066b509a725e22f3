package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/config"
	"stayhub/infras/otel"
	propertyModel "stayhub/internal/domains/property/model"
	propertyRepo "stayhub/internal/domains/property/repository"
	"stayhub/internal/domains/roomtype/model"
	"stayhub/internal/domains/roomtype/model/dto"
	"stayhub/internal/domains/roomtype/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomType    = "room_type:get"
	cacheGetAllRoomType = "room_type:gets"
	cacheCountRoomType  = "room_type:count"
)

// RoomType manages room types. An empty ownerID means the caller may act on any owner's room type.
type RoomType interface {
	Create(ctx context.Context, ownerID string, req dto.CreateRoomTypeRequest) (dto.RoomTypeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, ownerID string) (dto.RoomTypeResponse, error)
	Update(ctx context.Context, id, ownerID string, req dto.UpdateRoomTypeRequest) error
	Delete(ctx context.Context, id, ownerID string) error
}

type serviceImpl struct {
	repo         repository.RoomType
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.RoomType, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RoomType {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID string, req dto.CreateRoomTypeRequest) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") //nolint:wrapcheck
	}

	if !property.OwnedBy(ownerID) {
		return res, failure.Forbidden("property belongs to another owner") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	roomType := req.ToModel(user)

	if err = s.repo.Insert(ctx, roomType); err != nil {
		log.Error().Err(err).Msg("failed to create room type")

		return res, fmt.Errorf("failed to create room type: %w", err)
	}

	roomType.OwnerID = property.OwnerID
	roomType.PropertyName = property.Name

	s.invalidateLists(ctx)

	res.FromModel(roomType)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoomType, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return res, fmt.Errorf("failed to get room types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoomType, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count room types")

		return res, fmt.Errorf("failed to count room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, ownerID string) (res dto.RoomTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateID(id); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetRoomType, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		roomType, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(roomType)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save room type to cache")
			}
		}()
	}

	if ownerID != constant.Empty && res.OwnerID != ownerID {
		return dto.RoomTypeResponse{}, model.ErrForbidden
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id, ownerID string, req dto.UpdateRoomTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = roomType.Authorize(ownerID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update room type")

		return fmt.Errorf("failed to update room type: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, ownerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room_type.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	roomType, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = roomType.Authorize(ownerID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete room type")

		return fmt.Errorf("failed to delete room type: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.RoomType, error) {
	if err := validator.ValidateID(id); err != nil {
		return model.RoomType{}, err
	}

	roomType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get room type")

		return roomType, fmt.Errorf("failed to get room type: %w", err)
	}

	if roomType.ID == constant.Empty {
		return roomType, model.ErrNotFound
	}

	return roomType, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoomType, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room type cache")
		}
	}()

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRoomType)
		shared.InvalidateCaches(c, s.cache, cacheCountRoomType)
	}()
}
