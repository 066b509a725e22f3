package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/config"
	"stayhub/infras/otel"
	"stayhub/internal/domains/property/model"
	"stayhub/internal/domains/property/model/dto"
	"stayhub/internal/domains/property/repository"
	"stayhub/shared"
	"stayhub/shared/cache"
	"stayhub/shared/constant"
	gDto "stayhub/shared/dto"
	"stayhub/shared/failure"
	"stayhub/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
	cacheCountProperty  = "property:count"
)

var (
	errPropertyNotFound  = failure.NotFound("property not found")
	errPropertyForbidden = failure.Forbidden("property belongs to another owner")
)

// Property manages listings. An empty ownerID means the caller may act on any owner's property.
type Property interface {
	Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (dto.PropertyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id, ownerID string) (dto.PropertyResponse, error)
	Update(ctx context.Context, id, ownerID string, req dto.UpdatePropertyRequest) error
	Delete(ctx context.Context, id, ownerID string) error
}

type serviceImpl struct {
	repo  repository.Property
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Property {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property := req.ToModel(ownerID)

	if err = s.repo.Insert(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to create property")

		return res, fmt.Errorf("failed to create property: %w", err)
	}

	s.invalidateLists(ctx)

	res.FromModel(property)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id, ownerID string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateID(id); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		property, err := s.find(ctx, id)
		if err != nil {
			return res, err
		}

		res.FromModel(property)

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save property to cache")
			}
		}()
	}

	if ownerID != constant.Empty && res.OwnerID != ownerID {
		return dto.PropertyResponse{}, errPropertyForbidden
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id, ownerID string, req dto.UpdatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, id, ownerID); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id, ownerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".property.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, id, ownerID); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Property, error) {
	if err := validator.ValidateID(id); err != nil {
		return model.Property{}, err
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get property")

		return property, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return property, errPropertyNotFound
	}

	return property, nil
}

func (s *serviceImpl) authorize(ctx context.Context, id, ownerID string) error {
	property, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !property.OwnedBy(ownerID) {
		log.Warn().Str("id", id).Str("ownerID", ownerID).Msg("property owner mismatch")

		return errPropertyForbidden
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property cache")
		}
	}()

	s.invalidateLists(ctx)
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()
}
