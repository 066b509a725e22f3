//go:build wireinject
// +build wireinject

package di

import (
	"stayhub/config"
	"stayhub/infras/jwt"
	"stayhub/infras/kafka"
	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/infras/redis"
	"stayhub/permissions"
	"stayhub/shared/cache"
	"stayhub/transport/http"
	"stayhub/transport/http/middleware"
	"stayhub/transport/http/router"

	availabilityRepository "stayhub/internal/domains/availability/repository"
	availabilityService "stayhub/internal/domains/availability/service"
	peakRateRepository "stayhub/internal/domains/peakrate/repository"
	peakRateService "stayhub/internal/domains/peakrate/service"
	propertyRepository "stayhub/internal/domains/property/repository"
	propertyService "stayhub/internal/domains/property/service"
	reservationRepository "stayhub/internal/domains/reservation/repository"
	roomTypeRepository "stayhub/internal/domains/roomtype/repository"
	roomTypeService "stayhub/internal/domains/roomtype/service"

	propertyHandler "stayhub/internal/handlers/property"
	publicHandler "stayhub/internal/handlers/public"
	roomHandler "stayhub/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var roomTypeDomain = wire.NewSet(
	roomTypeRepository.New,
	roomTypeService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	reservationRepository.New,
	availabilityService.New,
)

var peakRateDomain = wire.NewSet(
	peakRateRepository.New,
	peakRateService.New,
)

var domains = wire.NewSet(
	propertyDomain,
	roomTypeDomain,
	availabilityDomain,
	peakRateDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	propertyHandler.New,
	roomHandler.New,
	publicHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
