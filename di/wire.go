//go:build wireinject
// +build wireinject

package di

import (
	"osam/config"
	"osam/infras/jwt"
	"osam/infras/kafka"
	"osam/infras/otel"
	"osam/infras/postgres"
	"osam/infras/redis"
	"osam/infras/s3"
	"osam/internal/events"
	"osam/permissions"
	"osam/shared/cache"
	"osam/transport/http"
	"osam/transport/http/middleware"
	"osam/transport/http/router"

	"github.com/google/wire"

	placeRepository "osam/internal/domains/place/repository"
	placeService "osam/internal/domains/place/service"
	placeHandler "osam/internal/handlers/place"

	eventRepository "osam/internal/domains/event/repository"
	eventService "osam/internal/domains/event/service"
	eventHandler "osam/internal/handlers/event"

	galleryRepository "osam/internal/domains/gallery/repository"
	galleryService "osam/internal/domains/gallery/service"
	galleryHandler "osam/internal/handlers/gallery"

	authService "osam/internal/domains/auth/service"
	userRepository "osam/internal/domains/user/repository"
	userService "osam/internal/domains/user/service"
	authHandler "osam/internal/handlers/auth"
	userHandler "osam/internal/handlers/user"
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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var placeDomain = wire.NewSet(
	placeRepository.New,
	placeService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var galleryDomain = wire.NewSet(
	galleryRepository.New,
	galleryRepository.NewImage,
	galleryService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	placeDomain,
	eventDomain,
	galleryDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	placeHandler.New,
	eventHandler.New,
	galleryHandler.New,
	userHandler.New,
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
