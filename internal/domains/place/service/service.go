package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"osam/config"
	"osam/infras/otel"
	"osam/internal/domains/place/model"
	"osam/internal/domains/place/model/dto"
	"osam/internal/domains/place/repository"
	"osam/internal/events"
	"osam/shared"
	"osam/shared/cache"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/failure"
	"osam/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPlace    = "place:get"
	cacheGetAllPlace = "place:gets"
	cacheCountPlace  = "place:count"
)

type Place interface {
	Create(ctx context.Context, req dto.CreatePlaceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPlacesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PlaceResponse, error)
	Update(ctx context.Context, req dto.UpdatePlaceRequest, id string) error
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (bool, error)
}

type serviceImpl struct {
	repo      repository.Place
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
}

func New(repo repository.Place, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, publisher events.Publisher) Place {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlaceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	place := req.ToModel(user)

	if err = s.repo.Insert(ctx, place); err != nil {
		log.Error().Err(err).Msg("failed to create place")

		return fmt.Errorf("failed to create place: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityPlace, place.ID, events.ActionCreated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllPlace)
		shared.InvalidateCaches(c, s.cache, cacheCountPlace)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPlacesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPlace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for places")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count places")

		return res, fmt.Errorf("failed to count places: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get places")

		return res, fmt.Errorf("failed to get places: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save places to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPlace, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for place count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count places")

		return res, fmt.Errorf("failed to count places: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save place count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PlaceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPlace, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for place")

		s.countView(ctx, id)

		return res, nil
	}

	place, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get place")

		return res, fmt.Errorf("failed to get place: %w", err)
	}

	if place.ID == constant.Empty {
		return res, failure.NotFound("place not found") // nolint:wrapcheck
	}

	res.FromModel(place)

	s.countView(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save place to cache")
		}
	}()

	return res, nil
}

// countView bumps the view counter off the request path. The cached copy
// keeps its stale count until the entry expires.
func (s *serviceImpl) countView(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.repo.IncrementViewCount(c, id); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to increment place view count")
		}
	}()
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePlaceRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdatePlaceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if place exists")

		return fmt.Errorf("failed to check if place exists: %w", err)
	}

	if !exist {
		log.Error().Msg("place not found")

		return failure.NotFound("place not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update place")

		return fmt.Errorf("failed to update place: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityPlace, id, events.ActionUpdated)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if place exists")

		return fmt.Errorf("failed to check if place exists: %w", err)
	}

	if !exist {
		log.Error().Msg("place not found")

		return failure.NotFound("place not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete place")

		return fmt.Errorf("failed to delete place: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityPlace, id, events.ActionDeleted)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ToggleFeatured(ctx context.Context, id string) (featured bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleFeatured")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	place, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get place")

		return false, fmt.Errorf("failed to get place: %w", err)
	}

	if place.ID == constant.Empty {
		return false, failure.NotFound("place not found") // nolint:wrapcheck
	}

	featured = !place.IsFeatured

	updatedFields := map[string]any{
		model.FieldIsFeatured:    featured,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle place featured flag")

		return false, fmt.Errorf("failed to toggle place featured flag: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityPlace, id, events.ActionUpdated)

	s.invalidate(ctx, id)

	return featured, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetPlace, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete place from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPlace)
		shared.InvalidateCaches(c, s.cache, cacheCountPlace)
	}()
}
