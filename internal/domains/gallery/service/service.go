package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"osam/config"
	"osam/infras/otel"
	"osam/infras/s3"
	eventModel "osam/internal/domains/event/model"
	eventRepo "osam/internal/domains/event/repository"
	"osam/internal/domains/gallery/model"
	"osam/internal/domains/gallery/model/dto"
	"osam/internal/domains/gallery/repository"
	placeModel "osam/internal/domains/place/model"
	placeRepo "osam/internal/domains/place/repository"
	"osam/internal/events"
	"osam/shared"
	"osam/shared/cache"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/failure"
	"osam/shared/timezone"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetGallery    = "gallery:get"
	cacheGetAllGallery = "gallery:gets"
	cacheCountGallery  = "gallery:count"
	cacheGalleryImages = "gallery:images"

	uploadDirectory = "galleries"
)

type Gallery interface {
	Create(ctx context.Context, req dto.CreateGalleryRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGalleriesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.GalleryResponse, error)
	Update(ctx context.Context, req dto.UpdateGalleryRequest, id string) error
	Delete(ctx context.Context, id string) error
	ToggleFeatured(ctx context.Context, id string) (bool, error)
	Statistics(ctx context.Context, id string) (dto.GalleryStatisticsResponse, error)

	AddImage(ctx context.Context, req dto.AddGalleryImageRequest, galleryID string) error
	GetImages(ctx context.Context, galleryID string) (dto.GetGalleryImagesResponse, error)
	GetImage(ctx context.Context, galleryID, imageID string) (dto.GalleryImageResponse, error)
	DeleteImage(ctx context.Context, galleryID, imageID string) error
	ReorderImages(ctx context.Context, req dto.ReorderImagesRequest, galleryID string) error
	SetFeaturedImage(ctx context.Context, galleryID, imageID string) error
	GetFeaturedImage(ctx context.Context, galleryID string) (dto.GalleryImageResponse, error)

	UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (dto.UploadImageResponse, error)
	DeleteImagesByURL(ctx context.Context, req dto.DeleteImagesRequest) error
}

type serviceImpl struct {
	repo      repository.Gallery
	imageRepo repository.GalleryImage
	placeRepo placeRepo.Place
	eventRepo eventRepo.Event
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	publisher events.Publisher
	storage   s3.S3
}

func New(
	repo repository.Gallery,
	imageRepo repository.GalleryImage,
	placeRepo placeRepo.Place,
	eventRepo eventRepo.Event,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	publisher events.Publisher,
	storage s3.S3,
) Gallery {
	return &serviceImpl{
		repo:      repo,
		imageRepo: imageRepo,
		placeRepo: placeRepo,
		eventRepo: eventRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		publisher: publisher,
		storage:   storage,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGalleryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.checkReferences(ctx, req.PlaceID, req.EventID); err != nil {
		return err
	}

	gallery := req.ToModel(user)

	if err = s.repo.Insert(ctx, gallery); err != nil {
		log.Error().Err(err).Msg("failed to create gallery")

		return fmt.Errorf("failed to create gallery: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGallery, gallery.ID, events.ActionCreated)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)
		shared.InvalidateCaches(c, s.cache, cacheCountGallery)
	}()

	return nil
}

// checkReferences rejects a gallery pointing at a place or event that does
// not exist.
func (s *serviceImpl) checkReferences(ctx context.Context, placeID, eventID *string) error {
	if placeID != nil {
		exist, err := s.placeRepo.Exist(ctx, shared.FilterByID(*placeID, placeModel.FieldID, placeModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if place exists")

			return fmt.Errorf("failed to check if place exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("place does not exist") // nolint:wrapcheck
		}
	}

	if eventID != nil {
		exist, err := s.eventRepo.Exist(ctx, shared.FilterByID(*eventID, eventModel.FieldID, eventModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if event exists")

			return fmt.Errorf("failed to check if event exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString("event does not exist") // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGalleriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGallery, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for galleries")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count galleries")

		return res, fmt.Errorf("failed to count galleries: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get galleries")

		return res, fmt.Errorf("failed to get galleries: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save galleries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGallery, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count galleries")

		return res, fmt.Errorf("failed to count galleries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GalleryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGallery, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery")

		s.countView(ctx, id)

		return res, nil
	}

	gallery, err := s.getModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(gallery)

	s.countView(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) getModel(ctx context.Context, id string) (model.Gallery, error) {
	gallery, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery")

		return gallery, fmt.Errorf("failed to get gallery: %w", err)
	}

	if gallery.ID == constant.Empty {
		return gallery, failure.NotFound("gallery not found") // nolint:wrapcheck
	}

	return gallery, nil
}

func (s *serviceImpl) countView(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.repo.IncrementViewCount(c, id); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to increment gallery view count")
		}
	}()
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateGalleryRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateGalleryRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if gallery exists")

		return fmt.Errorf("failed to check if gallery exists: %w", err)
	}

	if !exist {
		log.Error().Msg("gallery not found")

		return failure.NotFound("gallery not found") // nolint:wrapcheck
	}

	if err := s.checkReferences(ctx, req.PlaceID, req.EventID); err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update gallery")

		return fmt.Errorf("failed to update gallery: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGallery, id, events.ActionUpdated)

	s.invalidate(ctx, id)

	return nil
}

// Delete removes the gallery, its image rows, and the stored objects behind
// them. Object deletion failures are logged and skipped so a missing file
// cannot leave the database rows behind.
func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	_, err := s.getModel(ctx, id)
	if err != nil {
		return err
	}

	images, err := s.imageRepo.GetAll(ctx, gDto.QueryParams{}, filterByGallery(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return fmt.Errorf("failed to get gallery images: %w", err)
	}

	for _, image := range images {
		s.deleteStoredObject(ctx, image.ImageURL)

		if image.ThumbnailURL != nil {
			s.deleteStoredObject(ctx, *image.ThumbnailURL)
		}
	}

	if len(images) > 0 {
		if err := s.imageRepo.Delete(ctx, filterByGallery(id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery images")

			return fmt.Errorf("failed to delete gallery images: %w", err)
		}
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery")

		return fmt.Errorf("failed to delete gallery: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGallery, id, events.ActionDeleted)

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) deleteStoredObject(ctx context.Context, url string) {
	bucket := s.cfg.External.S3.BucketName

	objectName := s.storage.GetObjectNameFromURL(bucket, url)
	if objectName == constant.Empty {
		return
	}

	if err := s.storage.DeleteFile(ctx, bucket, constant.Empty, objectName); err != nil {
		log.Error().Err(err).Str("url", url).Msg("failed to delete stored object")
	}
}

func (s *serviceImpl) ToggleFeatured(ctx context.Context, id string) (featured bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleFeatured")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	gallery, err := s.getModel(ctx, id)
	if err != nil {
		return false, err
	}

	featured = !gallery.IsFeatured

	updatedFields := map[string]any{
		model.FieldIsFeatured:    featured,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to toggle gallery featured flag")

		return false, fmt.Errorf("failed to toggle gallery featured flag: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGallery, id, events.ActionUpdated)

	s.invalidate(ctx, id)

	return featured, nil
}

func (s *serviceImpl) Statistics(ctx context.Context, id string) (res dto.GalleryStatisticsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statistics")
	defer scope.End()
	defer scope.TraceIfError(err)

	gallery, err := s.getModel(ctx, id)
	if err != nil {
		return res, err
	}

	imageCount, err := s.imageRepo.Count(ctx, filterByGallery(id))
	if err != nil {
		log.Error().Err(err).Msg("failed to count gallery images")

		return res, fmt.Errorf("failed to count gallery images: %w", err)
	}

	totalViews, err := s.imageRepo.SumViewCounts(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to sum gallery image views")

		return res, fmt.Errorf("failed to sum gallery image views: %w", err)
	}

	res = dto.GalleryStatisticsResponse{
		GalleryID:       id,
		ImageCount:      imageCount,
		TotalImageViews: totalViews,
		GalleryViews:    gallery.ViewCount,
	}

	return res, nil
}

func (s *serviceImpl) AddImage(ctx context.Context, req dto.AddGalleryImageRequest, galleryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getModel(ctx, galleryID); err != nil {
		return err
	}

	image := req.ToModel(galleryID, user)

	// Append to the end of the gallery unless an explicit order is given.
	if image.ImageOrder == 0 {
		count, err := s.imageRepo.Count(ctx, filterByGallery(galleryID))
		if err != nil {
			log.Error().Err(err).Msg("failed to count gallery images")

			return fmt.Errorf("failed to count gallery images: %w", err)
		}

		image.ImageOrder = count + 1
	}

	if image.IsFeatured {
		if err := s.unsetFeaturedImages(ctx, galleryID, user); err != nil {
			return err
		}
	}

	if err = s.imageRepo.Insert(ctx, image); err != nil {
		log.Error().Err(err).Msg("failed to add gallery image")

		return fmt.Errorf("failed to add gallery image: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGalleryImage, image.ID, events.ActionCreated)

	s.invalidateImages(ctx, galleryID)

	return nil
}

func (s *serviceImpl) GetImages(ctx context.Context, galleryID string) (res dto.GetGalleryImagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGalleryImages, galleryID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for gallery images")

		return res, nil
	}

	if _, err = s.getModel(ctx, galleryID); err != nil {
		return res, err
	}

	params := gDto.QueryParams{
		SortBy:  model.ImageFieldImageOrder,
		SortDir: "ASC",
	}

	images, err := s.imageRepo.GetAll(ctx, params, filterByGallery(galleryID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery images")

		return res, fmt.Errorf("failed to get gallery images: %w", err)
	}

	res.FromModels(images)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gallery images to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetImage(ctx context.Context, galleryID, imageID string) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	image, err := s.getImageModel(ctx, galleryID, imageID)
	if err != nil {
		return res, err
	}

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) getImageModel(ctx context.Context, galleryID, imageID string) (model.GalleryImage, error) {
	image, err := s.imageRepo.Get(ctx, filterImage(galleryID, imageID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get gallery image")

		return image, fmt.Errorf("failed to get gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return image, failure.NotFound("gallery image not found") // nolint:wrapcheck
	}

	return image, nil
}

func (s *serviceImpl) DeleteImage(ctx context.Context, galleryID, imageID string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImage")
	defer scope.End()
	defer scope.TraceIfError(nil)

	image, err := s.getImageModel(ctx, galleryID, imageID)
	if err != nil {
		return err
	}

	s.deleteStoredObject(ctx, image.ImageURL)

	if image.ThumbnailURL != nil {
		s.deleteStoredObject(ctx, *image.ThumbnailURL)
	}

	if err := s.imageRepo.Delete(ctx, filterImage(galleryID, imageID)); err != nil {
		log.Error().Err(err).Msg("failed to delete gallery image")

		return fmt.Errorf("failed to delete gallery image: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGalleryImage, imageID, events.ActionDeleted)

	s.invalidateImages(ctx, galleryID)

	return nil
}

// ReorderImages applies the id to order mapping. Ids outside the gallery
// are rejected before anything is written.
func (s *serviceImpl) ReorderImages(ctx context.Context, req dto.ReorderImagesRequest, galleryID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReorderImages")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getModel(ctx, galleryID); err != nil {
		return err
	}

	for imageID := range req.Orders {
		exist, err := s.imageRepo.Exist(ctx, filterImage(galleryID, imageID))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if gallery image exists")

			return fmt.Errorf("failed to check if gallery image exists: %w", err)
		}

		if !exist {
			return failure.BadRequestFromString(fmt.Sprintf("image %s does not belong to this gallery", imageID)) // nolint:wrapcheck
		}
	}

	for imageID, order := range req.Orders {
		updatedFields := map[string]any{
			model.ImageFieldImageOrder: order,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   user,
		}

		if err := s.imageRepo.Update(ctx, updatedFields, filterImage(galleryID, imageID)); err != nil {
			log.Error().Err(err).Msg("failed to reorder gallery image")

			return fmt.Errorf("failed to reorder gallery image: %w", err)
		}
	}

	s.publisher.PublishContentChange(ctx, events.EntityGallery, galleryID, events.ActionUpdated)

	s.invalidateImages(ctx, galleryID)

	return nil
}

// SetFeaturedImage marks one image featured and clears the flag from every
// other image in the gallery.
func (s *serviceImpl) SetFeaturedImage(ctx context.Context, galleryID, imageID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetFeaturedImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.getImageModel(ctx, galleryID, imageID); err != nil {
		return err
	}

	if err := s.unsetFeaturedImages(ctx, galleryID, user); err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.ImageFieldIsFeatured: true,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err := s.imageRepo.Update(ctx, updatedFields, filterImage(galleryID, imageID)); err != nil {
		log.Error().Err(err).Msg("failed to set featured gallery image")

		return fmt.Errorf("failed to set featured gallery image: %w", err)
	}

	s.publisher.PublishContentChange(ctx, events.EntityGalleryImage, imageID, events.ActionUpdated)

	s.invalidateImages(ctx, galleryID)

	return nil
}

func (s *serviceImpl) unsetFeaturedImages(ctx context.Context, galleryID, user string) error {
	updatedFields := map[string]any{
		model.ImageFieldIsFeatured: false,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err := s.imageRepo.Update(ctx, updatedFields, filterByGallery(galleryID)); err != nil {
		log.Error().Err(err).Msg("failed to unset featured gallery images")

		return fmt.Errorf("failed to unset featured gallery images: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetFeaturedImage(ctx context.Context, galleryID string) (res dto.GalleryImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetFeaturedImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getModel(ctx, galleryID); err != nil {
		return res, err
	}

	filter := filterByGallery(galleryID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.ImageFieldIsFeatured,
		Operator: gDto.FilterOperatorEq,
		Value:    true,
		Table:    model.ImageTableName,
	})

	image, err := s.imageRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured gallery image")

		return res, fmt.Errorf("failed to get featured gallery image: %w", err)
	}

	if image.ID == constant.Empty {
		return res, failure.NotFound("no featured image in this gallery") // nolint:wrapcheck
	}

	res.FromModel(image)

	return res, nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	fileName := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	url, err := s.storage.UploadFile(ctx, s.cfg.External.S3.BucketName, uploadDirectory, file, fileHeader, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload gallery image")

		return res, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	res.URL = url

	return res, nil
}

func (s *serviceImpl) DeleteImagesByURL(ctx context.Context, req dto.DeleteImagesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImagesByURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	bucket := s.cfg.External.S3.BucketName

	for _, url := range req.URLs {
		objectName := s.storage.GetObjectNameFromURL(bucket, url)
		if objectName == constant.Empty {
			return failure.BadRequestFromString(fmt.Sprintf("url does not belong to the storage bucket: %s", url)) // nolint:wrapcheck
		}

		if err := s.storage.DeleteFile(ctx, bucket, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete stored object")

			return fmt.Errorf("failed to delete stored object: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGallery, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)
		shared.InvalidateCaches(c, s.cache, cacheCountGallery)
		shared.InvalidateCaches(c, s.cache, cacheGalleryImages)
	}()
}

func (s *serviceImpl) invalidateImages(ctx context.Context, galleryID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGalleryImages, galleryID)); err != nil {
			log.Error().Err(err).Msg("failed to delete gallery images from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGallery)
	}()
}

func filterByGallery(galleryID string) gDto.FilterGroup {
	return shared.FilterByID(galleryID, model.ImageFieldGalleryID, model.ImageTableName)
}

func filterImage(galleryID, imageID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.ImageFieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    imageID,
				Table:    model.ImageTableName,
			},
			gDto.Filter{
				Field:    model.ImageFieldGalleryID,
				Operator: gDto.FilterOperatorEq,
				Value:    galleryID,
				Table:    model.ImageTableName,
			},
		},
	}
}
