package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"osam/config"
	"osam/infras/otel/mocks"
	s3Mocks "osam/infras/s3/mocks"
	eventRepoMocks "osam/internal/domains/event/mocks"
	galleryMocks "osam/internal/domains/gallery/mocks"
	"osam/internal/domains/gallery/model"
	"osam/internal/domains/gallery/model/dto"
	"osam/internal/domains/gallery/service"
	placeRepoMocks "osam/internal/domains/place/mocks"
	eventMocks "osam/internal/events/mocks"
	cacheMocks "osam/shared/cache/mocks"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"
)

type galleryServiceMocks struct {
	repo      *galleryMocks.MockGallery
	imageRepo *galleryMocks.MockGalleryImage
	placeRepo *placeRepoMocks.MockPlace
	eventRepo *eventRepoMocks.MockEvent
	cache     *cacheMocks.MockRedisCache
	publisher *eventMocks.MockPublisher
	storage   *s3Mocks.MockS3
}

func newGalleryService(t *testing.T) (service.Gallery, galleryServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	m := galleryServiceMocks{
		repo:      galleryMocks.NewMockGallery(ctrl),
		imageRepo: galleryMocks.NewMockGalleryImage(ctrl),
		placeRepo: placeRepoMocks.NewMockPlace(ctrl),
		eventRepo: eventRepoMocks.NewMockEvent(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	svc := service.New(
		m.repo,
		m.imageRepo,
		m.placeRepo,
		m.eventRepo,
		cfg,
		m.cache,
		mocks.NewOtel(),
		m.publisher,
		m.storage,
	)

	return svc, m
}

func testGallery() model.Gallery {
	return model.Gallery{
		ID:          "test-id",
		Name:        "Osam Hill Photos",
		GalleryType: model.TypePhotos,
		ViewCount:   7,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func testGalleryImage(id string, order int) model.GalleryImage {
	return model.GalleryImage{
		ID:         id,
		GalleryID:  "test-id",
		ImageURL:   "https://cdn.example.com/test-bucket/galleries/" + id + ".jpg",
		Title:      "Summit view",
		ImageOrder: order,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestGalleryService_Create(t *testing.T) {
	svc, m := newGalleryService(t)

	placeID := "test-place-id"
	eventID := "test-event-id"

	tests := []struct {
		name      string
		req       dto.CreateGalleryRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation without references",
			req: dto.CreateGalleryRequest{
				Name:        "Osam Hill Photos",
				GalleryType: model.TypePhotos,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "successful creation with place reference",
			req: dto.CreateGalleryRequest{
				Name:        "Osam Hill Photos",
				GalleryType: model.TypePhotos,
				PlaceID:     &placeID,
			},
			setupMock: func() {
				m.placeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "place does not exist",
			req: dto.CreateGalleryRequest{
				Name:        "Osam Hill Photos",
				GalleryType: model.TypePhotos,
				PlaceID:     &placeID,
			},
			setupMock: func() {
				m.placeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "event does not exist",
			req: dto.CreateGalleryRequest{
				Name:        "Fair Photos",
				GalleryType: model.TypePhotos,
				EventID:     &eventID,
			},
			setupMock: func() {
				m.eventRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateGalleryRequest{
				Name:        "Osam Hill Photos",
				GalleryType: model.TypePhotos,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_Get(t *testing.T) {
	svc, m := newGalleryService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache miss fetches from repository",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				m.repo.EXPECT().
					IncrementViewCount(gomock.Any(), "test-id").
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cache hit still counts the view",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					IncrementViewCount(gomock.Any(), "test-id").
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gallery not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gallery{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_GetAll(t *testing.T) {
	svc, m := newGalleryService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)

	m.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	m.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Gallery{testGallery()}, nil)

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Galleries, 1)
}

func TestGalleryService_Update(t *testing.T) {
	svc, m := newGalleryService(t)

	placeID := "test-place-id"
	name := "Renamed Gallery"

	tests := []struct {
		name      string
		req       dto.UpdateGalleryRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateGalleryRequest{Name: name},
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "update with dangling place reference",
			req:  dto.UpdateGalleryRequest{PlaceID: &placeID},
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.placeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateGalleryRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "gallery not found",
			req:  dto.UpdateGalleryRequest{Name: name},
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_Delete(t *testing.T) {
	svc, m := newGalleryService(t)

	thumbnail := "https://cdn.example.com/test-bucket/galleries/thumb-1.jpg"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "deletes images and stored objects",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				image := testGalleryImage("test-image-id", 1)
				image.ThumbnailURL = &thumbnail

				m.imageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.GalleryImage{image}, nil)

				m.storage.EXPECT().
					GetObjectNameFromURL("test-bucket", gomock.Any()).
					Return("galleries/test-image-id.jpg").
					Times(2)

				m.storage.EXPECT().
					DeleteFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any()).
					Return(nil).
					Times(2)

				m.imageRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "empty gallery skips the image delete",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				m.imageRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gallery not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gallery{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_ToggleFeatured(t *testing.T) {
	svc, m := newGalleryService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testGallery(), nil)

	m.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	m.publisher.EXPECT().
		PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	featured, err := svc.ToggleFeatured(context.Background(), "test-id")

	assert.NoError(t, err)
	assert.True(t, featured, "unfeatured gallery should toggle on")
}

func TestGalleryService_Statistics(t *testing.T) {
	svc, m := newGalleryService(t)

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testGallery(), nil)

	m.imageRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(12, nil)

	m.imageRepo.EXPECT().
		SumViewCounts(gomock.Any(), "test-id").
		Return(340, nil)

	res, err := svc.Statistics(context.Background(), "test-id")

	assert.NoError(t, err)
	assert.Equal(t, "test-id", res.GalleryID)
	assert.Equal(t, 12, res.ImageCount)
	assert.Equal(t, 340, res.TotalImageViews)
	assert.Equal(t, 7, res.GalleryViews)
}

func TestGalleryService_AddImage(t *testing.T) {
	svc, m := newGalleryService(t)

	tests := []struct {
		name      string
		req       dto.AddGalleryImageRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "appends to the end when no order given",
			req: dto.AddGalleryImageRequest{
				ImageURL: "https://cdn.example.com/test-bucket/galleries/new.jpg",
				Title:    "Sunset",
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				m.imageRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)

				m.imageRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, image model.GalleryImage) error {
						assert.Equal(t, 4, image.ImageOrder)
						return nil
					})

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "explicit order skips the count",
			req: dto.AddGalleryImageRequest{
				ImageURL:   "https://cdn.example.com/test-bucket/galleries/new.jpg",
				Title:      "Sunset",
				ImageOrder: 2,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				m.imageRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "featured image clears the flag from the rest",
			req: dto.AddGalleryImageRequest{
				ImageURL:   "https://cdn.example.com/test-bucket/galleries/new.jpg",
				Title:      "Sunset",
				ImageOrder: 1,
				IsFeatured: true,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testGallery(), nil)

				m.imageRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.imageRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.publisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "gallery not found",
			req: dto.AddGalleryImageRequest{
				ImageURL: "https://cdn.example.com/test-bucket/galleries/new.jpg",
				Title:    "Sunset",
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Gallery{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.AddImage(context.Background(), tt.req, "test-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGalleryService_GetImages(t *testing.T) {
	svc, m := newGalleryService(t)

	m.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	m.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testGallery(), nil)

	m.imageRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.GalleryImage, error) {
			assert.Equal(t, model.ImageFieldImageOrder, params.SortBy)
			assert.Equal(t, "ASC", params.SortDir)

			return []model.GalleryImage{
				testGalleryImage("test-image-id-1", 1),
				testGalleryImage("test-image-id-2", 2),
			}, nil
		})

	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetImages(context.Background(), "test-id")

	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "test-image-id-1", res.Images[0].ID)
}

func TestGalleryService_GetImage(t *testing.T) {
	svc, m := newGalleryService(t)

	t.Run("found", func(t *testing.T) {
		m.imageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testGalleryImage("test-image-id", 1), nil)

		res, err := svc.GetImage(context.Background(), "test-id", "test-image-id")

		assert.NoError(t, err)
		assert.Equal(t, "test-image-id", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		m.imageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.GalleryImage{}, nil)

		_, err := svc.GetImage(context.Background(), "test-id", "test-image-id")

		assert.Error(t, err)
	})
}

func TestGalleryService_DeleteImage(t *testing.T) {
	svc, m := newGalleryService(t)

	m.imageRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testGalleryImage("test-image-id", 1), nil)

	m.storage.EXPECT().
		GetObjectNameFromURL("test-bucket", gomock.Any()).
		Return("galleries/test-image-id.jpg")

	m.storage.EXPECT().
		DeleteFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any()).
		Return(nil)

	m.imageRepo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	m.publisher.EXPECT().
		PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.DeleteImage(context.Background(), "test-id", "test-image-id")

	assert.NoError(t, err)
}

func TestGalleryService_ReorderImages(t *testing.T) {
	svc, m := newGalleryService(t)

	t.Run("successful reorder", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testGallery(), nil)

		m.imageRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil).
			Times(2)

		m.imageRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		m.publisher.EXPECT().
			PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		req := dto.ReorderImagesRequest{
			Orders: map[string]int{
				"test-image-id-1": 2,
				"test-image-id-2": 1,
			},
		}

		err := svc.ReorderImages(context.Background(), req, "test-id")

		assert.NoError(t, err)
	})

	t.Run("foreign image id rejected before any write", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testGallery(), nil)

		m.imageRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		req := dto.ReorderImagesRequest{
			Orders: map[string]int{"other-gallery-image": 1},
		}

		err := svc.ReorderImages(context.Background(), req, "test-id")

		assert.Error(t, err)
	})
}

func TestGalleryService_SetFeaturedImage(t *testing.T) {
	svc, m := newGalleryService(t)

	m.imageRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(testGalleryImage("test-image-id", 1), nil)

	// Unset pass over the whole gallery, then the targeted set.
	m.imageRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	m.publisher.EXPECT().
		PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	m.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	m.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	err := svc.SetFeaturedImage(context.Background(), "test-id", "test-image-id")

	assert.NoError(t, err)
}

func TestGalleryService_GetFeaturedImage(t *testing.T) {
	svc, m := newGalleryService(t)

	t.Run("found", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testGallery(), nil)

		featured := testGalleryImage("test-image-id", 1)
		featured.IsFeatured = true

		m.imageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(featured, nil)

		res, err := svc.GetFeaturedImage(context.Background(), "test-id")

		assert.NoError(t, err)
		assert.True(t, res.IsFeatured)
	})

	t.Run("no featured image", func(t *testing.T) {
		m.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(testGallery(), nil)

		m.imageRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.GalleryImage{}, nil)

		_, err := svc.GetFeaturedImage(context.Background(), "test-id")

		assert.Error(t, err)
	})
}

func TestGalleryService_UploadImage(t *testing.T) {
	svc, m := newGalleryService(t)

	fileHeader := &multipart.FileHeader{Filename: "summit.jpg"}

	t.Run("successful upload", func(t *testing.T) {
		m.storage.EXPECT().
			UploadFile(gomock.Any(), "test-bucket", "galleries", gomock.Any(), fileHeader, gomock.Any()).
			Return("https://cdn.example.com/test-bucket/galleries/generated.jpg", nil)

		res, err := svc.UploadImage(context.Background(), nil, fileHeader)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.URL)
	})

	t.Run("storage error", func(t *testing.T) {
		m.storage.EXPECT().
			UploadFile(gomock.Any(), "test-bucket", "galleries", gomock.Any(), fileHeader, gomock.Any()).
			Return("", errors.New("upload failed"))

		_, err := svc.UploadImage(context.Background(), nil, fileHeader)

		assert.Error(t, err)
	})
}

func TestGalleryService_DeleteImagesByURL(t *testing.T) {
	svc, m := newGalleryService(t)

	url := "https://cdn.example.com/test-bucket/galleries/old.jpg"

	t.Run("successful delete", func(t *testing.T) {
		m.storage.EXPECT().
			GetObjectNameFromURL("test-bucket", url).
			Return("galleries/old.jpg")

		m.storage.EXPECT().
			DeleteFile(gomock.Any(), "test-bucket", gomock.Any(), "galleries/old.jpg").
			Return(nil)

		err := svc.DeleteImagesByURL(context.Background(), dto.DeleteImagesRequest{URLs: []string{url}})

		assert.NoError(t, err)
	})

	t.Run("url outside the bucket", func(t *testing.T) {
		m.storage.EXPECT().
			GetObjectNameFromURL("test-bucket", url).
			Return("")

		err := svc.DeleteImagesByURL(context.Background(), dto.DeleteImagesRequest{URLs: []string{url}})

		assert.Error(t, err)
	})
}
