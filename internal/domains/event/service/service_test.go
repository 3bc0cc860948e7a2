package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"osam/config"
	"osam/infras/otel/mocks"
	eventRepoMocks "osam/internal/domains/event/mocks"
	"osam/internal/domains/event/model"
	"osam/internal/domains/event/model/dto"
	"osam/internal/domains/event/service"
	publisherMocks "osam/internal/events/mocks"
	cacheMocks "osam/shared/cache/mocks"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"
)

func newEventService(t *testing.T) (service.Event, *eventRepoMocks.MockEvent, *cacheMocks.MockRedisCache, *publisherMocks.MockPublisher) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := eventRepoMocks.NewMockEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := publisherMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel, mockPublisher)

	return svc, mockRepo, mockCache, mockPublisher
}

func testEvent(startDate time.Time, status string) model.Event {
	return model.Event{
		ID:        "test-id",
		Name:      "Chichod Fair",
		EventType: model.TypeFair,
		StartDate: startDate,
		Location:  "Chichod",
		Status:    status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}
}

func TestEventService_Create(t *testing.T) {
	svc, mockRepo, mockCache, mockPublisher := newEventService(t)

	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateEventRequest{
				Name:      "Chichod Fair",
				EventType: model.TypeFair,
				StartDate: "2026-11-02",
				Location:  "Chichod",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unparseable start date",
			req: dto.CreateEventRequest{
				Name:      "Chichod Fair",
				EventType: model.TypeFair,
				StartDate: "02-11-2026",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateEventRequest{
				Name:      "Chichod Fair",
				EventType: model.TypeFair,
				StartDate: "2026-11-02",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Get(t *testing.T) {
	svc, mockRepo, mockCache, _ := newEventService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "test-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testEvent(timezone.Now(), model.StatusOngoing), nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "test-id",
		},
		{
			name: "event not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestEventService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newEventService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name: "successful get all",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Event{
						testEvent(timezone.Now(), model.StatusOngoing),
						testEvent(timezone.Now().AddDate(0, 1, 0), model.StatusUpcoming),
					}, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantTotal: 2,
		},
		{
			name: "count error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10, Page: 1}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}

func TestEventService_Update(t *testing.T) {
	svc, mockRepo, mockCache, mockPublisher := newEventService(t)

	tests := []struct {
		name      string
		req       dto.UpdateEventRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update with date change",
			req: dto.UpdateEventRequest{
				Name:      "Chichod Winter Fair",
				StartDate: "2026-12-20",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unparseable date rejected before update",
			req: dto.UpdateEventRequest{
				StartDate: "20-12-2026",
			},
			id: "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateEventRequest{},
			id:        "test-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "event not found",
			req: dto.UpdateEventRequest{
				Name: "Chichod Winter Fair",
			},
			id: "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_UpdateStatus(t *testing.T) {
	svc, mockRepo, mockCache, mockPublisher := newEventService(t)

	tests := []struct {
		name       string
		id         string
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "stale status gets recomputed and persisted",
			id:   "test-id",
			setupMock: func() {
				// Started a month ago, still marked upcoming.
				stale := testEvent(timezone.Now().AddDate(0, -1, 0), model.StatusUpcoming)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stale, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantStatus: model.StatusCompleted,
		},
		{
			name: "unchanged status skips the update",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(testEvent(timezone.Now(), model.StatusOngoing), nil)
			},
			wantErr:    false,
			wantStatus: model.StatusOngoing,
		},
		{
			name: "event not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Event{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			status, err := svc.UpdateStatus(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, status)
			}
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	svc, mockRepo, mockCache, mockPublisher := newEventService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "test-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockPublisher.EXPECT().
					PublishContentChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "event not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
