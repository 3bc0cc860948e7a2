package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"osam/config"
	"osam/infras/otel/mocks"
	userMocks "osam/internal/domains/user/mocks"
	"osam/internal/domains/user/model"
	"osam/internal/domains/user/model/dto"
	"osam/internal/domains/user/service"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	gModel "osam/shared/model"
	"osam/shared/timezone"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := userMocks.NewMockUser(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mocks.NewOtel())

	return svc, mockRepo
}

func testUser() model.User {
	return model.User{
		ID:       "test-user-id",
		Username: "editor1",
		Email:    "editor1@example.com",
		Role:     constant.RoleEditor,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "admin",
			ModifiedBy: "admin",
		},
	}
}

func TestUserService_Create(t *testing.T) {
	svc, mockRepo := newUserService(t)

	req := dto.CreateUserRequest{
		Username: "editor1",
		Email:    "editor1@example.com",
		Password: "strong-password",
		Role:     constant.RoleEditor,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user model.User) error {
						assert.NotEqual(t, req.Password, user.Password, "password must be stored hashed")
						assert.True(t, user.Active)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "username already taken",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "email already registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil).
					Times(2)

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

			err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_GetAll(t *testing.T) {
	svc, mockRepo := newUserService(t)

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(11, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.User{testUser()}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 11, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Users, 1)
}

func TestUserService_Delete(t *testing.T) {
	svc, mockRepo := newUserService(t)

	tests := []struct {
		name      string
		ctx       context.Context
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			id:   "test-user-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "self deletion rejected",
			ctx:       context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			id:        "admin-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "user not found",
			ctx:  context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id"),
			id:   "test-user-id",
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

			err := svc.Delete(tt.ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserService_SetActive(t *testing.T) {
	svc, mockRepo := newUserService(t)

	t.Run("deactivates the account", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])
				return nil
			})

		err := svc.SetActive(context.Background(), "test-user-id", false)

		assert.NoError(t, err)
	})

	t.Run("user not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.SetActive(context.Background(), "test-user-id", true)

		assert.Error(t, err)
	})
}

func TestUserService_SetRole(t *testing.T) {
	svc, mockRepo := newUserService(t)

	t.Run("promotes to admin", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, constant.RoleAdmin, fields[model.FieldRole])
				return nil
			})

		err := svc.SetRole(context.Background(), "test-user-id", constant.RoleAdmin)

		assert.NoError(t, err)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		err := svc.SetRole(context.Background(), "test-user-id", "superuser")

		assert.Error(t, err)
	})
}
