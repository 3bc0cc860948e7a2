package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"osam/infras/otel"
	"osam/infras/postgres"
	"osam/internal/domains/gallery/model"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/logger"
	gRepo "osam/shared/repository"
)

type Gallery interface {
	Insert(ctx context.Context, model model.Gallery) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Gallery, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Gallery, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IncrementViewCount(ctx context.Context, id string) error
}

type galleryImpl struct {
	gRepo.Repository[model.Gallery]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Gallery {
	return &galleryImpl{
		Repository: gRepo.NewRepository[model.Gallery](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *galleryImpl) IncrementViewCount(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".gallery.IncrementViewCount")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET %s = %s + 1 WHERE %s = :id", model.TableName, model.FieldViewCount, model.FieldViewCount, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := repo.db.Write.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment view count (%s): %w", model.EntityName, err)
	}

	return nil
}

type GalleryImage interface {
	Insert(ctx context.Context, model model.GalleryImage) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.GalleryImage, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.GalleryImage, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	SumViewCounts(ctx context.Context, galleryID string) (int, error)
}

type galleryImageImpl struct {
	gRepo.Repository[model.GalleryImage]
	db   *postgres.Connection
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) GalleryImage {
	return &galleryImageImpl{
		Repository: gRepo.NewRepository[model.GalleryImage](model.ImageEntityName, model.ImageTableName, model.ImageFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *galleryImageImpl) SumViewCounts(ctx context.Context, galleryID string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".gallery_image.SumViewCounts")
	defer scope.End()

	query := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = :gallery_id", model.ImageFieldViewCount, model.ImageTableName, model.ImageFieldGalleryID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", model.ImageEntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &total, map[string]any{"gallery_id": galleryID})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to sum view counts (%s): %w", model.ImageEntityName, err)
	}

	return total, nil
}
