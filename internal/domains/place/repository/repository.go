package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"osam/infras/otel"
	"osam/infras/postgres"
	"osam/internal/domains/place/model"
	"osam/shared/constant"
	gDto "osam/shared/dto"
	"osam/shared/logger"
	gRepo "osam/shared/repository"
)

type Place interface {
	Insert(ctx context.Context, model model.Place) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Place, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Place, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IncrementViewCount(ctx context.Context, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Place]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Place {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Place](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) IncrementViewCount(ctx context.Context, id string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".place.IncrementViewCount")
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
