package shared_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"osam/shared"
	cacheMocks "osam/shared/cache/mocks"
	"osam/shared/constant"
	"osam/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *bool
	}{
		{name: "true", input: "true", want: boolPtr(true)},
		{name: "false", input: "false", want: boolPtr(false)},
		{name: "numeric true", input: "1", want: boolPtr(true)},
		{name: "empty string", input: "", want: nil},
		{name: "garbage", input: "maybe", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.input)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "exact division", total: 20, limit: 10, want: 2},
		{name: "partial last page", total: 21, limit: 10, want: 3},
		{name: "empty result", total: 0, limit: 10, want: 1},
		{name: "zero limit", total: 15, limit: 0, want: 1},
		{name: "single page", total: 5, limit: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string     `db:"name"`
		Count    int        `db:"count"`
		Deadline *time.Time `db:"deadline"`
		Ignored  string
	}

	now := time.Now()
	req := updateRequest{
		Name:     "updated name",
		Deadline: &now,
		Ignored:  "no db tag",
	}

	fields := shared.TransformFields(req, "test-user")

	assert.Equal(t, "updated name", fields["name"])
	assert.Equal(t, &now, fields["deadline"])
	assert.NotContains(t, fields, "count", "zero values are skipped")
	assert.Equal(t, "test-user", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("test-id", "id", "places")

	assert.Len(t, filter.Filters, 1)

	f, ok := filter.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", f.Field)
	assert.Equal(t, "test-id", f.Value)
	assert.Equal(t, dto.FilterOperatorEq, f.Operator)
	assert.Equal(t, "places", f.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "place:get:test-id", shared.BuildCacheKey("place:get", "test-id"))
	assert.Equal(t, "gallery:images:a:b", shared.BuildCacheKey("gallery:images", "a", "b"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Limit: 10, Page: 1}
	filter := dto.FilterGroup{}

	first := shared.BuildCacheKeyWithQuery("place:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("place:gets", params, filter)

	assert.Equal(t, first, second, "same query must map to the same key")
	assert.Contains(t, first, "place:gets:")

	other := shared.BuildCacheKeyWithQuery("place:gets", dto.QueryParams{Limit: 20, Page: 1}, filter)
	assert.NotEqual(t, first, other, "different queries must not collide")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().
		Clear(gomock.Any(), "place:gets*").
		Return(nil)

	shared.InvalidateCaches(context.Background(), mockCache, "place:gets")
}
