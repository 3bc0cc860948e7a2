package place

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListFilter_BareRequest(t *testing.T) {
	handler := &Handler{}
	r := httptest.NewRequest(http.MethodGet, "/v1/places", nil)

	filter := handler.buildListFilter(r)

	assert.Empty(t, filter.Filters, "absent params must not produce filters")

	where, args := filter.GetWhereClause()
	assert.Empty(t, where, "a bare list request must not constrain the query")
	assert.Empty(t, args)
}

func TestBuildListFilter_EnumAndSubstringParams(t *testing.T) {
	handler := &Handler{}
	r := httptest.NewRequest(http.MethodGet, "/v1/places?name=osam&category=viewpoint&accessibility=moderate", nil)

	filter := handler.buildListFilter(r)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "LOWER(places.name) LIKE LOWER(:name)")
	assert.Equal(t, "%osam%", args["name"])
	assert.Contains(t, where, "places.category = :category")
	assert.Equal(t, "viewpoint", args["category"])
	assert.Contains(t, where, "places.accessibility = :accessibility")
	assert.Equal(t, "moderate", args["accessibility"])
	assert.NotContains(t, args, "location", "absent params stay out of the args map")
}

func TestBuildListFilter_BoolAndNumericParams(t *testing.T) {
	handler := &Handler{}
	r := httptest.NewRequest(http.MethodGet, "/v1/places?featured=true&free=true&min_views=10", nil)

	filter := handler.buildListFilter(r)
	where, args := filter.GetWhereClause()

	assert.Contains(t, where, "places.is_featured = :is_featured")
	assert.Equal(t, true, args["is_featured"])
	assert.Contains(t, where, "places.entry_fee <= :entry_fee")
	assert.Equal(t, 0, args["entry_fee"])
	assert.Contains(t, where, "places.view_count >= :view_count")
	assert.Equal(t, 10, args["view_count"])
}

func TestBuildListFilter_IgnoresMalformedValues(t *testing.T) {
	handler := &Handler{}
	r := httptest.NewRequest(http.MethodGet, "/v1/places?featured=maybe&min_views=lots", nil)

	filter := handler.buildListFilter(r)

	assert.Empty(t, filter.Filters)
}
