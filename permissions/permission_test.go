package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"osam/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.NotEmpty(t, data.Endpoints, "embedded permission table must not be empty")
}

func TestFindPermissions(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{
				Path:   "/v1/places",
				Method: http.MethodPost,
				Roles:  []string{"admin", "editor"},
			},
			{
				Path:   "/v1/places/{id}",
				Method: http.MethodGet,
				Skip:   true,
			},
		},
	}

	t.Run("exact path and method match", func(t *testing.T) {
		perm := data.FindPermissions("/v1/places", http.MethodPost)

		assert.Equal(t, "/v1/places", perm.Path)
		assert.Contains(t, perm.Roles, "editor")
	})

	t.Run("method mismatch returns empty permission", func(t *testing.T) {
		perm := data.FindPermissions("/v1/places", http.MethodDelete)

		assert.Empty(t, perm.Path)
		assert.Empty(t, perm.Roles)
	})

	t.Run("skip flag carried through", func(t *testing.T) {
		perm := data.FindPermissions("/v1/places/{id}", http.MethodGet)

		assert.True(t, perm.Skip)
	})
}
