package permissions_test

import (
	"net/http"
	"testing"

	"stayhub/permissions"
	"stayhub/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name    string
		method  string
		path    string
		role    string
		allowed bool
		public  bool
	}{
		{name: "owner bulk availability", method: http.MethodPost, path: "/v1/rooms/{id}/availability", role: constant.RoleOwner, allowed: true},
		{name: "admin peak price update", method: http.MethodPatch, path: "/v1/rooms/{id}/peak-price/{date}", role: constant.RoleAdmin, allowed: true},
		{name: "guest cannot create property", method: http.MethodPost, path: "/v1/properties/", role: constant.RoleGuest, allowed: false},
		{name: "public calendar", method: http.MethodGet, path: "/v1/public/properties/{id}/calendar-pricing", role: constant.RoleGuest, allowed: true, public: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.Find(tt.method, tt.path)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.public, permission.Public)
			assert.Equal(t, tt.allowed, permission.Allows(tt.role))
		})
	}
}

func TestFindUnknownRoute(t *testing.T) {
	data, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/v1/rooms/","method":"GET","roles":["owner"]}]}`))
	require.NoError(t, err)

	assert.Equal(t, permissions.Permission{}, data.Find(http.MethodDelete, "/v1/rooms/"))
	assert.True(t, data.Find(http.MethodGet, "/v1/rooms/").Allows(constant.RoleOwner))
}

func TestFindWithoutIndex(t *testing.T) {
	data := &permissions.PermissionData{
		Endpoints: []permissions.Permission{{Path: "/v1/rooms/{id}", Method: http.MethodGet}},
	}

	permission := data.Find(http.MethodGet, "/v1/rooms/{id}")

	assert.Equal(t, "/v1/rooms/{id}", permission.Path)
	assert.True(t, permission.Allows(constant.RoleGuest))
}

func TestParseMalformed(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":`))

	assert.Error(t, err)
}
