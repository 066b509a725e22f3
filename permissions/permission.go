package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"

	"stayhub/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleSuperAdmin, constant.RoleAdmin, constant.RoleOwner, constant.RoleGuest}

// Permission lists the roles allowed on one route pattern. Public routes skip authentication.
type Permission struct {
	Roles  []string `json:"roles"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Public bool     `json:"public"`
}

// Allows reports whether role may call the route. A route without roles accepts any
// authenticated caller.
func (p Permission) Allows(role string) bool {
	return len(p.Roles) == 0 || slices.Contains(p.Roles, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Disabled  bool         `json:"disabled"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Find returns the permission registered for the chi route pattern, or a zero Permission.
func (d *PermissionData) Find(method, path string) Permission {
	if d.index != nil {
		return d.index[routeKey(method, path)]
	}

	idx := slices.IndexFunc(d.Endpoints, func(p Permission) bool {
		return p.Method == method && p.Path == path
	})
	if idx == -1 {
		return Permission{}
	}

	return d.Endpoints[idx]
}

func (d *PermissionData) buildIndex() {
	d.index = make(map[string]Permission, len(d.Endpoints))

	for _, endpoint := range d.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := d.index[key]; dup {
			log.Warn().Str("route", key).Msg("Duplicate permission entry, keeping the first")

			continue
		}

		for _, role := range endpoint.Roles {
			if !slices.Contains(knownRoles, role) {
				log.Warn().Str("route", key).Str("role", role).Msg("Permission references an unknown role")
			}
		}

		d.index[key] = endpoint
	}
}

// Parse decodes a permissions document.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	permissions.buildIndex()

	return &permissions, nil
}

// Get loads the embedded permissions.json. It returns nil when the document is malformed,
// which makes RBAC deny every protected route.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded route permissions")

	return permissions
}
