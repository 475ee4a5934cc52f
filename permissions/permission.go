// Package permissions lists the routes that are served without a bearer token.
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Endpoint struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Public bool   `json:"public"`
}

type PermissionData struct {
	Endpoints []Endpoint `json:"endpoints"`
}

// IsPublic reports whether the route pattern path accepts method without authentication.
func (r *PermissionData) IsPublic(path, method string) bool {
	idx := slices.IndexFunc(r.Endpoints, func(e Endpoint) bool {
		return e.Path == path && strings.EqualFold(e.Method, method)
	})

	return idx != -1 && r.Endpoints[idx].Public
}

func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}

// Get decodes the embedded permissions. A broken file yields an empty set, so every
// route requires a token.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return &PermissionData{}
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}
