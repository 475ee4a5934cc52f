package permissions_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasknest/permissions"
)

func TestGet_PublicRoutes(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	assert.True(t, perms.IsPublic("/signup", http.MethodPost))
	assert.True(t, perms.IsPublic("/login", http.MethodPost))
	assert.True(t, perms.IsPublic("/health", http.MethodGet))
	assert.True(t, perms.IsPublic("/swagger/*", http.MethodGet))

	assert.False(t, perms.IsPublic("/signup", http.MethodGet))
	assert.False(t, perms.IsPublic("/project/getprojects", http.MethodGet))
	assert.False(t, perms.IsPublic("", http.MethodGet))
}

func TestParse(t *testing.T) {
	perms, err := permissions.Parse([]byte(`{"endpoints":[{"path":"/x","method":"get","public":true},{"path":"/y","method":"GET"}]}`))
	require.NoError(t, err)

	assert.True(t, perms.IsPublic("/x", http.MethodGet))
	assert.False(t, perms.IsPublic("/y", http.MethodGet))

	_, err = permissions.Parse([]byte(`{`))
	assert.Error(t, err)
}
