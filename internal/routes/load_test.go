package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fsys := routeFS(
		"README.md",
		"helper.js",
		"~users~:id~GET.js",
		"~users~me~GET.js",
		"~users~POST.js",
	)

	descs, err := Load(fsys, "api", ".js")
	require.NoError(t, err)

	assert.Equal(t, []plannedRoute{
		{method: "GET", path: "/users/me"},
		{method: "HEAD", path: "/users/me", synthetic: true},
		{method: "OPTIONS", path: "/users/me", synthetic: true, allowed: []string{"GET", "HEAD"}},
		{method: "GET", path: "/users/:id"},
		{method: "HEAD", path: "/users/:id", synthetic: true},
		{method: "OPTIONS", path: "/users/:id", synthetic: true, allowed: []string{"GET", "HEAD"}},
		{method: "POST", path: "/users"},
		{method: "OPTIONS", path: "/users", synthetic: true, allowed: []string{"POST"}},
	}, plan(descs))
}

func TestLoad_ReportsEveryBadName(t *testing.T) {
	_, err := Load(routeFS("~a~get.js", "~b~~GET.js", "~c~GET.js"), "api", ".js")
	require.ErrorIs(t, err, ErrInvalidRouteName)
	assert.Contains(t, err.Error(), "~a~get.js")
	assert.Contains(t, err.Error(), "~b~~GET.js")
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(routeFS("~a~GET.js"), "missing", ".js")
	assert.ErrorIs(t, err, ErrDirectoryRead)

	_, err = Load(routeFS("~a~:x~GET.js", "~a~:y~GET.js"), "api", ".js")
	assert.ErrorIs(t, err, ErrRouteCollision)
}
