package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponent_RoutesAndHandler(t *testing.T) {
	c := New(WithConfigPath(fixturePath(t)), WithAssetsPath("static"))

	opts := c.Options()
	assert.Equal(t, "static", opts.AssetsPath)
	assert.NotNil(t, opts.Orchestrator)
	assert.NotNil(t, opts.Logger)

	mux := http.NewServeMux()
	routes, err := c.RegisterRoutes(mux, "")
	require.NoError(t, err)
	assert.Equal(t, "/static/", routes.Assets)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
