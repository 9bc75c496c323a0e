package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpportunitiesListIsStatic(t *testing.T) {
	app := newTestApp(&fakeSQL{})

	rr := httptest.NewRecorder()
	app.OpportunitiesList(rr, httptest.NewRequest("GET", "/api/opportunities", nil))

	require.Equal(t, 200, rr.Code)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&items))
	require.NotEmpty(t, items)
	assert.Equal(t, "Community Outreach", items[0]["category"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(&fakeSQL{})

	rr := httptest.NewRecorder()
	app.Health(rr, httptest.NewRequest("GET", "/api/health", nil))

	assert.Equal(t, 200, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
}
