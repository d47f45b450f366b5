package cmd_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deliverychecker/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_WithoutHistory(t *testing.T) {
	config, err := cmd.LoadConfig(envOf(nil))
	require.NoError(t, err)

	app := cmd.NewCompositionRoot(config, nil, discardLogger())

	assert.False(t, app.HistoryEnabled())
	assert.Zero(t, app.CreateJobManager().Len())
	assert.False(t, app.CreateServer().HistoryEnabled())

	e, err := app.CreateEcho(t.Context())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checks",
		strings.NewReader(`{"deliveries":[[1,2]],"path":[1,2]}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}
