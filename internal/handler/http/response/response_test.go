package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "cycle-1"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "Payroll cycle overlaps an existing cycle")

	assert.Equal(t, 409, rec.Code)

	body := decodeBody(t, rec)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "CONFLICT", body.Error.Code)
	assert.Equal(t, "Payroll cycle overlaps an existing cycle", body.Error.Message)
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"start_date": "is required"})

	assert.Equal(t, 422, rec.Code)

	body := decodeBody(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "is required", body.Error.Details["start_date"])
}

func TestPageMeta(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"exact fit", 1, 20, 40, 2},
		{"partial last page", 1, 20, 41, 3},
		{"empty result", 1, 20, 0, 0},
		{"zero limit yields no pages", 1, 0, 10, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			meta := PageMeta(c.page, c.limit, c.total)
			assert.Equal(t, c.page, meta.Page)
			assert.Equal(t, c.limit, meta.Limit)
			assert.Equal(t, c.total, meta.TotalItems)
			assert.Equal(t, c.wantPages, meta.TotalPages)
		})
	}
}
