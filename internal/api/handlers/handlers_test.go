package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_HHMM(t *testing.T) {
	type block struct {
		Start string `validate:"hhmm"`
	}

	for _, ok := range []string{"09:00", "23:59", "24:00", "08:00:00"} {
		assert.NoError(t, Validate(&block{Start: ok}), ok)
	}
	for _, bad := range []string{"", "9:00", "25:00", "12:60", "noon"} {
		assert.Error(t, Validate(&block{Start: bad}), bad)
	}
}

func TestParseTime(t *testing.T) {
	loc := time.FixedZone("ART", -3*60*60)

	start, err := ParseTime("2030-01-07", loc, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 7, 0, 0, 0, 0, loc), *start)

	end, err := ParseTime("2030-01-07", loc, true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 8, 0, 0, 0, 0, loc).Add(-time.Nanosecond), *end)

	exact, err := ParseTime("2030-01-07T10:30:00Z", loc, true)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 1, 7, 10, 30, 0, 0, time.UTC), exact.UTC())

	_, err = ParseTime("07/01/2030", loc, false)
	assert.Error(t, err)
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "15"})
	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(15), id)

	req = mux.SetURLVars(req, map[string]string{"id": "-1"})
	_, err = PathInt64(req, "id")
	assert.Error(t, err)
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondConflict(rec, "ocupado")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"ocupado"}`, rec.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
}
