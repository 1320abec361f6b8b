package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mchmarny/flopctl/pkg/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	makeRouter(texture.DefaultWeights).ServeHTTP(rec, req)
	return rec
}

func TestHealthAPI(t *testing.T) {
	rec := serve(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestRequestID_Propagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	makeRouter(texture.DefaultWeights).ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestTextureAPI(t *testing.T) {
	rec := serve(t, http.MethodGet, "/v1/texture?board=AsTsTd", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var r texture.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, texture.TwoTone, r.Suits)
	assert.Equal(t, texture.Paired, r.Pairing)
	assert.InDelta(t, 2.5, r.Dynamic, 1e-9)
}

func TestTextureAPI_BadRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		msg    string
	}{
		{"missing", "/v1/texture", "board query parameter required"},
		{"bad rank", "/v1/texture?board=Xc2d3h", "invalid rank"},
		{"bad suit", "/v1/texture?board=Ac2z3h", "invalid suit"},
		{"short", "/v1/texture?board=Ac2d", "exactly 3 cards"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.msg)
		})
	}
}

func TestTextureBatchAPI(t *testing.T) {
	rec := serve(t, http.MethodPost, "/v1/texture", `{"boards":["2c3d4h","Ac 2d Ks","7c,7d,7h"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Reports, 3)
	assert.InDelta(t, 3.75, res.Reports[0].Dynamic, 1e-9)
	assert.InDelta(t, 3.0, res.Reports[1].Dynamic, 1e-9)
	assert.InDelta(t, 2.75, res.Reports[2].Dynamic, 1e-9)
}

func TestTextureBatchAPI_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
		msg  string
	}{
		{"not json", `boards`, "invalid request body"},
		{"empty", `{"boards":[]}`, "boards required"},
		{"bad board", `{"boards":["2c3d4h","Xc2d3h"]}`, "boards[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, http.MethodPost, "/v1/texture", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.msg)
		})
	}
}

func TestTextureBatchAPI_TooMany(t *testing.T) {
	boards := make([]string, batchLimit+1)
	for i := range boards {
		boards[i] = "2c3d4h"
	}
	b, err := json.Marshal(batchRequest{Boards: boards})
	require.NoError(t, err)

	rec := serve(t, http.MethodPost, "/v1/texture", string(b))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too many boards")
}

func TestRandomAPI(t *testing.T) {
	rec := serve(t, http.MethodGet, "/v1/random?count=4&seed=9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var a batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &a))
	assert.Len(t, a.Reports, 4)

	rec = serve(t, http.MethodGet, "/v1/random?count=4&seed=9", "")
	var b batchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &b))
	assert.Equal(t, a, b)
}

func TestRandomAPI_BadRequest(t *testing.T) {
	for _, target := range []string{"/v1/random?count=0", "/v1/random?count=abc", "/v1/random?seed=x"} {
		rec := serve(t, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	rec := serve(t, http.MethodDelete, "/v1/texture", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
