package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/mchmarny/flopctl/pkg/board"
	"github.com/mchmarny/flopctl/pkg/deck"
	"github.com/mchmarny/flopctl/pkg/texture"
)

const (
	requestIDHeader  = "X-Request-ID"
	batchLimit       = 1000
	maxBodyBytes     = 1 << 20
	randomCountParam = "count"
	randomSeedParam  = "seed"
	boardParam       = "board"
)

type batchRequest struct {
	Boards []string `json:"boards"`
}

type batchResponse struct {
	Reports []*texture.Report `json:"reports"`
}

func makeRouter(w texture.Weights) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get("/health", healthHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/texture", textureAPIHandler(w))
		r.Post("/texture", textureBatchAPIHandler(w))
		r.Get("/random", randomAPIHandler(w))
	})

	return r
}

// requestLogger tags every response with a request id and logs it at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		slog.Debug("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":      true,
		"version": version,
	})
}

func textureAPIHandler(wt texture.Weights) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get(boardParam)
		if q == "" {
			writeError(w, http.StatusBadRequest, "board query parameter required")
			return
		}

		b, err := board.ParseString(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, texture.AnalyzeWith(b, wt))
	}
}

func textureBatchAPIHandler(wt texture.Weights) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Boards) == 0 {
			writeError(w, http.StatusBadRequest, "boards required")
			return
		}
		if len(req.Boards) > batchLimit {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("too many boards: %d (max %d)", len(req.Boards), batchLimit))
			return
		}

		res := batchResponse{Reports: make([]*texture.Report, 0, len(req.Boards))}
		for i, s := range req.Boards {
			b, err := board.ParseString(s)
			if err != nil {
				writeError(w, http.StatusBadRequest, fmt.Sprintf("boards[%d]: %v", i, err))
				return
			}
			res.Reports = append(res.Reports, texture.AnalyzeWith(b, wt))
		}

		writeJSON(w, http.StatusOK, res)
	}
}

func randomAPIHandler(wt texture.Weights) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := queryParamInt(r, randomCountParam, randomCountDefault)
		if err != nil || n < 1 || n > randomCountMax {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("count must be 1-%d", randomCountMax))
			return
		}
		seed, err := queryParamInt64(r, randomSeedParam, 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid seed")
			return
		}

		d := deck.NewDealer(seed)
		res := batchResponse{Reports: make([]*texture.Report, 0, n)}
		for _, b := range d.Flops(n) {
			res.Reports = append(res.Reports, texture.AnalyzeWith(b, wt))
		}
		writeJSON(w, http.StatusOK, res)
	}
}

var errInvalidParam = errors.New("invalid parameter")

func queryParamInt(r *http.Request, key string, def int) (int, error) {
	v, err := queryParamInt64(r, key, int64(def))
	return int(v), err
}

func queryParamInt64(r *http.Request, key string, def int64) (int64, error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def, fmt.Errorf("%w: %s", errInvalidParam, key)
	}
	return v, nil
}
