// Package proxy implements the credential-attaching HTTP endpoints: the
// YouTube action envelope at /api/youtube-proxy and the conversational
// backend at /api/ai. Upstream keys live only here; clients never hold them.
package proxy

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/playlist-chat/pkg/ai"
	"github.com/sells-group/playlist-chat/pkg/youtube"
)

// Handler serves the proxy endpoints.
type Handler struct {
	ytKey     string
	ytBaseURL string
	backend   ai.Client
	http      *http.Client
}

// NewHandler creates a Handler. backend may be nil when no AI provider is
// configured; /api/ai then reports the missing configuration.
func NewHandler(ytKey, ytBaseURL string, backend ai.Client) *Handler {
	return &Handler{
		ytKey:     ytKey,
		ytBaseURL: strings.TrimRight(ytBaseURL, "/"),
		backend:   backend,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewRouter builds the chi router with CORS enabled for browser callers.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	h.RegisterHTTP(r)
	return r
}

// RegisterHTTP mounts the proxy routes on r.
func (h *Handler) RegisterHTTP(r chi.Router) {
	r.Get("/health", h.handleHealth)
	r.Post("/api/youtube-proxy", h.handleYouTube)
	r.Post("/api/ai", h.handleAI)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleYouTube(w http.ResponseWriter, r *http.Request) {
	var req youtube.ProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Action == youtube.ActionPing {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}

	if h.ytKey == "" {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "server missing youtube.key"})
		return
	}

	upstreamURL, ok := h.upstreamURL(req)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown action"})
		return
	}

	h.forward(w, r, upstreamURL)
}

// upstreamURL maps an action envelope to the googleapis request it stands for.
func (h *Handler) upstreamURL(req youtube.ProxyRequest) (string, bool) {
	params := url.Values{}
	params.Set("key", h.ytKey)

	switch req.Action {
	case youtube.ActionGetPlaylistInfo:
		params.Set("part", "snippet")
		params.Set("id", req.PlaylistID)
		return h.ytBaseURL + "/playlists?" + params.Encode(), true
	case youtube.ActionGetPlaylistItems:
		params.Set("part", "snippet")
		params.Set("maxResults", "50")
		params.Set("playlistId", req.PlaylistID)
		if req.PageToken != "" {
			params.Set("pageToken", req.PageToken)
		}
		return h.ytBaseURL + "/playlistItems?" + params.Encode(), true
	case youtube.ActionGetVideos:
		params.Set("part", "statistics,contentDetails")
		params.Set("id", req.IDs)
		return h.ytBaseURL + "/videos?" + params.Encode(), true
	default:
		return "", false
	}
}

func (h *Handler) forward(w http.ResponseWriter, r *http.Request, upstreamURL string) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, upstreamURL, nil)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.http.Do(req)
	if err != nil {
		zap.L().Error("youtube upstream request failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream request failed"})
		return
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "upstream read failed"})
		return
	}

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("youtube upstream error",
			zap.Int("status", resp.StatusCode),
		)
		details := json.RawMessage(body)
		if !json.Valid(body) {
			details, _ = json.Marshal(string(body))
		}
		writeJSON(w, resp.StatusCode, map[string]any{
			"error":   "upstream error",
			"details": details,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck
}

func (h *Handler) handleAI(w http.ResponseWriter, r *http.Request) {
	var req ai.ProxyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ai.ProxyResponse{Error: "invalid request body"})
		return
	}

	if req.SystemPrompt == "" && req.UserMessage == "" {
		writeJSON(w, http.StatusBadRequest, ai.ProxyResponse{Error: "missing prompt"})
		return
	}

	if h.backend == nil {
		writeJSON(w, http.StatusInternalServerError, ai.ProxyResponse{Error: "server has no AI provider configured"})
		return
	}

	text, err := h.backend.Generate(r.Context(), req.SystemPrompt, req.UserMessage)
	if err != nil {
		zap.L().Error("ai backend call failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, ai.ProxyResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, ai.ProxyResponse{Text: text})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
