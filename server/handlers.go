package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"ytcatalog/config"
	itransport "ytcatalog/internal/transport"
	"ytcatalog/podcast"
	"ytcatalog/youtube"
)

func transportConfig(st *config.Settings) *itransport.Config {
	cfg := itransport.DefaultConfig()
	cfg.RequestsPerSecond = st.ProviderRPS
	return cfg
}

// resolvedIDs pulls the three playlist-selection values through the resolver.
func (s *Server) resolvedIDs(ctx context.Context) youtube.ResolvedIDs {
	return youtube.ResolvedIDs{
		ChannelID:   s.resolver.Resolve(ctx, config.KeyChannelID, nil),
		TutorialsID: s.resolver.Resolve(ctx, config.KeyTutorialsPlaylistID, nil),
		PodcastID:   s.resolver.Resolve(ctx, config.KeyPodcastPlaylistID, nil),
	}
}

func (s *Server) handleTutorialPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apiKey := s.resolver.Resolve(ctx, config.KeyAPIKey, nil)
	if apiKey == "" {
		// Documented "not configured yet" state, not an error.
		respondJSON(w, http.StatusOK, map[string]any{"playlists": []youtube.Playlist{}})
		return
	}

	provider, err := s.providers(ctx, apiKey)
	if err != nil {
		s.respondFailure(ctx, w, "playlists", err)
		return
	}

	playlists, err := provider.ResolvePlaylists(ctx, s.resolvedIDs(ctx))
	if err != nil {
		s.respondFailure(ctx, w, "playlists", err)
		return
	}

	s.emit(ctx, "tutorial_playlists_viewed", map[string]string{"count": strconv.Itoa(len(playlists))})
	respondJSON(w, http.StatusOK, map[string]any{"playlists": playlists})
}

func (s *Server) handleTutorialVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlistID := strings.TrimSpace(r.URL.Query().Get("playlistId"))
	if playlistID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]any{
			"tutorials": []youtube.Video{},
			"error":     "playlistId requerido",
		})
		return
	}

	apiKey := s.resolver.Resolve(ctx, config.KeyAPIKey, nil)
	if apiKey == "" {
		respondJSON(w, http.StatusOK, map[string]any{"tutorials": []youtube.Video{}})
		return
	}

	provider, err := s.providers(ctx, apiKey)
	if err != nil {
		s.respondFailure(ctx, w, "tutorials", err)
		return
	}

	videos, err := provider.ListPlaylistVideos(ctx, playlistID)
	if err != nil {
		s.respondFailure(ctx, w, "tutorials", err)
		return
	}

	s.emit(ctx, "tutorial_videos_viewed", map[string]string{"playlist_id": playlistID})
	respondJSON(w, http.StatusOK, map[string]any{"tutorials": videos})
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	apiKey := s.resolver.Resolve(ctx, config.KeyAPIKey, nil)
	playlistID := s.resolver.Resolve(ctx, config.KeyPodcastPlaylistID, nil)
	if apiKey == "" || playlistID == "" {
		respondJSON(w, http.StatusOK, map[string]any{"episodes": []podcast.Episode{}})
		return
	}

	provider, err := s.providers(ctx, apiKey)
	if err != nil {
		s.respondFailure(ctx, w, "episodes", err)
		return
	}

	videos, err := provider.ListPlaylistVideos(ctx, playlistID)
	if err != nil {
		s.respondFailure(ctx, w, "episodes", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"episodes": podcast.FromVideos(videos)})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusServiceUnavailable, "almacén de contenido no configurado")
		return
	}
	events, err := s.store.ActiveEvents(r.Context())
	if err != nil {
		s.respondFailure(r.Context(), w, "events", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		respondError(w, http.StatusServiceUnavailable, "almacén de contenido no configurado")
		return
	}
	courses, err := s.store.PublishedCourses(r.Context())
	if err != nil {
		s.respondFailure(r.Context(), w, "courses", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"courses": courses})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if s.contact == nil {
		respondError(w, http.StatusServiceUnavailable, "formulario no configurado")
		return
	}

	var msg ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondError(w, http.StatusBadRequest, "cuerpo inválido")
		return
	}
	if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
		respondError(w, http.StatusBadRequest, "nombre, email y mensaje son obligatorios")
		return
	}

	if err := s.contact.Submit(r.Context(), msg); err != nil {
		s.respondFailure(r.Context(), w, "contact", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"success": true})
}

// respondFailure maps an upstream failure to the outward contract: provider
// errors and timeouts become gateway-style statuses with an error body. The
// failure is scoped to this request; nothing here is fatal to the process.
func (s *Server) respondFailure(ctx context.Context, w http.ResponseWriter, op string, err error) {
	zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("request failed")

	status := http.StatusBadGateway
	if errors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	respondError(w, status, err.Error())
}

func (s *Server) emit(ctx context.Context, name string, params map[string]string) {
	if s.analytics == nil {
		return
	}
	// Parameters are truncated; analytics payloads carry no free-form text.
	for k, v := range params {
		if len(v) > 100 {
			params[k] = v[:100]
		}
	}
	s.analytics.Emit(ctx, name, params)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are gone; nothing useful left to do.
		return
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
