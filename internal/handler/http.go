package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mokutan/stagepass/internal/services/catalog"
	"github.com/mokutan/stagepass/internal/services/draw"
	"github.com/mokutan/stagepass/internal/services/selection"
	"github.com/mokutan/stagepass/internal/services/tournament"
	"github.com/mokutan/stagepass/internal/websocket"
)

// ErrInvalidRequest is returned for malformed request bodies and parameters
var ErrInvalidRequest = errors.New("invalid request")

// ErrInternalError hides internal failure detail from API clients
var ErrInternalError = errors.New("internal error")

// ErrUnauthorized is returned for admin calls without a valid token
var ErrUnauthorized = errors.New("unauthorized")

// Config holds HTTP handler configuration
type Config struct {
	// AdminToken guards the /api/v1/admin routes; empty leaves them open,
	// which is only sane on an isolated venue LAN
	AdminToken string
}

// Handler provides HTTP handlers for the tournament API
type Handler struct {
	tournament tournament.Service
	selection  selection.Service
	draw       draw.Service
	catalog    catalog.Service
	hub        *websocket.Hub
	logger     *slog.Logger
	adminToken string
}

// NewHandler creates a new HTTP handler
func NewHandler(
	cfg *Config,
	tournamentSvc tournament.Service,
	selectionSvc selection.Service,
	drawSvc draw.Service,
	catalogSvc catalog.Service,
	hub *websocket.Hub,
	logger *slog.Logger,
) *Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Handler{
		tournament: tournamentSvc,
		selection:  selectionSvc,
		draw:       drawSvc,
		catalog:    catalogSvc,
		hub:        hub,
		logger:     logger,
		adminToken: cfg.AdminToken,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	// Health check
	r.Get("/health", h.HealthCheck)
	r.Get("/ready", h.ReadyCheck)

	// WebSocket endpoint for the stage display and player devices
	r.Get("/ws", h.HandleWebSocket)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Player-facing operations
		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.ListPlayers)

			r.Route("/{playerID}", func(r chi.Router) {
				r.Post("/checkin", h.CheckIn)
				r.Post("/machine", h.ToggleOnMachine)
				r.Post("/score", h.SubmitScore)
				r.Get("/match", h.GetActiveMatch)
				r.Post("/song", h.SubmitSong)
				r.Post("/ban", h.BanOpponentSong)
			})
		})

		r.Get("/state", h.GetSystemState)
		r.Get("/rankings/{group}", h.Rankings)
		r.Get("/draw", h.GetDrawState)

		// Admin operations
		r.Route("/admin", func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/dashboard", h.Dashboard)
			r.Get("/matches", h.MatchesOverview)

			r.Post("/start", h.StartMatch)
			r.Post("/checkin/enable", h.EnableCheckIn)
			r.Post("/checkin/sweep", h.RunCheckInTimeoutSweep)
			r.Post("/numbers/randomize", h.RandomizeNumbers)
			r.Post("/numbers/unlock", h.UnlockNumbers)
			r.Post("/promotion", h.RunPromotion)
			r.Post("/pairings", h.GeneratePairings)

			r.Route("/players", func(r chi.Router) {
				r.Post("/import", h.ImportPlayers)

				r.Route("/{playerID}", func(r chi.Router) {
					r.Patch("/", h.UpdatePlayer)
					r.Delete("/", h.DeletePlayer)
					r.Post("/forfeit", h.Forfeit)
				})
			})

			r.Route("/songs", func(r chi.Router) {
				r.Post("/", h.AddSong)
				r.Get("/", h.ListSongs)

				r.Route("/{songID}", func(r chi.Router) {
					r.Patch("/", h.SetSongActive)
					r.Delete("/", h.DeleteSong)
				})
			})

			r.Route("/draw", func(r chi.Router) {
				r.Post("/start", h.StartDraw)
				r.Post("/stop", h.StopDraw)
				r.Post("/reset", h.ResetDraw)
			})
		})
	})

	return r
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Admin-Token, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// adminOnly rejects requests without the configured admin token
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.adminToken != "" {
			token := r.Header.Get("X-Admin-Token")
			if subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
				h.writeError(w, http.StatusUnauthorized, ErrUnauthorized)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a successful JSON response
func (h *Handler) writeSuccess(w http.ResponseWriter, data interface{}) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeError writes an error JSON response
func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// writeServiceError maps typed service errors onto HTTP status codes
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	if status, ok := statusForError(err); ok {
		h.writeError(w, status, err)
		return
	}

	h.logger.Error("internal error", "error", err)
	h.writeError(w, http.StatusInternalServerError, ErrInternalError)
}

// statusForError returns the HTTP status for a known service error
func statusForError(err error) (int, bool) {
	switch err {
	case tournament.ErrPlayerNotFound,
		selection.ErrPlayerNotFound,
		selection.ErrNoActiveMatch,
		catalog.ErrSongNotFound:
		return http.StatusNotFound, true

	case tournament.ErrUnknownGroup,
		tournament.ErrUnknownStatus,
		tournament.ErrUnknownPhase,
		tournament.ErrUnknownRound,
		tournament.ErrInsufficientPlayers,
		catalog.ErrEmptyName:
		return http.StatusBadRequest, true

	case tournament.ErrCheckInClosed,
		tournament.ErrNotCheckedIn,
		tournament.ErrEliminated,
		tournament.ErrNumbersLocked,
		tournament.ErrTimeoutEliminated,
		tournament.ErrMachineOccupied,
		tournament.ErrNoRoundApplicable,
		tournament.ErrAlreadyForfeited,
		tournament.ErrInvalidTransition,
		tournament.ErrMatchNotStarted,
		tournament.ErrTimeoutAlreadyProcessed,
		tournament.ErrCountdownNotElapsed,
		tournament.ErrDuplicateName,
		selection.ErrNotSelectionPhase,
		selection.ErrAlreadySubmitted,
		selection.ErrBanAlreadyUsed,
		selection.ErrNoTargetSelection,
		draw.ErrNoSongsConfigured,
		draw.ErrDrawNotRolling:
		return http.StatusConflict, true
	}

	return 0, false
}

// HandleWebSocket handles WebSocket upgrade requests
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, h.logger, w, r)
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "healthy"})
}

// ReadyCheck returns service readiness status
func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]interface{}{
		"status":            "ready",
		"total_connections": h.hub.GetTotalConnections(),
	})
}
