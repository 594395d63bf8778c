package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mokutan/stagepass/internal/models"
	"github.com/mokutan/stagepass/internal/services/selection"
)

type submitSongRequest struct {
	SongName   string `json:"song_name"`
	Difficulty int    `json:"difficulty"`
}

// SubmitSong records a player's pick for their active match
func (h *Handler) SubmitSong(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var req submitSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.SongName == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.selection.SubmitSong(r.Context(), &selection.SubmitSongInput{
		PlayerID:   playerID,
		SongName:   req.SongName,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// BanOpponentSong spends the player's ban on the opponent's live pick
func (h *Handler) BanOpponentSong(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.selection.BanOpponentSong(r.Context(), &selection.BanOpponentSongInput{PlayerID: playerID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// GetActiveMatch returns the player's match view with the reveal gate applied
func (h *Handler) GetActiveMatch(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.selection.GetActiveMatch(r.Context(), &selection.GetActiveMatchInput{PlayerID: playerID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// MatchesOverview returns the admin view of a cohort's picks
func (h *Handler) MatchesOverview(w http.ResponseWriter, r *http.Request) {
	phase := r.URL.Query().Get("phase")
	group := r.URL.Query().Get("group")
	if phase == "" || group == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.selection.MatchesOverview(r.Context(), &selection.MatchesOverviewInput{
		Phase: models.Phase(phase),
		Group: models.Group(group),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}
