package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mokutan/stagepass/internal/models"
	"github.com/mokutan/stagepass/internal/services/tournament"
)

// CheckIn marks a player arrived
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.CheckIn(r.Context(), &tournament.CheckInInput{PlayerID: playerID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// ToggleOnMachine claims or releases the group's cabinet
func (h *Handler) ToggleOnMachine(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.ToggleOnMachine(r.Context(), &tournament.ToggleOnMachineInput{PlayerID: playerID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

type submitScoreRequest struct {
	Score float64 `json:"score"`
}

// SubmitScore records a score into the player's open round
func (h *Handler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.SubmitScore(r.Context(), &tournament.SubmitScoreInput{
		PlayerID: playerID,
		Score:    req.Score,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// ListPlayers returns the roster, optionally one group
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.ListPlayers(r.Context(), &tournament.ListPlayersInput{
		Group: models.Group(r.URL.Query().Get("group")),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// GetSystemState returns the global flags and countdown remainder
func (h *Handler) GetSystemState(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.GetSystemState(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// Rankings returns a group ordered by placement
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	group := chi.URLParam(r, "group")
	if group == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.Rankings(r.Context(), &tournament.RankingsInput{
		Group: models.Group(group),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// Dashboard returns the admin overview of every group
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.Dashboard(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// StartMatch starts the tournament and the check-in countdown
func (h *Handler) StartMatch(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.StartMatch(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// EnableCheckIn opens check-in
func (h *Handler) EnableCheckIn(w http.ResponseWriter, r *http.Request) {
	if err := h.tournament.EnableCheckIn(r.Context()); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "enabled"})
}

// RunCheckInTimeoutSweep eliminates everyone still unchecked
func (h *Handler) RunCheckInTimeoutSweep(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.RunCheckInTimeoutSweep(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// RandomizeNumbers shuffles and locks the sequence numbers
func (h *Handler) RandomizeNumbers(w http.ResponseWriter, r *http.Request) {
	out, err := h.tournament.RandomizeNumbers(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// UnlockNumbers releases the sequence-number lock
func (h *Handler) UnlockNumbers(w http.ResponseWriter, r *http.Request) {
	if err := h.tournament.UnlockNumbers(r.Context()); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "unlocked"})
}

type runPromotionRequest struct {
	Group string `json:"group"`
	Round string `json:"round"`
}

// RunPromotion applies a group's qualifier cutoff or revival promotion
func (h *Handler) RunPromotion(w http.ResponseWriter, r *http.Request) {
	var req runPromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.RunPromotion(r.Context(), &tournament.RunPromotionInput{
		Group: models.Group(req.Group),
		Round: tournament.ScoreRound(req.Round),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

type generatePairingsRequest struct {
	Phase string `json:"phase"`
	Group string `json:"group"`
}

// GeneratePairings builds a phase's bracket pairings
func (h *Handler) GeneratePairings(w http.ResponseWriter, r *http.Request) {
	var req generatePairingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.GeneratePairings(r.Context(), &tournament.GeneratePairingsInput{
		Phase: models.Phase(req.Phase),
		Group: models.Group(req.Group),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// Forfeit withdraws a player
func (h *Handler) Forfeit(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.tournament.Forfeit(r.Context(), &tournament.ForfeitInput{PlayerID: playerID})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

type importPlayerEntry struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Group  string `json:"group"`
}

type importPlayersRequest struct {
	Players []importPlayerEntry `json:"players"`
}

// ImportPlayers registers a batch of players
func (h *Handler) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	var req importPlayersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if len(req.Players) == 0 {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	entries := make([]tournament.ImportPlayerEntry, 0, len(req.Players))
	for _, p := range req.Players {
		entries = append(entries, tournament.ImportPlayerEntry{
			Name:   p.Name,
			Rating: p.Rating,
			Group:  models.Group(p.Group),
		})
	}

	out, err := h.tournament.ImportPlayers(r.Context(), &tournament.ImportPlayersInput{Entries: entries})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

type updatePlayerRequest struct {
	Name            *string  `json:"name"`
	Group           *string  `json:"group"`
	Rating          *int     `json:"rating"`
	PromotionStatus *string  `json:"promotion_status"`
	QualifierScore  *float64 `json:"qualifier_score"`
	RevivalScore    *float64 `json:"revival_score"`
	CheckedIn       *bool    `json:"checked_in"`
	MatchNumber     *int     `json:"match_number"`
}

// UpdatePlayer applies an admin patch to a player
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var req updatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	patch := &tournament.PlayerPatch{
		Name:           req.Name,
		Rating:         req.Rating,
		QualifierScore: req.QualifierScore,
		RevivalScore:   req.RevivalScore,
		CheckedIn:      req.CheckedIn,
		MatchNumber:    req.MatchNumber,
	}
	if req.Group != nil {
		group := models.Group(*req.Group)
		patch.Group = &group
	}
	if req.PromotionStatus != nil {
		status := models.PromotionStatus(*req.PromotionStatus)
		patch.PromotionStatus = &status
	}

	out, err := h.tournament.UpdatePlayer(r.Context(), &tournament.UpdatePlayerInput{
		PlayerID: playerID,
		Patch:    patch,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// DeletePlayer removes a player from the roster
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := h.tournament.DeletePlayer(r.Context(), &tournament.DeletePlayerInput{PlayerID: playerID}); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}
