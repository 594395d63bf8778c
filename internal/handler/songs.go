package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mokutan/stagepass/internal/models"
	"github.com/mokutan/stagepass/internal/services/catalog"
	"github.com/mokutan/stagepass/internal/services/draw"
)

type addSongRequest struct {
	Name  string `json:"name"`
	Phase string `json:"phase"`
	Group string `json:"group"`
}

// AddSong registers a song into a phase/group's draw pool
func (h *Handler) AddSong(w http.ResponseWriter, r *http.Request) {
	var req addSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.catalog.AddSong(r.Context(), &catalog.AddSongInput{
		Name:  req.Name,
		Phase: models.Phase(req.Phase),
		Group: models.Group(req.Group),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    out,
	})
}

// ListSongs returns the catalog, optionally filtered
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	out, err := h.catalog.ListSongs(r.Context(), &catalog.ListSongsInput{
		Phase:      models.Phase(query.Get("phase")),
		Group:      models.Group(query.Get("group")),
		ActiveOnly: query.Get("active") == "true",
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

type setSongActiveRequest struct {
	Active bool `json:"active"`
}

// SetSongActive pulls a song from (or returns it to) the draw pool
func (h *Handler) SetSongActive(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songID")
	if songID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	var req setSongActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.catalog.SetSongActive(r.Context(), &catalog.SetSongActiveInput{
		SongID: songID,
		Active: req.Active,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// DeleteSong removes a song from the catalog
func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	songID := chi.URLParam(r, "songID")
	if songID == "" {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := h.catalog.DeleteSong(r.Context(), &catalog.DeleteSongInput{SongID: songID}); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

type startDrawRequest struct {
	Phase string `json:"phase"`
	Group string `json:"group"`
}

// StartDraw begins a roll over a phase/group's active song pool
func (h *Handler) StartDraw(w http.ResponseWriter, r *http.Request) {
	var req startDrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	out, err := h.draw.Start(r.Context(), &draw.StartInput{
		Phase: models.Phase(req.Phase),
		Group: models.Group(req.Group),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// StopDraw freezes the roll into the drawn songs
func (h *Handler) StopDraw(w http.ResponseWriter, r *http.Request) {
	out, err := h.draw.Stop(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}

// ResetDraw returns the lottery to idle
func (h *Handler) ResetDraw(w http.ResponseWriter, r *http.Request) {
	if err := h.draw.Reset(r.Context()); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "reset"})
}

// GetDrawState returns the lottery state with drawn songs resolved
func (h *Handler) GetDrawState(w http.ResponseWriter, r *http.Request) {
	out, err := h.draw.GetState(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, out)
}
