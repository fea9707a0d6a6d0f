package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/models"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
)

type playerRequest struct {
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

func (h *Handler) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerRepo.ListPlayersByOwner(r.Context(), &playerRepo.ListPlayersByOwnerInput{
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, players)
}

func (h *Handler) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req playerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		h.writeError(w, errBadRequest)
		return
	}

	now := h.clock.Now()
	player := &models.Player{
		ID:        h.uuid.NewUUID(),
		OwnerID:   auth.UserID(r.Context()),
		Name:      req.Name,
		Handicap:  req.Handicap,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.playerRepo.SavePlayer(r.Context(), &playerRepo.SavePlayerInput{Player: player}); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, player)
}

func (h *Handler) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.ownedPlayer(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req playerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		player.Name = name
	}
	player.Handicap = req.Handicap
	player.UpdatedAt = h.clock.Now()

	if err := h.playerRepo.SavePlayer(r.Context(), &playerRepo.SavePlayerInput{Player: player}); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, player)
}

func (h *Handler) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := h.ownedPlayer(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	err = h.playerRepo.DeletePlayer(r.Context(), &playerRepo.DeletePlayerInput{
		PlayerID: player.ID,
		OwnerID:  player.OwnerID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

// ownedPlayer fetches the path player and verifies it belongs to the caller
func (h *Handler) ownedPlayer(r *http.Request) (*models.Player, error) {
	player, err := h.playerRepo.GetPlayer(r.Context(), &playerRepo.GetPlayerInput{
		PlayerID: chi.URLParam(r, "id"),
	})
	if err != nil {
		return nil, err
	}
	if player.OwnerID != auth.UserID(r.Context()) {
		return nil, playerRepo.ErrPlayerNotFound
	}
	return player, nil
}
