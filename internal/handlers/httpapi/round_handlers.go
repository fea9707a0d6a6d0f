package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairwaylabs/pressbook/internal/auth"
	"github.com/fairwaylabs/pressbook/internal/models"
	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
)

type createRoundRequest struct {
	CourseID          string                      `json:"courseId"`
	PlayerIDs         []string                    `json:"playerIds"`
	HandicapMode      models.HandicapMode         `json:"handicapMode"`
	TeamMode          models.TeamMode             `json:"teamMode"`
	Teams             []models.Team               `json:"teams"`
	Wagers            []roundService.WagerSetup   `json:"wagers"`
	SelectedJunkTypes []models.JunkType           `json:"selectedJunkTypes"`
	JunkPointValues   map[models.JunkType]float64 `json:"junkPointValues"`
}

type updateScoreRequest struct {
	PlayerName string `json:"playerName"`
	Hole       int    `json:"hole"`
	Score      string `json:"score"`
}

type updateRoundPlayerRequest struct {
	Name     string `json:"name"`
	Handicap int    `json:"handicap"`
}

type selectBetWinnerRequest struct {
	WagerName string `json:"wagerName"`
	Winner    string `json:"winner"`
}

type addRoundBetRequest struct {
	Name    string              `json:"name"`
	Type    models.RoundBetType `json:"type"`
	Amount  float64             `json:"amount"`
	Odds    float64             `json:"odds"`
	Player1 string              `json:"player1"`
	Player2 string              `json:"player2"`
}

type setBetWinnerRequest struct {
	Winner string `json:"winner"`
}

type toggleJunkEventRequest struct {
	PlayerName string          `json:"playerName"`
	Hole       int             `json:"hole"`
	JunkType   models.JunkType `json:"junkType"`
}

type updateJunkSettingsRequest struct {
	SelectedJunkTypes []models.JunkType           `json:"selectedJunkTypes"`
	JunkPointValues   map[models.JunkType]float64 `json:"junkPointValues"`
}

type shareCodeResponse struct {
	Code string `json:"code"`
}

func (h *Handler) handleCreateRound(w http.ResponseWriter, r *http.Request) {
	var req createRoundRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.CreateRound(r.Context(), &roundService.CreateRoundInput{
		OwnerID:           auth.UserID(r.Context()),
		CourseID:          req.CourseID,
		PlayerIDs:         req.PlayerIDs,
		HandicapMode:      req.HandicapMode,
		TeamMode:          req.TeamMode,
		Teams:             req.Teams,
		Wagers:            req.Wagers,
		SelectedJunkTypes: req.SelectedJunkTypes,
		JunkPointValues:   req.JunkPointValues,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, output.Round)
}

func (h *Handler) handleListRounds(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.ListRounds(r.Context(), &roundService.ListRoundsInput{
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Rounds)
}

func (h *Handler) handleGetRound(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.GetRound(r.Context(), &roundService.GetRoundInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleDeleteRound(w http.ResponseWriter, r *http.Request) {
	_, err := h.roundService.DeleteRound(r.Context(), &roundService.DeleteRoundInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleUpdateScore(w http.ResponseWriter, r *http.Request) {
	var req updateScoreRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.UpdateScore(r.Context(), &roundService.UpdateScoreInput{
		RoundID:    chi.URLParam(r, "id"),
		OwnerID:    auth.UserID(r.Context()),
		PlayerName: req.PlayerName,
		Hole:       req.Hole,
		Score:      req.Score,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleUpdateRoundPlayer(w http.ResponseWriter, r *http.Request) {
	var req updateRoundPlayerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.UpdateRoundPlayer(r.Context(), &roundService.UpdateRoundPlayerInput{
		RoundID:  chi.URLParam(r, "id"),
		OwnerID:  auth.UserID(r.Context()),
		PlayerID: chi.URLParam(r, "playerID"),
		Name:     req.Name,
		Handicap: req.Handicap,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleSelectBetWinner(w http.ResponseWriter, r *http.Request) {
	var req selectBetWinnerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.SelectBetWinner(r.Context(), &roundService.SelectBetWinnerInput{
		RoundID:   chi.URLParam(r, "id"),
		OwnerID:   auth.UserID(r.Context()),
		WagerName: req.WagerName,
		Winner:    req.Winner,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleAddRoundBet(w http.ResponseWriter, r *http.Request) {
	var req addRoundBetRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.AddRoundBet(r.Context(), &roundService.AddRoundBetInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
		Name:    req.Name,
		Type:    req.Type,
		Amount:  req.Amount,
		Odds:    req.Odds,
		Player1: req.Player1,
		Player2: req.Player2,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusCreated, output.Round)
}

func (h *Handler) handleRemoveRoundBet(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.RemoveRoundBet(r.Context(), &roundService.RemoveRoundBetInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
		BetID:   chi.URLParam(r, "betID"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleSetRoundBetWinner(w http.ResponseWriter, r *http.Request) {
	var req setBetWinnerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.SetRoundBetWinner(r.Context(), &roundService.SetRoundBetWinnerInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
		BetID:   chi.URLParam(r, "betID"),
		Winner:  req.Winner,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleToggleJunkEvent(w http.ResponseWriter, r *http.Request) {
	var req toggleJunkEventRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.ToggleJunkEvent(r.Context(), &roundService.ToggleJunkEventInput{
		RoundID:    chi.URLParam(r, "id"),
		OwnerID:    auth.UserID(r.Context()),
		PlayerName: req.PlayerName,
		Hole:       req.Hole,
		JunkType:   req.JunkType,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleUpdateJunkSettings(w http.ResponseWriter, r *http.Request) {
	var req updateJunkSettingsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	output, err := h.roundService.UpdateJunkSettings(r.Context(), &roundService.UpdateJunkSettingsInput{
		RoundID:           chi.URLParam(r, "id"),
		OwnerID:           auth.UserID(r.Context()),
		SelectedJunkTypes: req.SelectedJunkTypes,
		JunkPointValues:   req.JunkPointValues,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleStandings(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.ComputeStandings(r.Context(), &roundService.ComputeStandingsInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Standings)
}

func (h *Handler) handleEndRound(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.EndRound(r.Context(), &roundService.EndRoundInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.broadcastRound(output.Round)
	h.writeJSON(w, http.StatusOK, output.Round)
}

func (h *Handler) handleCreateShareCode(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.CreateShareCode(r.Context(), &roundService.CreateShareCodeInput{
		RoundID: chi.URLParam(r, "id"),
		OwnerID: auth.UserID(r.Context()),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, shareCodeResponse{Code: output.Code})
}

func (h *Handler) handleSharedRound(w http.ResponseWriter, r *http.Request) {
	output, err := h.roundService.ResolveShareCode(r.Context(), &roundService.ResolveShareCodeInput{
		Code: chi.URLParam(r, "code"),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, output.Round)
}

// broadcastRound pushes the round's new state to websocket watchers
func (h *Handler) broadcastRound(round *models.Round) {
	data, err := json.Marshal(round)
	if err != nil {
		h.logger.Error("failed to marshal round for broadcast", "round_id", round.ID, "error", err)
		return
	}
	h.hub.BroadcastRound(round.ID, data)
}
