package round

import (
	"context"
	"errors"
	"strings"

	"github.com/fairwaylabs/pressbook/internal/common/clock"
	"github.com/fairwaylabs/pressbook/internal/common/uuid"
	"github.com/fairwaylabs/pressbook/internal/engine"
	"github.com/fairwaylabs/pressbook/internal/models"
	courseRepo "github.com/fairwaylabs/pressbook/internal/repositories/course"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	roundRepo "github.com/fairwaylabs/pressbook/internal/repositories/round"
	sharecodeRepo "github.com/fairwaylabs/pressbook/internal/repositories/sharecode"
)

const shareCodeLength = 6

// service implements the Service interface
type service struct {
	roundRepo     roundRepo.Repository
	playerRepo    playerRepo.Repository
	courseRepo    courseRepo.Repository
	shareCodeRepo sharecodeRepo.Repository
	clock         clock.Clock
	uuid          uuid.UUID
}

// NewService creates a new round service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RoundRepo == nil {
		return nil, ErrNilRoundRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.CourseRepo == nil {
		return nil, ErrNilCourseRepo
	}
	if cfg.ShareCodeRepo == nil {
		return nil, ErrNilShareCodeRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		roundRepo:     cfg.RoundRepo,
		playerRepo:    cfg.PlayerRepo,
		courseRepo:    cfg.CourseRepo,
		shareCodeRepo: cfg.ShareCodeRepo,
		clock:         cfg.Clock,
		uuid:          cfg.UUIDGenerator,
	}, nil
}

// CreateRound starts a new round, snapshotting the roster and course
func (s *service) CreateRound(ctx context.Context, input *CreateRoundInput) (*CreateRoundOutput, error) {
	if len(input.PlayerIDs) == 0 {
		return nil, ErrNoPlayers
	}
	if input.CourseID == "" {
		return nil, ErrCourseRequired
	}

	course, err := s.courseRepo.GetCourse(ctx, &courseRepo.GetCourseInput{
		CourseID: input.CourseID,
	})
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			return nil, ErrCourseRequired
		}
		return nil, err
	}

	// Snapshot the roster. Later edits to saved players do not touch an
	// in-progress round.
	roster := make([]models.RoundPlayer, 0, len(input.PlayerIDs))
	seenNames := make(map[string]bool, len(input.PlayerIDs))
	for _, playerID := range input.PlayerIDs {
		player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
			PlayerID: playerID,
		})
		if err != nil {
			if errors.Is(err, playerRepo.ErrPlayerNotFound) {
				return nil, ErrPlayerNotInRound
			}
			return nil, err
		}
		if seenNames[player.Name] {
			return nil, ErrDuplicatePlayerName
		}
		seenNames[player.Name] = true

		roster = append(roster, models.RoundPlayer{
			PlayerID: player.ID,
			Name:     player.Name,
			Handicap: player.Handicap,
		})
	}

	handicapMode := input.HandicapMode
	if handicapMode == "" {
		handicapMode = models.HandicapModeLowest
	}
	teamMode := input.TeamMode
	if teamMode == "" {
		teamMode = models.TeamModeIndividual
	}

	wagers := make([]models.Wager, 0, len(input.Wagers))
	for _, setup := range input.Wagers {
		name := setup.Name
		if name == "" {
			name = wagerKindLabel(setup.Kind)
		}
		wagers = append(wagers, models.Wager{
			ID:        s.uuid.NewUUID(),
			Name:      name,
			Kind:      setup.Kind,
			Amount:    setup.Amount,
			CarryOver: setup.CarryOver,
		})
	}

	junkValues := input.JunkPointValues
	if junkValues == nil {
		junkValues = make(map[models.JunkType]float64)
	}

	now := s.clock.Now()
	round := &models.Round{
		ID:                s.uuid.NewUUID(),
		OwnerID:           input.OwnerID,
		Status:            models.RoundStatusActive,
		CourseID:          course.ID,
		CourseName:        course.Name,
		Holes:             course.Holes,
		Players:           roster,
		HandicapMode:      handicapMode,
		TeamMode:          teamMode,
		Teams:             input.Teams,
		Scores:            make(map[string]map[int]string),
		Wagers:            wagers,
		BetSelections:     make(map[string]string),
		RoundBets:         []models.RoundBet{},
		SelectedJunkTypes: input.SelectedJunkTypes,
		JunkPointValues:   junkValues,
		JunkEvents:        make(models.JunkEvents),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	return &CreateRoundOutput{Round: round}, nil
}

// GetRound retrieves one of the caller's rounds
func (s *service) GetRound(ctx context.Context, input *GetRoundInput) (*GetRoundOutput, error) {
	round, err := s.getOwnedRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetRoundOutput{Round: round}, nil
}

// ListRounds retrieves the caller's rounds, newest first
func (s *service) ListRounds(ctx context.Context, input *ListRoundsInput) (*ListRoundsOutput, error) {
	rounds, err := s.roundRepo.ListRoundsByOwner(ctx, &roundRepo.ListRoundsByOwnerInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}
	return &ListRoundsOutput{Rounds: rounds}, nil
}

// DeleteRound removes one of the caller's rounds
func (s *service) DeleteRound(ctx context.Context, input *DeleteRoundInput) (*DeleteRoundOutput, error) {
	round, err := s.getOwnedRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	err = s.roundRepo.DeleteRound(ctx, &roundRepo.DeleteRoundInput{
		RoundID: round.ID,
		OwnerID: round.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteRoundOutput{}, nil
}

// UpdateScore records a score entry for a player on a hole
func (s *service) UpdateScore(ctx context.Context, input *UpdateScoreInput) (*UpdateScoreOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if !rosterHasName(round, input.PlayerName) {
		return nil, ErrPlayerNotInRound
	}
	if input.Hole < 1 || input.Hole > 18 {
		return nil, ErrInvalidHole
	}

	if round.Scores == nil {
		round.Scores = make(map[string]map[int]string)
	}
	if round.Scores[input.PlayerName] == nil {
		round.Scores[input.PlayerName] = make(map[int]string)
	}

	// Entries are stored as entered. A cleared or unparseable entry is
	// treated as "not yet played" by the scoring engine.
	if strings.TrimSpace(input.Score) == "" {
		delete(round.Scores[input.PlayerName], input.Hole)
	} else {
		round.Scores[input.PlayerName][input.Hole] = input.Score
	}

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &UpdateScoreOutput{Round: round}, nil
}

// UpdateRoundPlayer edits a round player's snapshot name or handicap
func (s *service) UpdateRoundPlayer(ctx context.Context, input *UpdateRoundPlayerInput) (*UpdateRoundPlayerOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range round.Players {
		if p.PlayerID == input.PlayerID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrPlayerNotInRound
	}

	if input.Name != "" && input.Name != round.Players[idx].Name {
		if rosterHasName(round, input.Name) {
			return nil, ErrDuplicatePlayerName
		}
		renameRoundPlayer(round, round.Players[idx].Name, input.Name)
		round.Players[idx].Name = input.Name
	}
	round.Players[idx].Handicap = input.Handicap

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &UpdateRoundPlayerOutput{Round: round}, nil
}

// SelectBetWinner records the manual winner pick for a side bet
func (s *service) SelectBetWinner(ctx context.Context, input *SelectBetWinnerInput) (*SelectBetWinnerOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, w := range round.Wagers {
		if w.Kind == models.WagerKindSideBet && w.Name == input.WagerName {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrWagerNotFound
	}

	if round.BetSelections == nil {
		round.BetSelections = make(map[string]string)
	}
	if input.Winner == "" {
		delete(round.BetSelections, input.WagerName)
	} else {
		if !rosterHasName(round, input.Winner) {
			return nil, ErrInvalidWinner
		}
		round.BetSelections[input.WagerName] = input.Winner
	}

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &SelectBetWinnerOutput{Round: round}, nil
}

// AddRoundBet creates a prop bet during an active round
func (s *service) AddRoundBet(ctx context.Context, input *AddRoundBetInput) (*AddRoundBetOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidBetAmount
	}
	if input.Type == models.RoundBetTwoPlayers {
		if input.Player1 == input.Player2 ||
			!rosterHasName(round, input.Player1) ||
			!rosterHasName(round, input.Player2) {
			return nil, ErrPlayerNotInRound
		}
	}

	bet := models.RoundBet{
		ID:      s.uuid.NewUUID(),
		Name:    input.Name,
		Type:    input.Type,
		Amount:  input.Amount,
		Odds:    input.Odds,
		Player1: input.Player1,
		Player2: input.Player2,
	}
	round.RoundBets = append(round.RoundBets, bet)

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &AddRoundBetOutput{Round: round, BetID: bet.ID}, nil
}

// RemoveRoundBet deletes a prop bet
func (s *service) RemoveRoundBet(ctx context.Context, input *RemoveRoundBetInput) (*RemoveRoundBetOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	idx := findRoundBet(round, input.BetID)
	if idx == -1 {
		return nil, ErrBetNotFound
	}
	round.RoundBets = append(round.RoundBets[:idx], round.RoundBets[idx+1:]...)

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &RemoveRoundBetOutput{Round: round}, nil
}

// SetRoundBetWinner settles or un-settles a prop bet
func (s *service) SetRoundBetWinner(ctx context.Context, input *SetRoundBetWinnerInput) (*SetRoundBetWinnerOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	idx := findRoundBet(round, input.BetID)
	if idx == -1 {
		return nil, ErrBetNotFound
	}

	bet := &round.RoundBets[idx]
	if input.Winner != "" {
		switch bet.Type {
		case models.RoundBetTwoPlayers:
			if input.Winner != bet.Player1 && input.Winner != bet.Player2 {
				return nil, ErrInvalidWinner
			}
		default:
			if !rosterHasName(round, input.Winner) {
				return nil, ErrInvalidWinner
			}
		}
	}
	bet.Winner = input.Winner

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &SetRoundBetWinnerOutput{Round: round}, nil
}

// ToggleJunkEvent flips a junk event for a player on a hole
func (s *service) ToggleJunkEvent(ctx context.Context, input *ToggleJunkEventInput) (*ToggleJunkEventOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if !rosterHasName(round, input.PlayerName) {
		return nil, ErrPlayerNotInRound
	}
	if input.Hole < 1 || input.Hole > 18 {
		return nil, ErrInvalidHole
	}
	if !knownJunkType(input.JunkType) {
		return nil, ErrUnknownJunkType
	}

	if round.JunkEvents == nil {
		round.JunkEvents = make(models.JunkEvents)
	}
	occurred := round.JunkEvents.Toggle(input.PlayerName, input.Hole, input.JunkType)

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &ToggleJunkEventOutput{Round: round, Occurred: occurred}, nil
}

// UpdateJunkSettings replaces the tracked junk types and point values
func (s *service) UpdateJunkSettings(ctx context.Context, input *UpdateJunkSettingsInput) (*UpdateJunkSettingsOutput, error) {
	round, err := s.getMutableRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	for _, jt := range input.SelectedJunkTypes {
		if !knownJunkType(jt) {
			return nil, ErrUnknownJunkType
		}
	}

	round.SelectedJunkTypes = input.SelectedJunkTypes
	round.JunkPointValues = input.JunkPointValues
	if round.JunkPointValues == nil {
		round.JunkPointValues = make(map[models.JunkType]float64)
	}

	if err := s.saveRound(ctx, round); err != nil {
		return nil, err
	}
	return &UpdateJunkSettingsOutput{Round: round}, nil
}

// ComputeStandings returns live standings for an active round, or the
// frozen results for an ended one
func (s *service) ComputeStandings(ctx context.Context, input *ComputeStandingsInput) (*ComputeStandingsOutput, error) {
	round, err := s.getOwnedRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if round.Status == models.RoundStatusEnded && round.Results != nil {
		return &ComputeStandingsOutput{Standings: round.Results}, nil
	}

	return &ComputeStandingsOutput{
		Standings: engine.ComputeStandings(round, s.clock.Now()),
	}, nil
}

// EndRound freezes the round's results. Ending twice is a no-op.
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	round, err := s.getOwnedRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if round.Status == models.RoundStatusEnded {
		return &EndRoundOutput{Round: round, Standings: round.Results}, nil
	}

	now := s.clock.Now()
	round.Results = engine.ComputeStandings(round, now)
	round.Status = models.RoundStatusEnded
	round.EndedAt = now
	round.UpdatedAt = now

	if err := s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round}); err != nil {
		return nil, err
	}

	return &EndRoundOutput{Round: round, Standings: round.Results}, nil
}

// CreateShareCode issues (or returns the existing) share code for a round
func (s *service) CreateShareCode(ctx context.Context, input *CreateShareCodeInput) (*CreateShareCodeOutput, error) {
	round, err := s.getOwnedRound(ctx, input.RoundID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	existing, err := s.shareCodeRepo.GetShareCodeByRound(ctx, &sharecodeRepo.GetShareCodeByRoundInput{
		RoundID: round.ID,
	})
	if err == nil {
		return &CreateShareCodeOutput{Code: existing.Code}, nil
	}
	if !errors.Is(err, sharecodeRepo.ErrShareCodeNotFound) {
		return nil, err
	}

	code := &models.ShareCode{
		Code:      s.newShareCode(),
		OwnerID:   round.OwnerID,
		RoundID:   round.ID,
		CreatedAt: s.clock.Now(),
	}
	err = s.shareCodeRepo.SaveShareCode(ctx, &sharecodeRepo.SaveShareCodeInput{
		ShareCode: code,
	})
	if err != nil {
		return nil, err
	}

	return &CreateShareCodeOutput{Code: code.Code}, nil
}

// ResolveShareCode resolves a share code to a read-only round view
func (s *service) ResolveShareCode(ctx context.Context, input *ResolveShareCodeInput) (*ResolveShareCodeOutput, error) {
	code, err := s.shareCodeRepo.GetShareCode(ctx, &sharecodeRepo.GetShareCodeInput{
		Code: strings.ToUpper(strings.TrimSpace(input.Code)),
	})
	if err != nil {
		if errors.Is(err, sharecodeRepo.ErrShareCodeNotFound) {
			return nil, ErrShareCodeNotFound
		}
		return nil, err
	}

	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		RoundID: code.RoundID,
	})
	if err != nil {
		if errors.Is(err, roundRepo.ErrRoundNotFound) {
			return nil, ErrShareCodeNotFound
		}
		return nil, err
	}

	return &ResolveShareCodeOutput{Round: round}, nil
}

// getOwnedRound fetches a round and verifies ownership. A round owned by
// someone else reads as not found.
func (s *service) getOwnedRound(ctx context.Context, roundID, ownerID string) (*models.Round, error) {
	round, err := s.roundRepo.GetRound(ctx, &roundRepo.GetRoundInput{
		RoundID: roundID,
	})
	if err != nil {
		if errors.Is(err, roundRepo.ErrRoundNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	if round.OwnerID != ownerID {
		return nil, ErrRoundNotFound
	}
	return round, nil
}

// getMutableRound fetches an owned round and rejects ended ones
func (s *service) getMutableRound(ctx context.Context, roundID, ownerID string) (*models.Round, error) {
	round, err := s.getOwnedRound(ctx, roundID, ownerID)
	if err != nil {
		return nil, err
	}
	if round.Status == models.RoundStatusEnded {
		return nil, ErrRoundEnded
	}
	return round, nil
}

// saveRound stamps UpdatedAt and persists the round
func (s *service) saveRound(ctx context.Context, round *models.Round) error {
	round.UpdatedAt = s.clock.Now()
	return s.roundRepo.SaveRound(ctx, &roundRepo.SaveRoundInput{Round: round})
}

// newShareCode derives a short uppercase code from a fresh UUID
func (s *service) newShareCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(s.uuid.NewUUID(), "-", ""))
	if len(raw) > shareCodeLength {
		raw = raw[:shareCodeLength]
	}
	return raw
}

// renameRoundPlayer migrates every name-keyed structure in the round from
// the old roster name to the new one
func renameRoundPlayer(round *models.Round, oldName, newName string) {
	if scores, ok := round.Scores[oldName]; ok {
		delete(round.Scores, oldName)
		round.Scores[newName] = scores
	}
	if events, ok := round.JunkEvents[oldName]; ok {
		delete(round.JunkEvents, oldName)
		round.JunkEvents[newName] = events
	}
	for betName, winner := range round.BetSelections {
		if winner == oldName {
			round.BetSelections[betName] = newName
		}
	}
	for i := range round.RoundBets {
		bet := &round.RoundBets[i]
		if bet.Player1 == oldName {
			bet.Player1 = newName
		}
		if bet.Player2 == oldName {
			bet.Player2 = newName
		}
		if bet.Winner == oldName {
			bet.Winner = newName
		}
	}
}

func rosterHasName(round *models.Round, name string) bool {
	for _, p := range round.Players {
		if p.Name == name {
			return true
		}
	}
	return false
}

func findRoundBet(round *models.Round, betID string) int {
	for i, b := range round.RoundBets {
		if b.ID == betID {
			return i
		}
	}
	return -1
}

func knownJunkType(jt models.JunkType) bool {
	for _, known := range models.AllJunkTypes {
		if jt == known {
			return true
		}
	}
	return false
}

func wagerKindLabel(kind models.WagerKind) string {
	switch kind {
	case models.WagerKindNassau:
		return "Nassau"
	case models.WagerKindSkins:
		return "Skins"
	case models.WagerKindMatchPlay:
		return "Match Play"
	case models.WagerKindNinePoint:
		return "9 Point"
	default:
		return "Side Bet"
	}
}
