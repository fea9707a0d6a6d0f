package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/fairwaylabs/pressbook/internal/auth"
	clockMocks "github.com/fairwaylabs/pressbook/internal/common/clock/mocks"
	uuidMocks "github.com/fairwaylabs/pressbook/internal/common/uuid/mocks"
	"github.com/fairwaylabs/pressbook/internal/models"
	courseMocks "github.com/fairwaylabs/pressbook/internal/repositories/course/mocks"
	playerRepo "github.com/fairwaylabs/pressbook/internal/repositories/player"
	playerMocks "github.com/fairwaylabs/pressbook/internal/repositories/player/mocks"
	userRepo "github.com/fairwaylabs/pressbook/internal/repositories/user"
	userMocks "github.com/fairwaylabs/pressbook/internal/repositories/user/mocks"
	roundService "github.com/fairwaylabs/pressbook/internal/services/round"
	serviceMocks "github.com/fairwaylabs/pressbook/internal/services/round/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockService    *serviceMocks.MockService
	mockPlayerRepo *playerMocks.MockRepository
	mockCourseRepo *courseMocks.MockRepository
	mockUserRepo   *userMocks.MockRepository
	mockClock      *clockMocks.MockClock
	mockUUID       *uuidMocks.MockUUID
	authManager    *auth.Manager
	server         *httptest.Server

	testTime  time.Time
	testToken string
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockCourseRepo = courseMocks.NewMockRepository(s.mockCtrl)
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.testTime = time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	var err error
	s.authManager, err = auth.NewManager(&auth.Config{Secret: "test-secret"})
	s.Require().NoError(err)
	s.testToken, err = s.authManager.IssueToken("test-owner-id")
	s.Require().NoError(err)

	hub := NewHub()
	go hub.Run()

	handler, err := NewHandler(&Config{
		RoundService:  s.mockService,
		PlayerRepo:    s.mockPlayerRepo,
		CourseRepo:    s.mockCourseRepo,
		UserRepo:      s.mockUserRepo,
		Auth:          s.authManager,
		Hub:           hub,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Routes())
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

// do sends an authenticated request with an optional JSON body
func (s *HandlerTestSuite) do(method, path string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	s.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+s.testToken)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	return resp
}

func (s *HandlerTestSuite) decode(resp *http.Response, out interface{}) {
	defer resp.Body.Close()
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(out))
}

func (s *HandlerTestSuite) TestAuthRequired() {
	resp, err := http.Get(s.server.URL + "/api/rounds")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestRegisterAndLogin() {
	s.mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), &userRepo.GetUserByEmailInput{Email: "alice@example.com"}).
		Return(nil, userRepo.ErrUserNotFound)
	s.mockUUID.EXPECT().NewUUID().Return("user-1")

	var savedUser *models.User
	s.mockUserRepo.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			savedUser = input.User
			return nil
		})

	resp := s.do(http.MethodPost, "/api/register", map[string]string{
		"email":    "alice@example.com",
		"name":     "Alice",
		"password": "hunter22",
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var registered struct {
		Token string       `json:"token"`
		User  *models.User `json:"user"`
	}
	s.decode(resp, &registered)
	s.NotEmpty(registered.Token)
	s.Empty(registered.User.PasswordHash)
	s.Require().NotNil(savedUser)
	s.NotEmpty(savedUser.PasswordHash)

	s.mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(savedUser, nil)

	resp = s.do(http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var loggedIn struct {
		Token string `json:"token"`
	}
	s.decode(resp, &loggedIn)

	userID, err := s.authManager.VerifyToken(loggedIn.Token)
	s.Require().NoError(err)
	s.Equal("user-1", userID)
}

func (s *HandlerTestSuite) TestLoginWrongPassword() {
	hash, err := s.authManager.HashPassword("right")
	s.Require().NoError(err)
	s.mockUserRepo.EXPECT().
		GetUserByEmail(gomock.Any(), gomock.Any()).
		Return(&models.User{ID: "user-1", PasswordHash: hash}, nil)

	resp := s.do(http.MethodPost, "/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCreatePlayer() {
	s.mockUUID.EXPECT().NewUUID().Return("player-1")
	s.mockPlayerRepo.EXPECT().
		SavePlayer(gomock.Any(), gomock.Any()).
		Return(nil)

	resp := s.do(http.MethodPost, "/api/players", map[string]interface{}{
		"name":     "Alice",
		"handicap": 10,
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var player models.Player
	s.decode(resp, &player)
	s.Equal("player-1", player.ID)
	s.Equal("test-owner-id", player.OwnerID)
	s.Equal(10, player.Handicap)
}

func (s *HandlerTestSuite) TestDeletePlayerChecksOwnership() {
	s.mockPlayerRepo.EXPECT().
		GetPlayer(gomock.Any(), &playerRepo.GetPlayerInput{PlayerID: "player-1"}).
		Return(&models.Player{ID: "player-1", OwnerID: "someone-else"}, nil)

	resp := s.do(http.MethodDelete, "/api/players/player-1", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCreateRound() {
	round := &models.Round{ID: "round-1", OwnerID: "test-owner-id", Status: models.RoundStatusActive}
	s.mockService.EXPECT().
		CreateRound(gomock.Any(), &roundService.CreateRoundInput{
			OwnerID:   "test-owner-id",
			CourseID:  "course-1",
			PlayerIDs: []string{"player-1", "player-2"},
		}).
		Return(&roundService.CreateRoundOutput{Round: round}, nil)

	resp := s.do(http.MethodPost, "/api/rounds", map[string]interface{}{
		"courseId":  "course-1",
		"playerIds": []string{"player-1", "player-2"},
	})
	s.Equal(http.StatusCreated, resp.StatusCode)

	var got models.Round
	s.decode(resp, &got)
	s.Equal("round-1", got.ID)
}

func (s *HandlerTestSuite) TestGetRoundNotFound() {
	s.mockService.EXPECT().
		GetRound(gomock.Any(), gomock.Any()).
		Return(nil, roundService.ErrRoundNotFound)

	resp := s.do(http.MethodGet, "/api/rounds/missing", nil)
	defer resp.Body.Close()
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerTestSuite) TestUpdateScore() {
	round := &models.Round{
		ID:      "round-1",
		OwnerID: "test-owner-id",
		Scores:  map[string]map[int]string{"Alice": {3: "5"}},
	}
	s.mockService.EXPECT().
		UpdateScore(gomock.Any(), &roundService.UpdateScoreInput{
			RoundID:    "round-1",
			OwnerID:    "test-owner-id",
			PlayerName: "Alice",
			Hole:       3,
			Score:      "5",
		}).
		Return(&roundService.UpdateScoreOutput{Round: round}, nil)

	resp := s.do(http.MethodPut, "/api/rounds/round-1/scores", map[string]interface{}{
		"playerName": "Alice",
		"hole":       3,
		"score":      "5",
	})
	s.Equal(http.StatusOK, resp.StatusCode)

	var got models.Round
	s.decode(resp, &got)
	s.Equal("5", got.Scores["Alice"][3])
}

func (s *HandlerTestSuite) TestUpdateScoreAfterEndConflicts() {
	s.mockService.EXPECT().
		UpdateScore(gomock.Any(), gomock.Any()).
		Return(nil, roundService.ErrRoundEnded)

	resp := s.do(http.MethodPut, "/api/rounds/round-1/scores", map[string]interface{}{
		"playerName": "Alice",
		"hole":       3,
		"score":      "5",
	})
	defer resp.Body.Close()
	s.Equal(http.StatusConflict, resp.StatusCode)
}

func (s *HandlerTestSuite) TestStandings() {
	standings := &models.Standings{
		JunkTotals: map[string]float64{"Alice": 4},
		ComputedAt: s.testTime,
	}
	s.mockService.EXPECT().
		ComputeStandings(gomock.Any(), &roundService.ComputeStandingsInput{
			RoundID: "round-1",
			OwnerID: "test-owner-id",
		}).
		Return(&roundService.ComputeStandingsOutput{Standings: standings}, nil)

	resp := s.do(http.MethodGet, "/api/rounds/round-1/standings", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var got models.Standings
	s.decode(resp, &got)
	s.Equal(4.0, got.JunkTotals["Alice"])
}

func (s *HandlerTestSuite) TestEndRound() {
	round := &models.Round{ID: "round-1", OwnerID: "test-owner-id", Status: models.RoundStatusEnded}
	s.mockService.EXPECT().
		EndRound(gomock.Any(), &roundService.EndRoundInput{
			RoundID: "round-1",
			OwnerID: "test-owner-id",
		}).
		Return(&roundService.EndRoundOutput{Round: round, Standings: &models.Standings{}}, nil)

	resp := s.do(http.MethodPost, "/api/rounds/round-1/end", nil)
	s.Equal(http.StatusOK, resp.StatusCode)

	var got models.Round
	s.decode(resp, &got)
	s.Equal(models.RoundStatusEnded, got.Status)
}

func (s *HandlerTestSuite) TestShareCodeFlow() {
	s.mockService.EXPECT().
		CreateShareCode(gomock.Any(), &roundService.CreateShareCodeInput{
			RoundID: "round-1",
			OwnerID: "test-owner-id",
		}).
		Return(&roundService.CreateShareCodeOutput{Code: "AB3X9K"}, nil)

	resp := s.do(http.MethodPost, "/api/rounds/round-1/share", nil)
	s.Equal(http.StatusCreated, resp.StatusCode)

	var created shareCodeResponse
	s.decode(resp, &created)
	s.Equal("AB3X9K", created.Code)

	shared := &models.Round{ID: "round-1", Status: models.RoundStatusActive}
	s.mockService.EXPECT().
		ResolveShareCode(gomock.Any(), &roundService.ResolveShareCodeInput{Code: "AB3X9K"}).
		Return(&roundService.ResolveShareCodeOutput{Round: shared}, nil)

	// Shared views need no token.
	resp2, err := http.Get(s.server.URL + "/api/shared/AB3X9K")
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp2.StatusCode)

	var got models.Round
	s.decode(resp2, &got)
	s.Equal("round-1", got.ID)
}

func (s *HandlerTestSuite) TestAddRoundBetBadAmount() {
	s.mockService.EXPECT().
		AddRoundBet(gomock.Any(), gomock.Any()).
		Return(nil, roundService.ErrInvalidBetAmount)

	resp := s.do(http.MethodPost, "/api/rounds/round-1/round-bets", map[string]interface{}{
		"name":   "Longest drive",
		"type":   "everyone",
		"amount": 0,
	})
	defer resp.Body.Close()
	s.Equal(http.StatusBadRequest, resp.StatusCode)
}
