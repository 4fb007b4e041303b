package handler

import (
	"sync"

	"vocabquiz/internal/domain"
	"vocabquiz/internal/middleware"
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	sessions    *service.SessionService
	audioDir    string
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	sessions *service.SessionService,
	audioDir string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		sessions:    sessions,
		audioDir:    audioDir,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Open to everyone: /start and the password prompt
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)

	// Quiz requires an authorized user
	game := h.bot.Group()
	game.Use(middleware.AuthMiddleware(h.authService, h.logger))

	game.Handle("/play", h.handlePlay)
	game.Handle("/score", h.handleScore)
	game.Handle("/stop", h.handleStop)

	game.Handle(&btnPlay, h.handlePlay)
	game.Handle(&btnStop, h.handleStop)
	game.Handle(&btnMainMenu, h.handleStart)

	// Answer buttons carry the entry ID in their data
	game.Handle(tele.OnCallback, h.handleCallback)
}

// GetState returns user's current state
func (h *Handler) GetState(userID int64) *domain.StateData {
	h.stateMux.RLock()
	defer h.stateMux.RUnlock()

	state, exists := h.states[userID]
	if !exists {
		return &domain.StateData{State: domain.StateIdle}
	}
	return state
}

// SetState sets user's state
func (h *Handler) SetState(userID int64, state *domain.StateData) {
	h.stateMux.Lock()
	defer h.stateMux.Unlock()
	h.states[userID] = state
}

// ResetState resets user to idle state
func (h *Handler) ResetState(userID int64) {
	h.SetState(userID, &domain.StateData{State: domain.StateIdle})
}

// Inline keyboard buttons
var (
	btnPlay = tele.Btn{
		Unique: "play",
		Text:   "▶️ Play",
	}
	btnStop = tele.Btn{
		Unique: "stop",
		Text:   "⏹ Stop",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Main menu",
	}
)

const mainMenuText = "🏠 Main menu\n\nTap Play to start a round."

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnPlay),
	)
	return menu
}
