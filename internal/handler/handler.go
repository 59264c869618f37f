package handler

import (
	"sync"

	"wortschatz/internal/domain"
	"wortschatz/internal/service"
	"wortschatz/internal/vocab"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	authService *service.AuthService
	progress    *service.ProgressService
	stats       *service.StatsService
	words       []vocab.Entry
	logger      *zap.Logger

	// User states (in-memory state machine)
	states   map[int64]*domain.StateData
	stateMux sync.RWMutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	authService *service.AuthService,
	progress *service.ProgressService,
	stats *service.StatsService,
	words []vocab.Entry,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		authService: authService,
		progress:    progress,
		stats:       stats,
		words:       words,
		logger:      logger,
		states:      make(map[int64]*domain.StateData),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)

	// Text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnQuiz, h.handleQuizMenu)
	h.bot.Handle(&btnBrowse, h.handleBrowse)
	h.bot.Handle(&btnStats, h.handleStats)
	h.bot.Handle(&btnReset, h.handleReset)
	h.bot.Handle(&btnResetConfirm, h.handleResetConfirm)
	h.bot.Handle(&btnMainMenu, h.handleStart)
	h.bot.Handle(&btnKnow, h.handleKnow)
	h.bot.Handle(&btnReveal, h.handleReveal)
	h.bot.Handle(&btnSkip, h.handleSkip)
	h.bot.Handle(&btnStop, h.handleStop)

	// Generic callback handler for dynamic data
	h.bot.Handle(tele.OnCallback, h.handleCallback)
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
	btnQuiz = tele.Btn{
		Unique: "quiz",
		Text:   "🎯 Luyện tập",
	}
	btnBrowse = tele.Btn{
		Unique: "browse",
		Text:   "📚 Danh sách từ",
	}
	btnStats = tele.Btn{
		Unique: "stats",
		Text:   "📊 Thống kê",
	}
	btnReset = tele.Btn{
		Unique: "reset",
		Text:   "🗑 Xóa tiến độ",
	}
	btnResetConfirm = tele.Btn{
		Unique: "reset_confirm",
		Text:   "⚠️ Xác nhận xóa",
	}
	btnMainMenu = tele.Btn{
		Unique: "main_menu",
		Text:   "🏠 Menu chính",
	}
	btnKnow = tele.Btn{
		Unique: "know",
		Text:   "✅ Mình biết từ này",
	}
	btnReveal = tele.Btn{
		Unique: "reveal",
		Text:   "👁 Xem đáp án",
	}
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Bỏ qua",
	}
	btnStop = tele.Btn{
		Unique: "stop",
		Text:   "❌ Dừng lại",
	}
)

// mainMenuMarkup returns the main menu keyboard
func mainMenuMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(
		menu.Row(btnQuiz),
		menu.Row(btnBrowse),
		menu.Row(btnStats, btnReset),
	)
	return menu
}
