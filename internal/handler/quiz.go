package handler

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"wortschatz/internal/domain"
	"wortschatz/internal/quiz"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText handles all text messages based on state
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	// Ignore commands (starting with /)
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// Ensure user exists
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return nil
	}

	// Check authorization first
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Đã có lỗi xảy ra. Vui lòng thử lại sau.")
	}

	// If not authorized, check password
	if !authorized {
		if h.authService.CheckPassword(text) {
			if err := h.authService.AuthorizeUser(userID); err != nil {
				h.logger.Error("Failed to authorize user", zap.Error(err))
				return c.Send("Đã có lỗi xảy ra. Vui lòng thử lại sau.")
			}

			h.logger.Info("User authorized", zap.Int64("user_id", userID))
			h.ResetState(userID)
			return c.Send(
				"✅ Đăng nhập thành công!\n\n🏠 Menu chính\n\nChọn một mục:",
				mainMenuMarkup(),
			)
		}

		// Wrong password
		return c.Send("Sai mật khẩu, thử lại nhé.")
	}

	// User is authorized, handle based on state
	state := h.GetState(userID)

	switch state.State {
	case domain.StateWaitingCustomSize:
		return h.handleCustomSize(c, state, text)

	case domain.StateInQuiz:
		return h.handleAnswer(c, state, text)

	default:
		// No text input expected - point back to the menu
		return c.Send("Dùng menu để bắt đầu nhé. /start")
	}
}

// handleQuizMenu starts the quiz flow with direction selection
func (h *Handler) handleQuizMenu(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🇩🇪 → 🇻🇳", "dir_de_vi"),
			markup.Data("🇻🇳 → 🇩🇪", "dir_vi_de"),
		),
		markup.Row(btnMainMenu),
	)

	return h.editOrSend(c, "🎯 Chọn chiều dịch:", markup)
}

// handleDirection stores the chosen direction and asks for the quiz size
func (h *Handler) handleDirection(c tele.Context, direction quiz.Direction) error {
	userID := c.Sender().ID

	h.SetState(userID, &domain.StateData{
		State:     domain.StatePickingSize,
		Direction: direction,
	})

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("5", "size_5"),
			markup.Data("10", "size_10"),
			markup.Data("20", "size_20"),
		),
		markup.Row(markup.Data("✏️ Số khác", "size_custom")),
		markup.Row(btnMainMenu),
	)

	text := fmt.Sprintf("Chiều dịch: %s\n\nBao nhiêu từ?", direction)
	return h.editOrSend(c, text, markup)
}

// handleSizeChoice handles the preset size buttons and the custom size entry
func (h *Handler) handleSizeChoice(c tele.Context, data string) error {
	userID := c.Sender().ID
	state := h.GetState(userID)

	if state.State != domain.StatePickingSize && state.State != domain.StateWaitingCustomSize {
		// Stale button from an old message
		return c.Respond(&tele.CallbackResponse{Text: "Phiên đã kết thúc, hãy bắt đầu lại"})
	}

	if data == "size_custom" {
		h.SetState(userID, &domain.StateData{
			State:     domain.StateWaitingCustomSize,
			Direction: state.Direction,
		})
		if err := c.Respond(); err != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
		}
		return c.Send("Nhập số từ bạn muốn luyện:")
	}

	size, err := strconv.Atoi(strings.TrimPrefix(data, "size_"))
	if err != nil {
		h.logger.Warn("Invalid size callback data", zap.String("data", data))
		return c.Respond()
	}

	return h.startQuiz(c, userID, state.Direction, size)
}

// handleCustomSize parses a typed quiz size
func (h *Handler) handleCustomSize(c tele.Context, state *domain.StateData, text string) error {
	size, err := strconv.Atoi(text)
	if err != nil {
		return c.Send("Mình cần một con số, ví dụ: 15")
	}
	if size < 1 {
		size = 1
	}
	return h.startQuiz(c, c.Sender().ID, state.Direction, size)
}

// startQuiz builds a session from the user's unlearned words and sends the
// first question. An empty pool degrades to an immediate empty summary.
func (h *Handler) startQuiz(c tele.Context, userID int64, direction quiz.Direction, size int) error {
	pool, err := h.progress.UnlearnedWords(userID, h.words)
	if err != nil {
		h.logger.Error("Failed to load unlearned words", zap.Error(err))
		h.ResetState(userID)
		return c.Send("Đã có lỗi xảy ra. Vui lòng thử lại sau.")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := quiz.NewSession(userID, direction, size, pool, rng, h.progress)

	h.logger.Info("Quiz session started",
		zap.Int64("user_id", userID),
		zap.Stringer("direction", direction),
		zap.Int("requested_size", size),
		zap.Int("session_size", session.Size()),
	)

	if session.Done() {
		// Nothing left to learn
		h.ResetState(userID)
		return c.Send(
			"🎉 Bạn đã học hết tất cả các từ!\n\nKết quả: 0/0",
			mainMenuMarkup(),
		)
	}

	h.SetState(userID, &domain.StateData{
		State:     domain.StateInQuiz,
		Direction: direction,
		Session:   session,
	})

	return h.sendQuestion(c, session)
}

// sendQuestion sends the current prompt with the in-quiz keyboard
func (h *Handler) sendQuestion(c tele.Context, session *quiz.Session) error {
	prompt, ok := session.Prompt()
	if !ok {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnKnow),
		markup.Row(btnReveal, btnSkip),
		markup.Row(btnStop),
	)

	text := fmt.Sprintf(
		"Câu %d/%d\n\nDịch từ: *%s*",
		session.Cursor()+1, session.Size(), prompt,
	)
	return c.Send(text, markup, tele.ModeMarkdown)
}

// handleAnswer checks a typed answer against the current word
func (h *Handler) handleAnswer(c tele.Context, state *domain.StateData, text string) error {
	session := state.Session
	if session == nil || session.Done() {
		h.ResetState(c.Sender().ID)
		return c.Send("Phiên luyện tập đã kết thúc. /start")
	}

	correct, err := session.CheckAnswer(text)
	if err != nil {
		// In-memory state is already updated; persistence is best-effort
		h.logger.Warn("Failed to persist learned word", zap.Error(err))
	}

	if !correct {
		return c.Send("❌ Chưa đúng, thử lại nhé!")
	}

	if err := c.Send("✅ Chính xác!"); err != nil {
		return err
	}
	return h.advanceQuiz(c, session)
}

// handleKnow marks the current word learned without an answer
func (h *Handler) handleKnow(c tele.Context) error {
	session, err := h.activeSession(c)
	if session == nil {
		return err
	}

	if err := session.MarkCurrentLearned(); err != nil {
		h.logger.Warn("Failed to persist learned word", zap.Error(err))
	}
	if err := c.Respond(&tele.CallbackResponse{Text: "Đã ghi nhớ ✅"}); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.advanceQuiz(c, session)
}

// handleReveal shows the acceptable answers without advancing
func (h *Handler) handleReveal(c tele.Context) error {
	session, err := h.activeSession(c)
	if session == nil {
		return err
	}

	answers := session.AcceptableAnswers()
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send("👁 Đáp án: " + strings.Join(answers, ", "))
}

// handleSkip advances past the current word, leaving it open
func (h *Handler) handleSkip(c tele.Context) error {
	session, err := h.activeSession(c)
	if session == nil {
		return err
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.advanceQuiz(c, session)
}

// handleStop aborts the session. Already-confirmed words stay persisted.
func (h *Handler) handleStop(c tele.Context) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	h.logger.Info("Quiz session aborted", zap.Int64("user_id", userID))

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return c.Send("Đã dừng luyện tập.\n\n🏠 Menu chính:", mainMenuMarkup())
}

// advanceQuiz moves to the next question or finishes the session
func (h *Handler) advanceQuiz(c tele.Context, session *quiz.Session) error {
	if session.Advance() {
		return h.sendQuestion(c, session)
	}
	return h.finishQuiz(c, session)
}

// finishQuiz sends the session summary and resets the user's state
func (h *Handler) finishQuiz(c tele.Context, session *quiz.Session) error {
	userID := c.Sender().ID
	h.ResetState(userID)

	sum := session.Summary()

	h.logger.Info("Quiz session finished",
		zap.Int64("user_id", userID),
		zap.Int("correct", len(sum.Correct)),
		zap.Int("open", len(sum.Open)),
	)

	var b strings.Builder
	fmt.Fprintf(&b, "🏁 Kết thúc!\n\nKết quả: %d/%d\n", len(sum.Correct), session.Size())

	if len(sum.Correct) > 0 {
		b.WriteString("\n✅ Đã thuộc:\n")
		for _, e := range sum.Correct {
			fmt.Fprintf(&b, "• %s — %s\n", e.German, e.Vietnamese)
		}
	}
	if len(sum.Open) > 0 {
		b.WriteString("\n📝 Cần ôn lại:\n")
		for _, e := range sum.Open {
			fmt.Fprintf(&b, "• %s — %s\n", e.German, e.Vietnamese)
		}
	}

	return c.Send(b.String(), mainMenuMarkup())
}

// activeSession returns the user's running session, or nil after notifying
// the user that there is none.
func (h *Handler) activeSession(c tele.Context) (*quiz.Session, error) {
	state := h.GetState(c.Sender().ID)
	if state.State != domain.StateInQuiz || state.Session == nil {
		return nil, c.Respond(&tele.CallbackResponse{Text: "Không có phiên luyện tập nào đang chạy"})
	}
	return state.Session, nil
}
