package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"wortschatz/internal/quiz"
	"wortschatz/internal/vocab"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// editOrSend edits the message behind a callback in place, falling back to a
// new message when editing fails. Plain messages are always sent fresh.
func (h *Handler) editOrSend(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	if c.Callback() == nil {
		return c.Send(text, markup)
	}

	err := c.Edit(text, markup)
	if err == nil {
		return c.Respond()
	}

	// Another callback may have already edited this message
	if strings.Contains(err.Error(), "message is not modified") {
		return c.Respond()
	}

	h.logger.Warn("Failed to edit message, sending new",
		zap.Error(err),
		zap.Int64("user_id", c.Sender().ID),
	)
	if ackErr := c.Respond(); ackErr != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
	}
	return c.Send(text, markup)
}

// handleCallback handles ALL callback queries not bound to a static button
func (h *Handler) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.logger.Warn("handleCallback: callback is nil")
		return nil
	}

	// Clean data from all non-printable characters
	data := cleanCallbackData(callback.Data)
	unique := callback.Unique
	if unique == "" {
		unique = data
	}

	h.logger.Debug("handleCallback: Processing callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
		zap.Int64("user_id", c.Sender().ID),
	)

	switch unique {
	case "quiz":
		return h.handleQuizMenu(c)
	case "browse":
		return h.handleBrowse(c)
	case "stats":
		return h.handleStats(c)
	case "reset":
		return h.handleReset(c)
	case "reset_confirm":
		return h.handleResetConfirm(c)
	case "main_menu":
		return h.handleStart(c)
	case "know":
		return h.handleKnow(c)
	case "reveal":
		return h.handleReveal(c)
	case "skip":
		return h.handleSkip(c)
	case "stop":
		return h.handleStop(c)
	case "dir_de_vi":
		return h.handleDirection(c, quiz.GermanToVietnamese)
	case "dir_vi_de":
		return h.handleDirection(c, quiz.VietnameseToGerman)
	}

	// Dynamic buttons carry their payload in the unique suffix
	switch {
	case strings.HasPrefix(unique, "size_"):
		return h.handleSizeChoice(c, unique)
	case strings.HasPrefix(unique, "cat_"):
		return h.handleCategorySelection(c, unique)
	case strings.HasPrefix(unique, "toggle_"):
		return h.handleToggleWord(c, unique)
	}

	h.logger.Warn("Unhandled callback",
		zap.String("data", data),
		zap.String("unique", callback.Unique),
	)
	return c.Respond()
}

// handleBrowse shows the category list
func (h *Handler) handleBrowse(c tele.Context) error {
	h.ResetState(c.Sender().ID)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for _, cat := range vocab.Categories {
		btn := markup.Data(
			fmt.Sprintf("%s (%d)", cat, len(vocab.ByCategory(cat))),
			fmt.Sprintf("cat_%d", int(cat)),
		)
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnMainMenu))
	markup.Inline(rows...)

	return h.editOrSend(c, "📚 Chọn chủ đề:", markup)
}

// handleCategorySelection shows the words of one category with their
// learned state
func (h *Handler) handleCategorySelection(c tele.Context, data string) error {
	idx, err := strconv.Atoi(strings.TrimPrefix(data, "cat_"))
	if err != nil || idx < 0 || idx >= len(vocab.Categories) {
		h.logger.Warn("Invalid category callback data", zap.String("data", data))
		return c.Respond()
	}

	return h.renderCategory(c, vocab.Category(idx))
}

// handleToggleWord flips the learned state of one word and re-renders its
// category
func (h *Handler) handleToggleWord(c tele.Context, data string) error {
	userID := c.Sender().ID

	idx, err := strconv.Atoi(strings.TrimPrefix(data, "toggle_"))
	if err != nil || idx < 0 || idx >= len(h.words) {
		h.logger.Warn("Invalid toggle callback data", zap.String("data", data))
		return c.Respond()
	}

	entry := h.words[idx]
	learned, err := h.progress.ToggleLearned(userID, entry.ID())
	if err != nil {
		h.logger.Error("Failed to toggle learned state",
			zap.Int64("user_id", userID),
			zap.String("word_id", entry.ID()),
			zap.Error(err),
		)
	}

	h.logger.Info("Word toggled",
		zap.Int64("user_id", userID),
		zap.String("word_id", entry.ID()),
		zap.Bool("learned", learned),
	)

	return h.renderCategory(c, entry.Category)
}

// renderCategory draws one category as toggle buttons
func (h *Handler) renderCategory(c tele.Context, cat vocab.Category) error {
	userID := c.Sender().ID

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{}
	for i, e := range h.words {
		if e.Category != cat {
			continue
		}

		learned, err := h.progress.IsLearned(userID, e.ID())
		if err != nil {
			h.logger.Error("Failed to check learned state", zap.Error(err))
			return c.Respond(&tele.CallbackResponse{Text: "Lỗi khi tải dữ liệu"})
		}

		mark := "◻️"
		if learned {
			mark = "✅"
		}
		btn := markup.Data(
			fmt.Sprintf("%s %s — %s", mark, e.German, e.Vietnamese),
			fmt.Sprintf("toggle_%d", i),
		)
		rows = append(rows, markup.Row(btn))
	}
	rows = append(rows, markup.Row(btnBrowse, btnMainMenu))
	markup.Inline(rows...)

	text := fmt.Sprintf("📚 %s\n\nChạm vào một từ để đánh dấu đã thuộc:", cat)
	return h.editOrSend(c, text, markup)
}

// handleStats shows overall and per-category counts
func (h *Handler) handleStats(c tele.Context) error {
	userID := c.Sender().ID

	overview, err := h.stats.Overview(userID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Lỗi khi tải dữ liệu"})
	}

	perCat, err := h.stats.PerCategory(userID)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Lỗi khi tải dữ liệu"})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Thống kê\n\nĐã thuộc: %d/%d (còn lại %d)\n\n",
		overview.Learned, overview.Total, overview.Remaining)
	for _, cs := range perCat {
		fmt.Fprintf(&b, "%s: %d/%d\n", cs.Category, cs.Learned, cs.Total)
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	return h.editOrSend(c, b.String(), markup)
}

// handleReset asks for confirmation before wiping progress
func (h *Handler) handleReset(c tele.Context) error {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnResetConfirm),
		markup.Row(btnMainMenu),
	)

	return h.editOrSend(c, "🗑 Xóa toàn bộ tiến độ học? Không thể hoàn tác.", markup)
}

// handleResetConfirm wipes the user's learned set
func (h *Handler) handleResetConfirm(c tele.Context) error {
	userID := c.Sender().ID

	if err := h.progress.ResetAll(userID); err != nil {
		h.logger.Error("Failed to reset progress",
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return c.Respond(&tele.CallbackResponse{Text: "Lỗi khi xóa tiến độ"})
	}

	h.logger.Info("Progress reset", zap.Int64("user_id", userID))

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnMainMenu))

	return h.editOrSend(c, "✅ Đã xóa tiến độ học.", markup)
}
