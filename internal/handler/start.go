package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	// Ensure user exists in database
	if err := h.authService.EnsureUserExists(userID); err != nil {
		h.logger.Error("Failed to ensure user exists", zap.Error(err))
		return c.Send("Đã có lỗi xảy ra. Vui lòng thử lại sau.")
	}

	// Check if authorized
	authorized, err := h.authService.IsAuthorized(userID)
	if err != nil {
		h.logger.Error("Failed to check authorization", zap.Error(err))
		return c.Send("Đã có lỗi xảy ra. Vui lòng thử lại sau.")
	}

	if !authorized {
		// Request password
		h.ResetState(userID)
		return c.Send("Xin chào! Bot này cần mật khẩu. Hãy nhập mật khẩu để tiếp tục:")
	}

	// Show main menu
	h.ResetState(userID)
	return c.Send(
		"🏠 Menu chính\n\nHọc từ vựng tiếng Đức 🇩🇪 — tiếng Việt 🇻🇳\n\nChọn một mục:",
		mainMenuMarkup(),
	)
}
