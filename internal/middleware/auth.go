package middleware

import (
	"wortschatz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware gates inline-button callbacks behind the password login.
// Commands and plain text pass through: /start greets new users and text is
// how the password itself arrives.
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Callback() == nil {
				return next(c)
			}

			userID := c.Sender().ID

			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Respond(&tele.CallbackResponse{Text: "Đã có lỗi xảy ra"})
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Respond(&tele.CallbackResponse{Text: "Đã có lỗi xảy ra"})
			}

			if !authorized {
				return c.Send("Bot này cần mật khẩu. Hãy nhập mật khẩu để tiếp tục:")
			}

			return next(c)
		}
	}
}
