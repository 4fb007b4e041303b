package middleware

import (
	"vocabquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware lets only authorized players reach the quiz handlers
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return nil
			}
			userID := c.Sender().ID

			// Ensure user exists
			if err := authService.EnsureUserExists(userID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			if !authorized {
				logger.Debug("Unauthorized quiz access", zap.Int64("user_id", userID))
				if c.Callback() != nil {
					return c.Respond(&tele.CallbackResponse{
						Text:      "Send the password first",
						ShowAlert: true,
					})
				}
				return c.Send("🔒 Send the password to play.")
			}

			return next(c)
		}
	}
}
