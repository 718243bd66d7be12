package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/transcrypt/errors"
)

// RequireSessionID rejects routes whose :id is not a session UUID before any store lookup
func RequireSessionID(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Param("id")
			if _, err := uuid.Parse(id); err != nil {
				return HandleError(logger, c, errors.ErrSessionNotFound(id).WithRaw(err))
			}
			return next(c)
		}
	}
}
