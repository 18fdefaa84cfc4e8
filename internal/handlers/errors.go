package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// statusFor maps service errors to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrNoRegisterFound):
		return http.StatusNotFound, apperrors.ErrNoRegisterFound.Error()
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, "You do not have permission to access this resource"
	case errors.Is(err, apperrors.ErrBadRange):
		return http.StatusBadRequest, apperrors.ErrBadRange.Error()
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrInactiveMember):
		return http.StatusForbidden, apperrors.ErrInactiveMember.Error()
	case errors.Is(err, apperrors.ErrRefreshTokenExpired):
		return http.StatusUnauthorized, apperrors.ErrRefreshTokenExpired.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error()
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code != 0 {
		return appErr.Code, appErr.Message
	}
	return http.StatusInternalServerError, ""
}

// respondError writes the JSON error for err. fallback is used for unexpected failures.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(fallback, slog.String("error", err.Error()))
		if msg == "" {
			msg = fallback
		}
	} else {
		logger.Warn("Request rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, ErrorResponse{Error: msg})
}
