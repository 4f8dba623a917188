package responses

import (
	"net/http"

	"github.com/NikolaTosic-sudo/chess-board/containers/errorPage"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// SetLogger replaces the logger used by the helpers in this package.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Logger returns the current logger.
func Logger() *zap.Logger {
	return logger
}

// helpers report the line that called them, not their own.
func callerLogger() *zap.Logger {
	return logger.WithOptions(zap.AddCallerSkip(1))
}

func RespondWithAnError(w http.ResponseWriter, code int, message string, err error) {
	callerLogger().Error(message, zap.Int("status", code), zap.Error(err))
	w.WriteHeader(code)
}

func RespondWithAnErrorPage(w http.ResponseWriter, r *http.Request, code int, message string) {
	callerLogger().Warn(message, zap.Int("status", code), zap.String("path", r.URL.Path))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	err := errorPage.Error(code, message).Render(r.Context(), w)
	if err != nil {
		callerLogger().Error("couldn't render error page", zap.Error(err))
	}
}

func LogError(message string, err error) {
	callerLogger().Error(message, zap.Error(err))
}
