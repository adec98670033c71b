package handlers

import "net/http"

// Logger логгер обработчиков
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// HandleError отвечает на ошибку сервиса и пишет ее в лог:
// отказы клиенту как Warn, сбои сервера как Error.
func HandleError(w http.ResponseWriter, logger Logger, route string, err error) {
	status := RespondDomainError(w, err)
	if status >= http.StatusInternalServerError {
		logger.Error("%s - failed with status %d: %v", route, status, err)
		return
	}
	logger.Warn("%s - rejected with status %d: %v", route, status, err)
}
