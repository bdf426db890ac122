package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"DrivenPass/internal/middleware"
	"DrivenPass/internal/service"
)

// writeJSON сериализует ответ и выставляет статус.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError переводит ошибку бизнес-логики в HTTP-статус.
// Текст известных ошибок отдаётся как есть; всё прочее — обезличенный 500.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken), errors.Is(err, service.ErrTitleTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, service.ErrNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
	default:
		logger.Errorw("internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// requireUser достаёт id пользователя из контекста; без валидного токена — 401.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
