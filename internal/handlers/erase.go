package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"DrivenPass/internal/middleware"
	"DrivenPass/internal/service"
)

// EraseHandler — удаление учётной записи со всеми данными.
type EraseHandler struct {
	Service *service.EraseService
	Logger  *zap.SugaredLogger
}

// NewEraseHandler создаёт хендлер erase
func NewEraseHandler(s *service.EraseService, logger *zap.SugaredLogger) *EraseHandler {
	return &EraseHandler{Service: s, Logger: logger}
}

// EraseRequest — подтверждение паролем. Токен сам по себе недостаточен.
type EraseRequest struct {
	Password string `json:"password"`
}

func (h *EraseHandler) Erase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req EraseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "password is required", http.StatusBadRequest)
		return
	}

	if err := h.Service.Erase(r.Context(), userID, email, req.Password); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}

	h.Logger.Infow("account erased", "user_id", userID)
	w.WriteHeader(http.StatusOK)
}
