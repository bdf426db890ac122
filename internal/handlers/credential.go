package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DrivenPass/internal/service"
)

// CredentialHandler — CRUD логинов/паролей владельца.
type CredentialHandler struct {
	Service *service.CredentialService
	Logger  *zap.SugaredLogger
}

// NewCredentialHandler создаёт хендлер credentials
func NewCredentialHandler(s *service.CredentialService, logger *zap.SugaredLogger) *CredentialHandler {
	return &CredentialHandler{Service: s, Logger: logger}
}

// CredentialRequest — тело запроса создания/обновления.
type CredentialRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (req *CredentialRequest) validate() string {
	if req.Title == "" || req.URL == "" || req.Username == "" || req.Password == "" {
		return "title, url, username and password are required"
	}
	return ""
}

func (h *CredentialHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	created, err := h.Service.Create(r.Context(), service.CredentialInput(req), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CredentialHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	list, err := h.Service.ListAll(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CredentialHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	got, err := h.Service.GetOne(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, got)
}

func (h *CredentialHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if msg := req.validate(); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), service.CredentialInput(req), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CredentialHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	if err := h.Service.Remove(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
