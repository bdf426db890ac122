package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DrivenPass/internal/service"
)

// NoteHandler — CRUD заметок владельца.
type NoteHandler struct {
	Service *service.NoteService
	Logger  *zap.SugaredLogger
}

// NewNoteHandler создаёт хендлер notes
func NewNoteHandler(s *service.NoteService, logger *zap.SugaredLogger) *NoteHandler {
	return &NoteHandler{Service: s, Logger: logger}
}

// NoteRequest — тело запроса создания/обновления.
type NoteRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Text == "" {
		http.Error(w, "title and text are required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.Create(r.Context(), service.NoteInput(req), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *NoteHandler) GetOne(w http.ResponseWriter, r *http.Request) {
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

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.Text == "" {
		http.Error(w, "title and text are required", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), service.NoteInput(req), userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *NoteHandler) Remove(w http.ResponseWriter, r *http.Request) {
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
