package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DrivenPass/internal/service"
)

// CardHandler — CRUD банковских карт владельца.
type CardHandler struct {
	Service *service.CardService
	Logger  *zap.SugaredLogger
}

// NewCardHandler создаёт хендлер cards
func NewCardHandler(s *service.CardService, logger *zap.SugaredLogger) *CardHandler {
	return &CardHandler{Service: s, Logger: logger}
}

// CardRequest — тело запроса создания/обновления.
// Expiration принимается строкой YYYY-MM-DD.
type CardRequest struct {
	Title      string `json:"title"`
	Name       string `json:"name"`
	Number     string `json:"number"`
	CVC        string `json:"cvc"`
	Expiration string `json:"expiration"`
	Password   string `json:"password"`
	IsCredit   bool   `json:"isCredit"`
	IsDebit    bool   `json:"isDebit"`
}

// toInput валидирует поля и разбирает дату истечения.
func (req *CardRequest) toInput() (service.CardInput, string) {
	if req.Title == "" || req.Name == "" || req.Number == "" || req.CVC == "" || req.Password == "" {
		return service.CardInput{}, "title, name, number, cvc and password are required"
	}
	exp, err := time.Parse("2006-01-02", req.Expiration)
	if err != nil {
		return service.CardInput{}, "expiration must be a date in YYYY-MM-DD format"
	}
	return service.CardInput{
		Title:      req.Title,
		Name:       req.Name,
		Number:     req.Number,
		CVC:        req.CVC,
		Expiration: exp,
		Password:   req.Password,
		IsCredit:   req.IsCredit,
		IsDebit:    req.IsDebit,
	}, ""
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	in, msg := req.toInput()
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	created, err := h.Service.Create(r.Context(), in, userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *CardHandler) GetOne(w http.ResponseWriter, r *http.Request) {
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

func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	in, msg := req.toInput()
	if msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	updated, err := h.Service.Update(r.Context(), chi.URLParam(r, "id"), in, userID)
	if err != nil {
		writeServiceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *CardHandler) Remove(w http.ResponseWriter, r *http.Request) {
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
