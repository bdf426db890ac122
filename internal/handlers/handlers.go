package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"DrivenPass/internal/config"
	"DrivenPass/internal/middleware"
	"DrivenPass/internal/service"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	credentialService *service.CredentialService,
	cardService *service.CardService,
	noteService *service.NoteService,
	eraseService *service.EraseService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	credentialHandler := NewCredentialHandler(credentialService, logger)
	cardHandler := NewCardHandler(cardService, logger)
	noteHandler := NewNoteHandler(noteService, logger)
	eraseHandler := NewEraseHandler(eraseService, logger)

	// Liveness
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("I'm okay!"))
	})

	// User routes
	r.Post("/users/sign-up", userHandler.SignUp)
	r.Post("/users/sign-in", userHandler.SignIn)

	// Vault routes (bearer-токен обязателен, проверяется в хендлерах)
	r.Route("/credentials", func(r chi.Router) {
		r.Post("/", credentialHandler.Create)
		r.Get("/", credentialHandler.List)
		r.Get("/{id}", credentialHandler.GetOne)
		r.Put("/{id}", credentialHandler.Update)
		r.Delete("/{id}", credentialHandler.Remove)
	})
	r.Route("/cards", func(r chi.Router) {
		r.Post("/", cardHandler.Create)
		r.Get("/", cardHandler.List)
		r.Get("/{id}", cardHandler.GetOne)
		r.Put("/{id}", cardHandler.Update)
		r.Delete("/{id}", cardHandler.Remove)
	})
	r.Route("/notes", func(r chi.Router) {
		r.Post("/", noteHandler.Create)
		r.Get("/", noteHandler.List)
		r.Get("/{id}", noteHandler.GetOne)
		r.Put("/{id}", noteHandler.Update)
		r.Delete("/{id}", noteHandler.Remove)
	})

	r.Delete("/erase", eraseHandler.Erase)

	return &Handler{Router: r}
}
