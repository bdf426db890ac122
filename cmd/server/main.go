package main

import (
	"net/http"

	"go.uber.org/zap"

	"DrivenPass/internal/config"
	"DrivenPass/internal/crypto"
	"DrivenPass/internal/handlers"
	"DrivenPass/internal/middleware"
	"DrivenPass/internal/repo"
	"DrivenPass/internal/service"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// без секретов сервер не стартует: молчаливая деградация до plaintext недопустима
	if err := cfg.ValidateServer(); err != nil {
		sugar.Fatalw("invalid configuration", "error", err)
	}

	cipher, err := crypto.NewCipher(cfg.CryptSecret)
	if err != nil {
		sugar.Fatalw("failed to initialize cipher", "error", err)
	}
	hasher := crypto.NewHasher(cfg.HashCost)

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	credentialRepo := repo.NewCredentialRepository(gormDB)
	cardRepo := repo.NewCardRepository(gormDB)
	noteRepo := repo.NewNoteRepository(gormDB)
	eraseRepo := repo.NewEraseRepository(gormDB)

	userService := service.NewUserService(userRepo, hasher)
	credentialService := service.NewCredentialService(credentialRepo, cipher)
	cardService := service.NewCardService(cardRepo, cipher)
	noteService := service.NewNoteService(noteRepo)
	eraseService := service.NewEraseService(userService, eraseRepo)

	h := handlers.NewHandler(userService, credentialService, cardService, noteService, eraseService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
