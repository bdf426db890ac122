package repo

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"DrivenPass/internal/model"
)

// InitDB открывает подключение к Postgres и прогоняет миграции моделей.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("repo: open db: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет схему для всех моделей приложения.
// Составные уникальные индексы (title, user_id) — страховка на уровне БД
// для проверок уникальности, которые сервисы делают до вставки.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Credential{},
		&model.Card{},
		&model.Note{},
	); err != nil {
		return fmt.Errorf("repo: automigrate: %w", err)
	}
	return nil
}
