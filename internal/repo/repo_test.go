package repo

import (
	"testing"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"DrivenPass/internal/model"
)

// newTestDB инициализирует in-memory SQLite (modernc.org/sqlite) для тестов репозитория
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: "file::memory:?cache=shared"}
	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	// Миграции для всех моделей, используемых в репозиториях
	if err := db.AutoMigrate(&model.User{}, &model.Credential{}, &model.Card{}, &model.Note{}); err != nil {
		t.Fatalf("failed to automigrate: %v", err)
	}
	// cache=shared переживает границы теста — чистим таблицы
	for _, m := range []any{&model.Credential{}, &model.Card{}, &model.Note{}, &model.User{}} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			t.Fatalf("failed to clean table: %v", err)
		}
	}
	return db
}

// mustCreateUser — вспомогательный пользователь для записей хранилищ
func mustCreateUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	u := &model.User{Name: "test", Email: email, Password: "hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}
