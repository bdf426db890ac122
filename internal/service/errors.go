package service

import "errors"

// Ошибки бизнес-логики. Хендлеры переводят их в HTTP-статусы через errors.Is.
var (
	// ErrEmailTaken — email уже зарегистрирован (конфликт).
	ErrEmailTaken = errors.New("email already registered")

	// ErrTitleTaken — у владельца уже есть запись с таким title (конфликт).
	ErrTitleTaken = errors.New("title already exists")

	// ErrInvalidCredentials — единый ответ на «нет такого пользователя» и
	// «неверный пароль». Текст одинаковый намеренно: по ответу нельзя
	// перебором выяснить, какие email зарегистрированы.
	ErrInvalidCredentials = errors.New("email or password not valid")

	// ErrNotFound — записи с таким id не существует.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden — запись существует, но принадлежит другому пользователю.
	// Отличается от ErrNotFound сознательно: факт существования не скрываем,
	// содержимое — скрываем.
	ErrForbidden = errors.New("record belongs to another user")
)
