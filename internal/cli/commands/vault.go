package commands

import (
	"DrivenPass/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"DrivenPass/internal/cli/api"
	"DrivenPass/internal/cli/auth"
)

// ErrNotLoggedIn возвращается, когда локального токена нет или сервер его отверг.
var ErrNotLoggedIn = errors.New("not logged in, run `dpcli login` first")

// callVault выполняет запрос к защищённому маршруту с сохранённым токеном.
func callVault(ctx context.Context, cfg *config.Config, method, path string, payload any) (*http.Response, []byte, error) {
	token, err := auth.LoadToken(cfg.TokenFile)
	if err != nil {
		return nil, nil, ErrNotLoggedIn
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + path
	return api.DoJSON(ctx, method, endpoint, payload, token)
}

// vaultError переводит неуспешный ответ сервера в ошибку команды.
func vaultError(resp *http.Response, body []byte) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrNotLoggedIn
	case http.StatusNotFound:
		return errors.New("record not found")
	case http.StatusForbidden:
		return errors.New("record belongs to another account")
	case http.StatusConflict:
		return errors.New("title already in use")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}
