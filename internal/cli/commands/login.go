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

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Sign in and store the bearer token" }
func (loginCmd) Usage() string       { return "login <email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	email := args[0]
	password := args[1]
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/users/sign-in"
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint, SignInRequest{Email: email, Password: password}, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusOK {
		token, err := api.ExtractToken(body)
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		if err := auth.SaveToken(cfg.TokenFile, token); err != nil {
			return fmt.Errorf("saving token: %w", err)
		}
		_ = auth.SaveLastEmail(email)
		fmt.Fprintln(Out, "Logged in successfully")
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("email or password not valid")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(loginCmd{}) }
