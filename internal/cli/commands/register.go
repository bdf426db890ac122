package commands

import (
	"DrivenPass/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"DrivenPass/internal/cli/api"
)

type SignUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create an account" }
func (registerCmd) Usage() string       { return "register <name> <email> <password>" }

func (registerCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/users/sign-up"
	req := SignUpRequest{Name: args[0], Email: args[1], Password: args[2]}
	resp, body, err := api.DoJSON(ctx, http.MethodPost, endpoint, req, "")
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusCreated {
		fmt.Fprintln(Out, "Account created, run `dpcli login` to sign in")
		return nil
	}
	if resp.StatusCode == http.StatusConflict {
		return errors.New("email already in use")
	}
	return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
}

func init() { RegisterCmd(registerCmd{}) }
