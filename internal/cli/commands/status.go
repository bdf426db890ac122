package commands

import (
	"DrivenPass/internal/config"
	"context"
	"fmt"
	"net/http"
	"strings"

	"DrivenPass/internal/cli/api"
	"DrivenPass/internal/cli/auth"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Check server health and local session" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/health"
	resp, body, err := api.DoJSON(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	fmt.Fprintf(Out, "Server: %s\n", strings.TrimSpace(string(body)))

	if _, err := auth.LoadToken(cfg.TokenFile); err != nil {
		fmt.Fprintln(Out, "Session: not logged in")
		return nil
	}
	if email, err := auth.LoadLastEmail(); err == nil {
		fmt.Fprintf(Out, "Session: token stored for %s\n", email)
	} else {
		fmt.Fprintln(Out, "Session: token stored")
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
