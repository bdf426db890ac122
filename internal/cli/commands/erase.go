package commands

import (
	"DrivenPass/internal/config"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"DrivenPass/internal/cli/auth"
)

type eraseCmd struct{}

func (eraseCmd) Name() string { return "erase" }
func (eraseCmd) Description() string {
	return "Delete the account with all stored data (irreversible)"
}
func (eraseCmd) Usage() string { return "erase <password>" }

func (eraseCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodDelete, "/erase", map[string]string{"password": args[0]})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		// токен валиден, но пароль не совпал
		return errors.New("email or password not valid")
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	// локальная сессия больше не действительна
	_ = os.Remove(cfg.TokenFile)
	if p, err := auth.LoadLastEmail(); err == nil && p != "" {
		fmt.Fprintf(Out, "Account %s erased\n", p)
	} else {
		fmt.Fprintln(Out, "Account erased")
	}
	return nil
}

func init() { RegisterCmd(eraseCmd{}) }
