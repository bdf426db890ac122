package commands

import (
	"DrivenPass/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// credentialView — запись logins/passwords в ответах сервера.
type credentialView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type credentialsCmd struct{}

func (credentialsCmd) Name() string        { return "credentials" }
func (credentialsCmd) Description() string { return "List stored credentials" }
func (credentialsCmd) Usage() string       { return "credentials" }

func (credentialsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/credentials", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var list []credentialView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No credentials stored")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- %s  title=%s  url=%s  username=%s\n", c.ID, c.Title, c.URL, c.Username)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type credentialAddCmd struct{}

func (credentialAddCmd) Name() string        { return "credential-add" }
func (credentialAddCmd) Description() string { return "Store a login/password for a site" }
func (credentialAddCmd) Usage() string {
	return "credential-add <title> <url> <username> <password>"
}

func (credentialAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 4 {
		return ErrUsage
	}
	payload := map[string]string{
		"title":    args[0],
		"url":      args[1],
		"username": args[2],
		"password": args[3],
	}
	resp, body, err := callVault(ctx, cfg, http.MethodPost, "/credentials", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return vaultError(resp, body)
	}
	var created credentialView
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", created.ID)
	fmt.Fprintf(Out, "  title: %s\n", created.Title)
	return nil
}

type credentialGetCmd struct{}

func (credentialGetCmd) Name() string        { return "credential-get" }
func (credentialGetCmd) Description() string { return "Show one credential with its password" }
func (credentialGetCmd) Usage() string       { return "credential-get <id>" }

func (credentialGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/credentials/"+args[0], nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var c credentialView
	if err := json.Unmarshal(body, &c); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "id:       %s\n", c.ID)
	fmt.Fprintf(Out, "title:    %s\n", c.Title)
	fmt.Fprintf(Out, "url:      %s\n", c.URL)
	fmt.Fprintf(Out, "username: %s\n", c.Username)
	fmt.Fprintf(Out, "password: %s\n", c.Password)
	return nil
}

type credentialRmCmd struct{}

func (credentialRmCmd) Name() string        { return "credential-rm" }
func (credentialRmCmd) Description() string { return "Delete a credential" }
func (credentialRmCmd) Usage() string       { return "credential-rm <id>" }

func (credentialRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodDelete, "/credentials/"+args[0], nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	fmt.Fprintln(Out, "Deleted")
	return nil
}

func init() {
	RegisterCmd(credentialsCmd{})
	RegisterCmd(credentialAddCmd{})
	RegisterCmd(credentialGetCmd{})
	RegisterCmd(credentialRmCmd{})
}
