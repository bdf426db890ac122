package commands

import (
	"DrivenPass/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type noteView struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type notesCmd struct{}

func (notesCmd) Name() string        { return "notes" }
func (notesCmd) Description() string { return "List stored notes" }
func (notesCmd) Usage() string       { return "notes" }

func (notesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/notes", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var list []noteView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No notes stored")
		return nil
	}
	for _, n := range list {
		fmt.Fprintf(Out, "- %s  title=%s\n", n.ID, n.Title)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type noteAddCmd struct{}

func (noteAddCmd) Name() string        { return "note-add" }
func (noteAddCmd) Description() string { return "Store a text note" }
func (noteAddCmd) Usage() string       { return "note-add <title> <text...>" }

func (noteAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	payload := map[string]string{
		"title": args[0],
		"text":  strings.Join(args[1:], " "),
	}
	resp, body, err := callVault(ctx, cfg, http.MethodPost, "/notes", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return vaultError(resp, body)
	}
	var created noteView
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", created.ID)
	fmt.Fprintf(Out, "  title: %s\n", created.Title)
	return nil
}

type noteGetCmd struct{}

func (noteGetCmd) Name() string        { return "note-get" }
func (noteGetCmd) Description() string { return "Show one note" }
func (noteGetCmd) Usage() string       { return "note-get <id>" }

func (noteGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/notes/"+args[0], nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var n noteView
	if err := json.Unmarshal(body, &n); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "id:    %s\n", n.ID)
	fmt.Fprintf(Out, "title: %s\n", n.Title)
	fmt.Fprintf(Out, "text:  %s\n", n.Text)
	return nil
}

type noteRmCmd struct{}

func (noteRmCmd) Name() string        { return "note-rm" }
func (noteRmCmd) Description() string { return "Delete a note" }
func (noteRmCmd) Usage() string       { return "note-rm <id>" }

func (noteRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodDelete, "/notes/"+args[0], nil)
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
	RegisterCmd(notesCmd{})
	RegisterCmd(noteAddCmd{})
	RegisterCmd(noteGetCmd{})
	RegisterCmd(noteRmCmd{})
}
