package commands

import (
	"DrivenPass/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type cardView struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Name       string    `json:"name"`
	Number     string    `json:"number"`
	CVC        string    `json:"cvc"`
	Expiration time.Time `json:"expiration"`
	Password   string    `json:"password"`
	IsCredit   bool      `json:"isCredit"`
	IsDebit    bool      `json:"isDebit"`
}

type cardsCmd struct{}

func (cardsCmd) Name() string        { return "cards" }
func (cardsCmd) Description() string { return "List stored cards" }
func (cardsCmd) Usage() string       { return "cards" }

func (cardsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/cards", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var list []cardView
	if err := json.Unmarshal(body, &list); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "No cards stored")
		return nil
	}
	for _, c := range list {
		fmt.Fprintf(Out, "- %s  title=%s  number=%s  expires=%s\n", c.ID, c.Title, c.Number, c.Expiration.Format("2006-01-02"))
	}
	fmt.Fprintf(Out, "Total: %d\n", len(list))
	return nil
}

type cardAddCmd struct{}

func (cardAddCmd) Name() string        { return "card-add" }
func (cardAddCmd) Description() string { return "Store a payment card" }
func (cardAddCmd) Usage() string {
	return "card-add <title> <holder> <number> <cvc> <YYYY-MM-DD> <password> [credit|debit]"
}

func (cardAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 6 || len(args) > 7 {
		return ErrUsage
	}
	payload := map[string]any{
		"title":      args[0],
		"name":       args[1],
		"number":     args[2],
		"cvc":        args[3],
		"expiration": args[4],
		"password":   args[5],
	}
	if len(args) == 7 {
		switch args[6] {
		case "credit":
			payload["isCredit"] = true
		case "debit":
			payload["isDebit"] = true
		default:
			return ErrUsage
		}
	}
	resp, body, err := callVault(ctx, cfg, http.MethodPost, "/cards", payload)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return vaultError(resp, body)
	}
	var created cardView
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintln(Out, "Created:")
	fmt.Fprintf(Out, "  id:    %s\n", created.ID)
	fmt.Fprintf(Out, "  title: %s\n", created.Title)
	return nil
}

type cardGetCmd struct{}

func (cardGetCmd) Name() string        { return "card-get" }
func (cardGetCmd) Description() string { return "Show one card with CVC and password" }
func (cardGetCmd) Usage() string       { return "card-get <id>" }

func (cardGetCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodGet, "/cards/"+args[0], nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return vaultError(resp, body)
	}
	var c cardView
	if err := json.Unmarshal(body, &c); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	kind := "unspecified"
	if c.IsCredit {
		kind = "credit"
	} else if c.IsDebit {
		kind = "debit"
	}
	fmt.Fprintf(Out, "id:       %s\n", c.ID)
	fmt.Fprintf(Out, "title:    %s\n", c.Title)
	fmt.Fprintf(Out, "holder:   %s\n", c.Name)
	fmt.Fprintf(Out, "number:   %s\n", c.Number)
	fmt.Fprintf(Out, "cvc:      %s\n", c.CVC)
	fmt.Fprintf(Out, "expires:  %s\n", c.Expiration.Format("2006-01-02"))
	fmt.Fprintf(Out, "password: %s\n", c.Password)
	fmt.Fprintf(Out, "kind:     %s\n", kind)
	return nil
}

type cardRmCmd struct{}

func (cardRmCmd) Name() string        { return "card-rm" }
func (cardRmCmd) Description() string { return "Delete a card" }
func (cardRmCmd) Usage() string       { return "card-rm <id>" }

func (cardRmCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := callVault(ctx, cfg, http.MethodDelete, "/cards/"+args[0], nil)
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
	RegisterCmd(cardsCmd{})
	RegisterCmd(cardAddCmd{})
	RegisterCmd(cardGetCmd{})
	RegisterCmd(cardRmCmd{})
}
