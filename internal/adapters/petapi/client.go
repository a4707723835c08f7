// Package petapi es el cliente tipado del API HTTP de mascotas.
package petapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"virtual-pet/internal/platform/httpclient"
)

var ErrNotFound = errors.New("pet not found")

type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    int       `json:"weight"`
	Happiness int       `json:"happiness"`
	Energy    int       `json:"energy"`
	CreatedAt time.Time `json:"created_at"`
}

type Effects struct {
	Kind      string `json:"kind"`
	Comment   string `json:"comment"`
	Animation string `json:"animation"`
	Image     string `json:"image"`
	Overlay   bool   `json:"overlay"`
	Sound     string `json:"sound"`
}

type ActionResult struct {
	Pet     Pet     `json:"pet"`
	Action  string  `json:"action"`
	Kind    string  `json:"kind"`
	Clamped bool    `json:"clamped"`
	Effects Effects `json:"effects"`
}

// Deltas se mandan tal cual: el servidor coerciona lo que no sea número a 0.
type Deltas map[string]any

type Client struct {
	http *httpclient.Client
}

func New(hc *httpclient.Client) *Client {
	return &Client{http: hc}
}

func (c *Client) Create(ctx context.Context, name string) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets", map[string]string{"name": name}, &out); err != nil {
		return Pet{}, fmt.Errorf("create pet: %w", err)
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, petID string) (Pet, error) {
	var out Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets/"+url.PathEscape(petID), nil, &out); err != nil {
		return Pet{}, mapErr("get pet", err)
	}
	return out, nil
}

func (c *Client) List(ctx context.Context) ([]Pet, error) {
	var out []Pet
	if err := c.http.DoJSON(ctx, http.MethodGet, "/pets", nil, &out); err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return out, nil
}

// Act aplica action con los deltas dados. Deltas nil equivale a todo 0.
func (c *Client) Act(ctx context.Context, petID, action string, d Deltas) (ActionResult, error) {
	body := map[string]any{"action": action}
	for k, v := range d {
		if k == "action" {
			continue
		}
		body[k] = v
	}

	var out ActionResult
	if err := c.http.DoJSON(ctx, http.MethodPost, "/pets/"+url.PathEscape(petID)+"/actions", body, &out); err != nil {
		return ActionResult{}, mapErr("act", err)
	}
	return out, nil
}

func mapErr(op string, err error) error {
	if httpclient.StatusOf(err) == http.StatusNotFound {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
