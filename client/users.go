package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
)

type User struct {
	Type   string `json:"type"`
	ID     string `json:"id"`
	Name   string `json:"name"`
	Login  string `json:"login"`
	Status string `json:"status"`
}

// GetUser fetches GET users/{id}. Non-2xx responses come back as
// *apierr.APIError (wrapped).
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("get user: id is required")
	}
	var u User
	if _, err := c.do(ctx, http.MethodGet, "users/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

// GetUsers fetches several users with at most WithConcurrency requests in
// flight. Results keep the order of ids. The first failure cancels the rest
// and is returned.
func (c *Client) GetUsers(ctx context.Context, ids []string) ([]*User, error) {
	out := make([]*User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			u, err := c.GetUser(gctx, id)
			if err != nil {
				return err
			}
			out[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
