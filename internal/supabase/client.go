package supabase

import (
	"context"
	"fmt"

	"adsgenie-backend/internal/config"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
)

type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// VerifyToken asks Supabase Auth who owns the access token and returns the
// user id. It is used when no JWT secret is configured for local checks.
// gotrue-go takes no context, so ctx only bounds how long VerifyToken waits.
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	user, err := callWithContext(ctx, func() (*types.UserResponse, error) {
		return c.Supabase.Auth.WithToken(token).GetUser()
	})
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("failed to verify token: no user returned")
	}
	return user.ID.String(), nil
}
