package clients

import (
	"context"
	"io"
	"net/http"
)

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

func (ac *AuthClient) Login(ctx context.Context, body io.Reader, headers http.Header) (*http.Response, error) {
	return ac.c.Do(ctx, http.MethodPost, "/api/auth/login", "", body, headers)
}

func (ac *AuthClient) Register(ctx context.Context, body io.Reader, headers http.Header) (*http.Response, error) {
	return ac.c.Do(ctx, http.MethodPost, "/api/auth/register", "", body, headers)
}
