package clients

import (
	"context"
	"io"
	"net/http"
)

type ProfileClient struct{ c *Client }

func NewProfileClient(c *Client) *ProfileClient { return &ProfileClient{c: c} }

func (pc *ProfileClient) Get(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return pc.c.Do(ctx, http.MethodGet, "/api/users/me", rawQuery, nil, headers)
}

func (pc *ProfileClient) Update(ctx context.Context, body io.Reader, headers http.Header) (*http.Response, error) {
	return pc.c.Do(ctx, http.MethodPut, "/api/users/me", "", body, headers)
}
