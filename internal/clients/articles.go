package clients

import (
	"context"
	"net/http"
)

type ArticlesClient struct{ c *Client }

func NewArticlesClient(c *Client) *ArticlesClient { return &ArticlesClient{c: c} }

func (ac *ArticlesClient) ListArticles(ctx context.Context, rawQuery string, headers http.Header) (*http.Response, error) {
	return ac.c.Do(ctx, http.MethodGet, "/api/articles", rawQuery, nil, headers)
}

func (ac *ArticlesClient) GetArticle(ctx context.Context, id, rawQuery string, headers http.Header) (*http.Response, error) {
	return ac.c.Do(ctx, http.MethodGet, "/api/articles/"+id, rawQuery, nil, headers)
}
