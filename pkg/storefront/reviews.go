package storefront

import (
	"context"
	"net/http"
	"net/url"
)

type (
	ReviewInput struct {
		Product    string `json:"product"`
		Rating     int    `json:"rating"`
		Title      string `json:"title,omitempty"`
		Content    string `json:"content"`
		AuthorName string `json:"authorName,omitempty"`
	}

	ReviewUpdate struct {
		Rating  int    `json:"rating,omitempty"`
		Title   string `json:"title,omitempty"`
		Content string `json:"content,omitempty"`
	}
)

func (c *Client) reviewCall(ctx context.Context, method, path string, body any, auth bool) (Review, error) {
	var env envelope
	if err := c.do(ctx, method, path, nil, body, auth, &env); err != nil {
		return Review{}, err
	}
	var flat FlatReview
	if err := decodeData(&env, &flat); err != nil {
		return Review{}, err
	}
	return TransformReview(flat), nil
}

func (c *Client) CreateReview(ctx context.Context, in ReviewInput) (Review, error) {
	return c.reviewCall(ctx, http.MethodPost, "/reviews", map[string]any{"data": in}, true)
}

func (c *Client) UpdateReview(ctx context.Context, id string, in ReviewUpdate) (Review, error) {
	return c.reviewCall(ctx, http.MethodPut, "/reviews/"+url.PathEscape(id), map[string]any{"data": in}, true)
}

func (c *Client) DeleteReview(ctx context.Context, id string) (Review, error) {
	return c.reviewCall(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id), nil, true)
}

func (c *Client) MarkHelpful(ctx context.Context, id string) (Review, error) {
	return c.reviewCall(ctx, http.MethodPost, "/reviews/"+url.PathEscape(id)+"/helpful", nil, false)
}
