package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const DefaultBaseURL = "http://localhost:1337"

var ErrNotJSON = errors.New("Response is not JSON")

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	// Token, when set, supplies the bearer token for requests that need one.
	Token func() string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientFromEnv reads STOREFRONT_API_URL, loading .env first when present.
func NewClientFromEnv() *Client {
	_ = godotenv.Load()
	base := os.Getenv("STOREFRONT_API_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return NewClient(base)
}

type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		Pagination *Pagination  `json:"pagination"`
		Stats      *ReviewStats `json:"stats"`
	} `json:"meta"`
	Error *struct {
		Status  int    `json:"status"`
		Name    string `json:"name"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.BaseURL + "/api" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do issues one request and decodes a JSON body into out. Every failure comes back as an
// error whose text is fit to show as is.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, auth bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth && c.Token != nil {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		se := &StatusError{Status: resp.StatusCode}
		var env envelope
		if json.NewDecoder(resp.Body).Decode(&env) == nil && env.Error != nil {
			se.Message = env.Error.Message
		}
		return se
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return ErrNotJSON
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out *envelope) error {
	return c.do(ctx, http.MethodGet, path, query, nil, false, out)
}

func decodeData(env *envelope, out any) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return errors.Wrap(json.Unmarshal(env.Data, out), "failed to decode data")
}
