package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/samandr77/microservices/backoffice/internal/entity"
	"github.com/samandr77/microservices/backoffice/internal/upload"
	"github.com/samandr77/microservices/backoffice/pkg/transport"
)

type Client struct {
	client    *resty.Client
	uploadURL string
}

func NewClient(uploadURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetTransport(transport.NewLoggingRoundTripper(http.DefaultTransport)).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &Client{
		client:    client,
		uploadURL: uploadURL,
	}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	Message string `json:"message"`
}

// Upload sends f as multipart field "file". A response without success or
// url is a failed upload.
func (c *Client) Upload(ctx context.Context, f upload.File) (upload.Result, error) {
	req := c.client.R().
		SetContext(ctx).
		SetFileReader("file", f.Name, bytes.NewReader(f.Data)).
		SetResult(&uploadResponse{})

	if token, err := entity.TokenFromContext(ctx); err == nil && token != "" {
		req.SetAuthToken(token)
	}

	resp, err := req.Post(c.uploadURL)
	if err != nil {
		return upload.Result{}, fmt.Errorf("%w: send request: %w", entity.ErrUpload, err)
	}

	if resp.IsError() {
		return upload.Result{}, fmt.Errorf("%w: unexpected code %d", entity.ErrUpload, resp.StatusCode())
	}

	data, ok := resp.Result().(*uploadResponse)
	if !ok || !data.Success || data.URL == "" {
		msg := ""
		if ok {
			msg = data.Message
		}

		return upload.Result{}, fmt.Errorf("%w: rejected by image host: %s", entity.ErrUpload, msg)
	}

	return upload.Result{Success: true, URL: data.URL}, nil
}
