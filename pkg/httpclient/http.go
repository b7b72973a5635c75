package httpclient

import (
	"context"
	"io"
	"net/http"
)

type BaseResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// StreamResponse carries an unread response body. The caller owns Body and
// must close it.
type StreamResponse struct {
	StatusCode int
	Body       io.ReadCloser
	Headers    http.Header
}

type HTTPClient interface {
	Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error)
	Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string, result interface{}) (*BaseResponse, error)
	PostStream(ctx context.Context, endpoint string, body interface{}, headers map[string]string) (*StreamResponse, error)
}
