package httpclient

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a RestyClient. A zero timeout keeps the transport default.
func NewRestyClient(timeout time.Duration, userAgent string) *RestyClient {
	c := resty.New()
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	if ua := strings.TrimSpace(userAgent); ua != "" {
		c.SetHeader("User-Agent", ua)
	}
	return &RestyClient{client: c}
}

// Get performs an HTTP GET request with the specified context, URL, and headers.
// The full body is read before returning.
func (r *RestyClient) Get(ctx context.Context, url string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Get(url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }
