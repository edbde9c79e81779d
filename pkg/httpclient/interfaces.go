package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
}

// IsSuccess reports whether the status code is in the 2xx range.
func IsSuccess(resp Response) bool {
	if resp == nil {
		return false
	}
	code := resp.StatusCode()
	return code >= 200 && code < 300
}
