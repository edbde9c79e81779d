package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Adda-Baaj/museum-collection/internal/domain"
	"github.com/Adda-Baaj/museum-collection/pkg/httpclient"
)

// DefaultBaseURL is the public Metropolitan Museum of Art collection API.
const DefaultBaseURL = "https://collectionapi.metmuseum.org/public/collection/v1/"

// NotFound is returned by IDAtPosition when the position is out of range.
const NotFound = -1

const (
	endpointObjects     = "objects"
	endpointDepartments = "departments"
)

var jsonHeaders = map[string]string{"Accept": "application/json"}

// Client talks to the collection API. The object index is fetched once in
// New and never refreshed.
type Client struct {
	baseURL string
	http    httpclient.Client
	log     Logger
	index   domain.ObjectSummaryIndex
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(base); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = ensureLogger(log) }
}

// New builds a Client and retrieves the object index. It fails when the
// index request does not succeed or its body cannot be decoded.
func New(ctx context.Context, client httpclient.Client, opts ...Option) (*Client, error) {
	if client == nil {
		return nil, fmt.Errorf("http client must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		http:    client,
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")

	var index domain.ObjectSummaryIndex
	if err := c.getJSON(ctx, endpointObjects, indexSchema, &index); err != nil {
		return nil, err
	}
	c.index = index

	c.log.DebugObj("object index loaded", "index_meta", map[string]any{
		"total":     index.Total,
		"ids_count": len(index.ObjectIDs),
	})
	return c, nil
}

// TotalCount returns the total reported by the object index.
func (c *Client) TotalCount() int {
	return c.index.Total
}

// IDAtPosition returns the object id at the zero-based position of the
// retained index, or NotFound when the position is out of range.
func (c *Client) IDAtPosition(position int) int {
	if position < 0 || position >= len(c.index.ObjectIDs) {
		return NotFound
	}
	return c.index.ObjectIDs[position]
}

// ObjectIDs returns a copy of the retained identifier list.
func (c *Client) ObjectIDs() []int {
	out := make([]int, len(c.index.ObjectIDs))
	copy(out, c.index.ObjectIDs)
	return out
}

// FetchObject retrieves the metadata of a single object.
func (c *Client) FetchObject(ctx context.Context, id int) (*domain.MuseumObject, error) {
	if id == NotFound {
		return nil, ErrInvalidIdentifier
	}

	var obj domain.MuseumObject
	if err := c.getJSON(ctx, endpointObjects+"/"+strconv.Itoa(id), objectSchema, &obj); err != nil {
		return nil, err
	}
	return &obj, nil
}

// FetchDepartments retrieves the curatorial department catalog.
func (c *Client) FetchDepartments(ctx context.Context) (*domain.DepartmentCatalog, error) {
	var catalog domain.DepartmentCatalog
	if err := c.getJSON(ctx, endpointDepartments, departmentsSchema, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// getJSON issues a GET against endpoint, validates the body against shape
// and decodes it into dest.
func (c *Client) getJSON(ctx context.Context, endpoint string, shape schema, dest any) error {
	url := c.baseURL + "/" + endpoint

	resp, err := c.http.Get(ctx, url, jsonHeaders)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Err: err}
	}

	body := resp.Body()
	if !httpclient.IsSuccess(resp) {
		c.log.WarnObj("collection request failed", "request_error", map[string]any{
			"endpoint": endpoint,
			"status":   resp.StatusCode(),
		})
		return &RequestFailedError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode(),
			Body:       string(body),
		}
	}

	if err := decodeJSON(body, shape, dest); err != nil {
		return &DecodeFailedError{Endpoint: endpoint, Err: err}
	}
	return nil
}

func decodeJSON(body []byte, shape schema, dest any) error {
	if err := shape.check(body, ""); err != nil {
		return err
	}
	return json.Unmarshal(body, dest)
}
