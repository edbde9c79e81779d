package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/Adda-Baaj/museum-collection/internal/config"
	"github.com/Adda-Baaj/museum-collection/internal/domain"
	"github.com/Adda-Baaj/museum-collection/internal/render"
	"github.com/Adda-Baaj/museum-collection/pkg/collection"
	"github.com/Adda-Baaj/museum-collection/pkg/httpclient"
)

// stubHTTPResponse implements httpclient.Response.
type stubHTTPResponse struct {
	body       []byte
	statusCode int
}

func (s stubHTTPResponse) Body() []byte    { return s.body }
func (s stubHTTPResponse) StatusCode() int { return s.statusCode }

// fakeAPI serves canned bodies keyed by full URL and records requests.
type fakeAPI struct {
	routes map[string]stubHTTPResponse
	calls  []string
}

func (f *fakeAPI) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	f.calls = append(f.calls, url)
	if resp, ok := f.routes[url]; ok {
		return resp, nil
	}
	return stubHTTPResponse{body: []byte("not found"), statusCode: http.StatusNotFound}, nil
}

const base = "https://api.test/v1"

func ok(body string) stubHTTPResponse {
	return stubHTTPResponse{body: []byte(body), statusCode: http.StatusOK}
}

// objectBody encodes a complete object record. Empty slices keep the list
// fields non-null.
func objectBody(id int, title, pageURL string) string {
	body, err := json.Marshal(domain.MuseumObject{
		ObjectID:         id,
		Title:            title,
		Department:       "Arms and Armor",
		ObjectURL:        pageURL,
		AdditionalImages: []string{},
		Constituents:     []domain.Constituent{},
		Measurements:     []domain.Measurement{},
	})
	if err != nil {
		panic(err)
	}
	return string(body)
}

func newFakeAPI() *fakeAPI {
	routes := make(map[string]stubHTTPResponse)
	routes[base+"/objects"] = ok(`{"total": 4, "objectIDs": [10, 20, 30]}`)
	routes[base+"/objects/20"] = ok(objectBody(20, "Armor", "https://www.test/art/20"))
	routes[base+"/objects/30"] = ok(objectBody(30, "Vase", ""))
	routes[base+"/departments"] = ok(`{"departments": [{"departmentId": 4, "displayName": "Arms and Armor"}]}`)
	routes["https://www.test/art/20"] = ok(`<head><meta property="og:title" content="Armor | The Met"></head>`)
	return &fakeAPI{routes: routes}
}

func newBrowser(t *testing.T, api *fakeAPI, format string) (*Browser, *bytes.Buffer) {
	t.Helper()
	cfg := &config.Config{BaseURL: base + "/", SamplePosition: 1, IDsLimit: 20, OutputFormat: format}
	var buf bytes.Buffer
	b, err := NewBrowser(context.Background(), cfg, nil, render.New(&buf, format), api)
	if err != nil {
		t.Fatalf("NewBrowser: %v", err)
	}
	return b, &buf
}

func intPtr(i int) *int { return &i }

func TestOverviewPrintsCountObjectAndDepartments(t *testing.T) {
	api := newFakeAPI()
	b, buf := newBrowser(t, api, config.OutputText)

	if err := b.Overview(context.Background()); err != nil {
		t.Fatalf("Overview: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"4\n", "Object 20", "Armor", "Arms and Armor"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	want := []string{base + "/objects", base + "/objects/20", base + "/departments"}
	if strings.Join(api.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", api.calls, want)
	}
}

func TestOverviewStopsOnSentinelPosition(t *testing.T) {
	api := newFakeAPI()
	b, buf := newBrowser(t, api, config.OutputText)
	b.cfg.SamplePosition = 100

	err := b.Overview(context.Background())
	if !errors.Is(err, collection.ErrInvalidIdentifier) {
		t.Fatalf("expected invalid identifier, got %v", err)
	}
	if buf.String() != "4\n" {
		t.Fatalf("expected only the count before failure, got %q", buf.String())
	}
	if len(api.calls) != 1 {
		t.Fatalf("expected no request after the index, got %v", api.calls)
	}
}

func TestObjectByIDWithPageMeta(t *testing.T) {
	api := newFakeAPI()
	b, buf := newBrowser(t, api, config.OutputText)

	if err := b.Object(context.Background(), ObjectQuery{ID: intPtr(20), PageMeta: true}); err != nil {
		t.Fatalf("Object: %v", err)
	}
	if !strings.Contains(buf.String(), "Armor | The Met") {
		t.Fatalf("page meta missing:\n%s", buf.String())
	}
}

func TestObjectPageMetaFailureIsNotFatal(t *testing.T) {
	api := newFakeAPI()
	b, buf := newBrowser(t, api, config.OutputText)

	if err := b.Object(context.Background(), ObjectQuery{Position: intPtr(2), PageMeta: true}); err != nil {
		t.Fatalf("Object: %v", err)
	}
	if !strings.Contains(buf.String(), "Vase") || strings.Contains(buf.String(), "Web page") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestObjectRequestFailurePropagates(t *testing.T) {
	api := newFakeAPI()
	b, _ := newBrowser(t, api, config.OutputText)

	err := b.Object(context.Background(), ObjectQuery{ID: intPtr(99)})
	var reqErr *collection.RequestFailedError
	if !errors.As(err, &reqErr) || reqErr.Body != "not found" {
		t.Fatalf("expected RequestFailedError, got %v", err)
	}
}

func TestIDsHonoursLimit(t *testing.T) {
	b, buf := newBrowser(t, newFakeAPI(), config.OutputJSON)

	if err := b.IDs(2); err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if !strings.Contains(buf.String(), `"total": 4`) || strings.Contains(buf.String(), "30") {
		t.Fatalf("unexpected output %s", buf.String())
	}
}

func TestNewBrowserPropagatesIndexFailure(t *testing.T) {
	api := newFakeAPI()
	api.routes[base+"/objects"] = ok(`{"total": `)

	cfg := &config.Config{BaseURL: base}
	_, err := NewBrowser(context.Background(), cfg, nil, render.New(&bytes.Buffer{}, "text"), api)
	if collection.Kind(err) != collection.KindDecodeFailed {
		t.Fatalf("expected decode failure, got %v", err)
	}
}

func TestObjectWithMissingFieldsIsDecodeFailure(t *testing.T) {
	api := newFakeAPI()
	api.routes[base+"/objects/20"] = ok(`{"objectID": 20, "title": "Armor"}`)
	b, buf := newBrowser(t, api, config.OutputText)

	err := b.Object(context.Background(), ObjectQuery{ID: intPtr(20)})
	if collection.Kind(err) != collection.KindDecodeFailed {
		t.Fatalf("expected decode failure, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should be printed, got %q", buf.String())
	}
}

func TestNewBrowserValidatesArguments(t *testing.T) {
	if _, err := NewBrowser(context.Background(), nil, nil, render.New(&bytes.Buffer{}, "text"), newFakeAPI()); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewBrowser(context.Background(), &config.Config{BaseURL: base}, nil, nil, newFakeAPI()); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestIDsFallsBackToConfiguredLimit(t *testing.T) {
	b, buf := newBrowser(t, newFakeAPI(), config.OutputText)
	b.cfg.IDsLimit = 1

	if err := b.IDs(0); err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if !strings.Contains(buf.String(), "Object IDs (1 of 4)") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
