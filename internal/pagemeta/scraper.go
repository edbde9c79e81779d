package pagemeta

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Adda-Baaj/museum-collection/internal/domain"
	"github.com/Adda-Baaj/museum-collection/pkg/httpclient"

	"github.com/PuerkitoBio/goquery"
)

const (
	maxHTMLBodyBytes = 1 << 20 // 1 MiB
)

var htmlHeaders = map[string]string{"Accept": "text/html,application/xhtml+xml"}

// Scraper fetches an object's public web page and extracts its OG tags.
type Scraper struct {
	client httpclient.Client
}

// NewScraper constructs a scraper with the provided HTTP client.
func NewScraper(client httpclient.Client) *Scraper {
	return &Scraper{client: client}
}

// Fetch retrieves pageURL and returns its Open Graph metadata.
func (s *Scraper) Fetch(ctx context.Context, pageURL string) (domain.PageMeta, error) {
	if s == nil || s.client == nil {
		return domain.PageMeta{}, fmt.Errorf("page scraper is not initialized")
	}
	if strings.TrimSpace(pageURL) == "" {
		return domain.PageMeta{}, fmt.Errorf("page url is empty")
	}

	resp, err := s.client.Get(ctx, pageURL, htmlHeaders)
	if err != nil {
		return domain.PageMeta{}, fmt.Errorf("http fetch: %w", err)
	}

	if resp.StatusCode() != 200 {
		snippet := strings.TrimSpace(string(resp.Body()))
		if len(snippet) > 1024 {
			snippet = snippet[:1024]
		}
		return domain.PageMeta{}, fmt.Errorf("status %d body: %s", resp.StatusCode(), snippet)
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}

	meta, err := parseMeta(body)
	if err != nil {
		return domain.PageMeta{}, err
	}
	meta.ImageURL = resolveURL(meta.ImageURL, pageURL)
	return meta, nil
}

func parseMeta(body []byte) (domain.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.PageMeta{}, fmt.Errorf("parse html: %w", err)
	}

	extract := func(sel string) string {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if val, ok := node.Attr("content"); ok {
				return strings.TrimSpace(val)
			}
		}
		return ""
	}

	return domain.PageMeta{
		Title: firstNonEmpty(
			extract(`meta[property="og:title"]`),
			strings.TrimSpace(doc.Find("title").First().Text()),
		),
		Description: firstNonEmpty(
			extract(`meta[property="og:description"]`),
			extract(`meta[name="description"]`),
		),
		ImageURL: extract(`meta[property="og:image"]`),
	}, nil
}

// resolveURL makes ref absolute against base. Unparseable input is returned as is.
func resolveURL(ref, base string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	refURL, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return baseURL.ResolveReference(refURL).String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
