package app

import (
	"context"
	"fmt"

	"github.com/Adda-Baaj/museum-collection/internal/config"
	"github.com/Adda-Baaj/museum-collection/internal/domain"
	"github.com/Adda-Baaj/museum-collection/internal/logger"
	"github.com/Adda-Baaj/museum-collection/internal/pagemeta"
	"github.com/Adda-Baaj/museum-collection/internal/render"
	"github.com/Adda-Baaj/museum-collection/pkg/collection"
	"github.com/Adda-Baaj/museum-collection/pkg/httpclient"
)

// Browser represents the collection client runtime. It owns the API client,
// the page scraper and the renderer, and performs one command per call.
type Browser struct {
	cfg     *config.Config
	client  *collection.Client
	scraper *pagemeta.Scraper
	out     *render.Renderer
	log     logger.Logger
}

// ObjectQuery selects an object by identifier or by index position.
// ID takes precedence; with neither set the configured sample position is used.
type ObjectQuery struct {
	ID       *int
	Position *int
	PageMeta bool
}

// NewBrowser builds the runtime and loads the object index. A nil http client
// is replaced by a resty client configured from cfg.
func NewBrowser(ctx context.Context, cfg *config.Config, log logger.Logger, out *render.Renderer, client httpclient.Client) (*Browser, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if out == nil {
		return nil, fmt.Errorf("renderer must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = httpclient.NewRestyClient(cfg.HTTPTimeout, cfg.UserAgent)
	}

	api, err := collection.New(ctx, client,
		collection.WithBaseURL(cfg.BaseURL),
		collection.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	log.InfoObj("object index loaded", "index_meta", map[string]any{
		"base_url": cfg.BaseURL,
		"total":    api.TotalCount(),
	})

	return &Browser{
		cfg:     cfg,
		client:  api,
		scraper: pagemeta.NewScraper(client),
		out:     out,
		log:     log,
	}, nil
}

// Overview prints the total count, the object at the sample position and
// the department catalog, stopping at the first failure.
func (b *Browser) Overview(ctx context.Context) error {
	if b == nil || b.client == nil {
		return fmt.Errorf("browser is not initialized")
	}
	if err := b.Count(); err != nil {
		return err
	}
	if err := b.Object(ctx, ObjectQuery{}); err != nil {
		return err
	}
	return b.Departments(ctx)
}

// Count prints the total reported by the object index.
func (b *Browser) Count() error {
	return b.out.Count(b.client.TotalCount())
}

// IDs prints up to limit identifiers from the retained index. A non-positive
// limit falls back to the configured ids_limit.
func (b *Browser) IDs(limit int) error {
	if limit <= 0 {
		limit = b.cfg.IDsLimit
	}
	ids := b.client.ObjectIDs()
	if limit > 0 && limit < len(ids) {
		ids = ids[:limit]
	}
	return b.out.IDs(b.client.TotalCount(), ids)
}

// Object fetches and prints one object.
func (b *Browser) Object(ctx context.Context, q ObjectQuery) error {
	id := b.resolveID(q)

	obj, err := b.client.FetchObject(ctx, id)
	if err != nil {
		return err
	}

	var meta *domain.PageMeta
	if q.PageMeta {
		meta = b.pageMeta(ctx, obj)
	}
	return b.out.Object(obj, meta)
}

// Departments fetches and prints the department catalog.
func (b *Browser) Departments(ctx context.Context) error {
	catalog, err := b.client.FetchDepartments(ctx)
	if err != nil {
		return err
	}
	return b.out.Departments(catalog)
}

// resolveID maps a query to an identifier. Positions go through the index
// lookup so an out-of-range position yields the not-found sentinel, which
// FetchObject then rejects.
func (b *Browser) resolveID(q ObjectQuery) int {
	if q.ID != nil {
		return *q.ID
	}
	position := b.cfg.SamplePosition
	if q.Position != nil {
		position = *q.Position
	}
	id := b.client.IDAtPosition(position)
	b.log.DebugObj("object position resolved", "position_lookup", map[string]any{
		"position":  position,
		"object_id": id,
	})
	return id
}

// pageMeta scrapes the object's public page. Failures are logged and the
// object is printed without page data.
func (b *Browser) pageMeta(ctx context.Context, obj *domain.MuseumObject) *domain.PageMeta {
	if obj.ObjectURL == "" {
		b.log.WarnObj("object has no public page", "object_id", obj.ObjectID)
		return nil
	}
	meta, err := b.scraper.Fetch(ctx, obj.ObjectURL)
	if err != nil {
		b.log.WarnObj("object page scrape failed", "metadata_error", map[string]any{
			"object_id": obj.ObjectID,
			"url":       obj.ObjectURL,
			"error":     err.Error(),
		})
		return nil
	}
	return &meta
}
