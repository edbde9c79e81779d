package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/Adda-Baaj/museum-collection/internal/config"
	"github.com/Adda-Baaj/museum-collection/internal/domain"
)

// Renderer writes command results in the configured output format.
type Renderer struct {
	w       io.Writer
	format  string
	heading lipgloss.Style
	label   lipgloss.Style
}

// New returns a renderer for format. Colors are only emitted when w is a terminal.
func New(w io.Writer, format string) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:       w,
		format:  strings.ToLower(strings.TrimSpace(format)),
		heading: lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		label:   lr.NewStyle().Faint(true),
	}
}

type countView struct {
	Total int `json:"total" yaml:"total"`
}

type idsView struct {
	Total     int   `json:"total" yaml:"total"`
	ObjectIDs []int `json:"objectIDs" yaml:"objectIDs"`
}

type objectView struct {
	Object   *domain.MuseumObject `json:"object" yaml:"object"`
	PageMeta *domain.PageMeta     `json:"page_meta,omitempty" yaml:"page_meta,omitempty"`
}

type failureView struct {
	Error string `json:"error" yaml:"error"`
	Kind  string `json:"kind" yaml:"kind"`
}

// Count writes the total object count.
func (r *Renderer) Count(total int) error {
	if r.structured() {
		return r.encode(countView{Total: total})
	}
	_, err := fmt.Fprintln(r.w, total)
	return err
}

// IDs writes a slice of the identifier index.
func (r *Renderer) IDs(total int, ids []int) error {
	if r.structured() {
		return r.encode(idsView{Total: total, ObjectIDs: ids})
	}
	var b strings.Builder
	b.WriteString(r.heading.Render(fmt.Sprintf("Object IDs (%d of %d)", len(ids), total)))
	b.WriteString("\n")
	for _, id := range ids {
		b.WriteString(strconv.Itoa(id))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Object writes one object and, when present, its page metadata.
func (r *Renderer) Object(obj *domain.MuseumObject, meta *domain.PageMeta) error {
	if obj == nil {
		return fmt.Errorf("nothing to render")
	}
	if r.structured() {
		return r.encode(objectView{Object: obj, PageMeta: meta})
	}

	var b strings.Builder
	b.WriteString(r.heading.Render(fmt.Sprintf("Object %d", obj.ObjectID)))
	b.WriteString("\n")

	r.field(&b, "Title", obj.Title)
	r.field(&b, "Object name", obj.ObjectName)
	r.field(&b, "Artist", obj.ArtistDisplayName)
	r.field(&b, "Artist bio", obj.ArtistDisplayBio)
	r.field(&b, "Date", obj.ObjectDate)
	r.field(&b, "Culture", obj.Culture)
	r.field(&b, "Period", obj.Period)
	r.optional(&b, "Dynasty", obj.Dynasty)
	r.optional(&b, "Reign", obj.Reign)
	r.optional(&b, "Portfolio", obj.Portfolio)
	r.field(&b, "Medium", obj.Medium)
	r.field(&b, "Dimensions", obj.Dimensions)
	r.field(&b, "Department", obj.Department)
	r.field(&b, "Classification", obj.Classification)
	r.field(&b, "Accession", obj.AccessionNumber)
	r.field(&b, "Credit line", obj.CreditLine)
	r.optional(&b, "Country", obj.Country)
	r.optional(&b, "City", obj.City)
	r.optional(&b, "Region", obj.Region)
	r.optional(&b, "Gallery", obj.GalleryNumber)
	r.field(&b, "Public domain", strconv.FormatBool(obj.IsPublicDomain))
	r.field(&b, "Highlight", strconv.FormatBool(obj.IsHighlight))
	r.field(&b, "Primary image", obj.PrimaryImage)
	r.field(&b, "URL", obj.ObjectURL)

	if len(obj.Constituents) > 0 {
		b.WriteString(r.heading.Render("Constituents"))
		b.WriteString("\n")
		for _, c := range obj.Constituents {
			fmt.Fprintf(&b, "  %s (%s)\n", c.Name, c.Role)
		}
	}
	if len(obj.Measurements) > 0 {
		b.WriteString(r.heading.Render("Measurements"))
		b.WriteString("\n")
		for _, m := range obj.Measurements {
			fmt.Fprintf(&b, "  %s: %s\n", m.ElementName, formatValues(m.ElementValues))
		}
	}
	if len(obj.Tags) > 0 {
		terms := make([]string, 0, len(obj.Tags))
		for _, t := range obj.Tags {
			terms = append(terms, t.Term)
		}
		r.field(&b, "Tags", strings.Join(terms, ", "))
	}

	if meta != nil {
		b.WriteString(r.heading.Render("Web page"))
		b.WriteString("\n")
		r.field(&b, "Title", meta.Title)
		r.field(&b, "Description", meta.Description)
		r.field(&b, "Image", meta.ImageURL)
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

// Departments writes the department catalog.
func (r *Renderer) Departments(catalog *domain.DepartmentCatalog) error {
	if catalog == nil {
		return fmt.Errorf("nothing to render")
	}
	if r.structured() {
		return r.encode(catalog)
	}
	var b strings.Builder
	b.WriteString(r.heading.Render(fmt.Sprintf("Departments (%d)", len(catalog.Departments))))
	b.WriteString("\n")
	for _, d := range catalog.Departments {
		fmt.Fprintf(&b, "%3d  %s\n", d.ID, d.DisplayName)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Failure writes the top-level failure line.
func (r *Renderer) Failure(kind, message string) error {
	if r.structured() {
		return r.encode(failureView{Error: message, Kind: kind})
	}
	_, err := fmt.Fprintf(r.w, "exception was: %s\n", message)
	return err
}

func (r *Renderer) structured() bool {
	return r.format == config.OutputJSON || r.format == config.OutputYAML
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", r.format)
	}
}

func (r *Renderer) field(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	b.WriteString(r.label.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteString("\n")
}

func (r *Renderer) optional(b *strings.Builder, label string, value *string) {
	if value == nil {
		return
	}
	r.field(b, label, *value)
}

// formatValues renders dimension values sorted by name for stable output.
func formatValues(values map[string]float64) string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+"="+strconv.FormatFloat(values[name], 'f', -1, 64))
	}
	return strings.Join(parts, " ")
}
