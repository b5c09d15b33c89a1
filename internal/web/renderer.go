package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"

	"github.com/reyes-code/football-stats-service/internal/viewmodel"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageTeams      = "teams.html"
	pageStatistics = "statistics.html"
	pageFailed     = "failed.html"
)

var percentPattern = regexp.MustCompile(`^\d{1,3}(\.\d+)?%$`)

// Renderer executes the embedded page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page against the shared layout and partials.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcMap()).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, name := range []string{pageTeams, pageStatistics, pageFailed} {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = clone
	}
	return &Renderer{pages: pages}, nil
}

// MustNewRenderer panics when the embedded templates do not parse.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Teams(w io.Writer, page TeamsPage) error {
	return r.render(w, pageTeams, "Teams", page)
}

func (r *Renderer) Statistics(w io.Writer, page StatisticsPage) error {
	return r.render(w, pageStatistics, page.Dashboard.Team.Name, page)
}

func (r *Renderer) Failed(w io.Writer, page FailedPage) error {
	return r.render(w, pageFailed, "Statistics unavailable", page)
}

// render buffers the page; nothing reaches w when execution fails.
func (r *Renderer) render(w io.Writer, page, title string, content any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", layoutData{Title: title, Content: content}); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"brand":       func() string { return Brand },
		"attribution": func() string { return Attribution },
		"barWidth":    barWidth,
		"bars": func(list []viewmodel.MinuteBar, kind, empty string) barsData {
			return barsData{Bars: list, Kind: kind, Empty: empty}
		},
	}
}

// barWidth turns an upstream percentage string into a CSS width, clamping
// anything unexpected to 0%.
func barWidth(pct string) template.CSS {
	if !percentPattern.MatchString(pct) {
		return template.CSS("0%")
	}
	return template.CSS(pct)
}
