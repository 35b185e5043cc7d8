package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"naiyuan-admin/internal/domain"
	"naiyuan-admin/internal/view"
	"path"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Views holds one parsed template set per page, each sharing the layout.
type Views struct {
	pages map[string]*template.Template
}

func NewViews() (*Views, error) {
	layout, err := template.New("layout.html").Funcs(funcs()).ParseFS(templateFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("views: parse layout: %w", err)
	}

	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: list templates: %w", err)
	}

	v := &Views{pages: make(map[string]*template.Template, len(names))}
	for _, n := range names {
		name := strings.TrimSuffix(path.Base(n), ".html")
		if name == "layout" {
			continue
		}
		t, err := layout.Clone()
		if err != nil {
			return nil, fmt.Errorf("views: clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, n); err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

func (v *Views) Render(w io.Writer, name string, p Page) error {
	t, ok := v.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", p)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"badge":     view.Badge,
		"humanize":  view.Humanize,
		"money":     view.FormatCurrency,
		"breakdown": view.FormatMoney,
		"number":    view.FormatNumber,
		"thousands": func(n int) string { return view.FormatNumber(float64(n)) },
		"symbol":    view.CurrencySymbol,
		"rateSym":   view.RateSymbol,
		"date":      view.FormatDate,
		"datetime":  view.FormatDateTime,
		"day":       view.FormatDay,
		"clock":     view.FormatTime,
		"count":     view.BadgeCount,
		"plural":    view.Plural,
		"referral":  view.ReferralClasses,
		"tier":      view.TierEmoji,
		"active":    view.NavActive,
		"deref":     domain.Deref,
		"payment": func(b domain.Bill) view.PaymentBadge {
			p, ok := b.LatestPayment()
			return view.PaymentBadgeFor(view.PaymentState(b.Status, p.Status, ok))
		},
		"latestPayment": func(b domain.Bill) *domain.Payment {
			if p, ok := b.LatestPayment(); ok {
				return &p
			}
			return nil
		},
		"photos": func(urls []string) string { return strings.Join(urls, "\n") },
		"isoDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"contains": domain.Contains,
	}
}
