package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strconv"
	"strings"

	"cwdp/internal/models"
	"cwdp/internal/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const PlaceholderImage = "/static/placeholder.svg"

// StaticFS serves the embedded stylesheet and placeholder image.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("site").Funcs(template.FuncMap{
		"icon":        services.Icon,
		"imageOr":     imageOr,
		"number":      formatNumber,
		"tel":         telHref,
		"whatsapp":    whatsAppHref,
		"statusLabel": func(s models.ProjectStatus) string { return s.Label() },
		"deref":       deref,
		"selected":    func(a, b string) bool { return a == b },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named page into w. The output is buffered so a
// template error never leaves a half-written page.
func (r *Renderer) Render(w io.Writer, name string, page *Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, page); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

func imageOr(url *string) string {
	if url == nil || strings.TrimSpace(*url) == "" {
		return PlaceholderImage
	}
	return *url
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatNumber groups thousands with a dot, as Portuguese readers expect.
func formatNumber(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// telHref keeps only digits and the leading plus, so the result is safe to
// mark as a URL.
func telHref(phone string) template.URL {
	var b strings.Builder
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return template.URL("tel:" + b.String())
}

const whatsAppGreeting = "Olá! Gostaria de solicitar um orçamento."

// whatsAppHref opens a chat with phone, prefilled with the quote greeting.
func whatsAppHref(phone string) template.URL {
	digits := strings.TrimPrefix(string(telHref(phone)), "tel:")
	digits = strings.TrimPrefix(digits, "+")
	text := strings.ReplaceAll(url.QueryEscape(whatsAppGreeting), "+", "%20")
	return template.URL("https://wa.me/" + digits + "?text=" + text)
}
