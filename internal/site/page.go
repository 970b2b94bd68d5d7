package site

import (
	"context"
	"log"
	"net/http"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"cwdp/internal/models"
)

// ContentSource is what the landing page reads from.
type ContentSource interface {
	FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error)
	ActivePartners(ctx context.Context) ([]models.Partner, error)
	ActiveStats(ctx context.Context) ([]models.Stat, error)
	Settings(ctx context.Context) (models.Settings, error)
}

type Company struct {
	Name          string
	Subtitle      string
	LogoURL       string
	FooterLogoURL string
	PrimaryPhone  string
	Phones        []string
	Emails        []string
	Address       string
	HoursWeekdays string
	HoursSaturday string
}

type StatsSection struct {
	Title       string
	Description string
	Items       []models.Stat
}

// ContactForm is the contact section state: the submitted values, field
// errors and the outcome notice.
type ContactForm struct {
	Values  models.ContactSubmission
	Errors  map[string]string
	Sent    bool
	Failure string
}

type ConsentBanner struct {
	Show        bool
	Preferences models.CookiePreferences
}

type Page struct {
	Title        string
	Path         string
	Company      Company
	Services     []Service
	Pillars      []Pillar
	Achievements []string
	Stats        StatsSection
	ShowProjects bool
	Projects     []models.Project
	Partners     []models.Partner
	Contact      ContactForm
	Consent      ConsentBanner
	Options      FormOptions
	Year         int
}

type FormOptions struct {
	Services  []string
	Budgets   []string
	Timelines []string
	HowFound  []string
}

type Builder struct {
	content       ContentSource
	featuredLimit int
}

func NewBuilder(content ContentSource, featuredLimit int) *Builder {
	return &Builder{content: content, featuredLimit: featuredLimit}
}

// Build loads every section concurrently. A failing section is logged and
// rendered from its fallback; it never fails the page.
func (b *Builder) Build(ctx context.Context, r *http.Request) *Page {
	var (
		g        errgroup.Group
		settings models.Settings
		stats    []models.Stat
		projects []models.Project
		partners []models.Partner
	)

	g.Go(func() error {
		s, err := b.content.Settings(ctx)
		if err != nil {
			log.Printf("Failed to load settings for page: %v", err)
			return nil
		}
		settings = s
		return nil
	})
	g.Go(func() error {
		s, err := b.content.ActiveStats(ctx)
		if err != nil {
			log.Printf("Failed to load stats for page: %v", err)
			return nil
		}
		stats = s
		return nil
	})
	g.Go(func() error {
		p, err := b.content.FeaturedProjects(ctx, b.featuredLimit)
		if err != nil {
			log.Printf("Failed to load featured projects for page: %v", err)
			return nil
		}
		projects = p
		return nil
	})
	g.Go(func() error {
		p, err := b.content.ActivePartners(ctx)
		if err != nil {
			log.Printf("Failed to load partners for page: %v", err)
			return nil
		}
		partners = p
		return nil
	})
	_ = g.Wait()

	return b.assemble(r, settings, stats, projects, partners)
}

// Static builds a page without loading any section data, for the
// informational pages.
func (b *Builder) Static(ctx context.Context, r *http.Request) *Page {
	settings, err := b.content.Settings(ctx)
	if err != nil {
		log.Printf("Failed to load settings for page: %v", err)
	}
	return b.assemble(r, settings, nil, nil, nil)
}

func (b *Builder) assemble(r *http.Request, settings models.Settings, stats []models.Stat, projects []models.Project, partners []models.Partner) *Page {
	s := mergeSettings(settings)
	if len(stats) == 0 {
		stats = defaultStats
	}

	page := &Page{
		Title:        s.Get(models.SettingCompanyName, "CWDP") + " - " + s.Get(models.SettingCompanySubtitle, "Construção Civil"),
		Company:      companyFrom(s),
		Services:     serviceCards,
		Pillars:      pillars,
		Achievements: achievements,
		Stats: StatsSection{
			Title:       s.Get(models.SettingStatsTitle, ""),
			Description: s.Get(models.SettingStatsDescription, ""),
			Items:       stats,
		},
		ShowProjects: s.Enabled(models.SettingShowProjectsSection),
		Projects:     projects,
		Partners:     partners,
		Options: FormOptions{
			Services:  serviceOptions,
			Budgets:   budgetOptions,
			Timelines: timelineOptions,
			HowFound:  howFoundOptions,
		},
		Year: time.Now().Year(),
	}

	if r != nil {
		page.Path = r.URL.Path
		prefs, ok := ReadConsent(r)
		page.Consent = ConsentBanner{Show: !ok, Preferences: prefs}
		page.Contact.Sent = r.URL.Query().Get("contato") == "enviado"
	}
	return page
}

func mergeSettings(settings models.Settings) models.Settings {
	out := make(models.Settings, len(defaultSettings)+len(settings))
	for k, v := range defaultSettings {
		out[k] = v
	}
	for k, v := range settings {
		if v != "" {
			out[k] = v
		} else if _, ok := out[k]; !ok {
			out[k] = v
		}
	}
	return out
}

func companyFrom(s models.Settings) Company {
	logo := s.Get(models.SettingSiteLogoURL, s.Get(models.SettingCompanyLogo, ""))
	c := Company{
		Name:          s.Get(models.SettingCompanyName, "CWDP"),
		Subtitle:      s.Get(models.SettingCompanySubtitle, ""),
		LogoURL:       logo,
		FooterLogoURL: s.Get(models.SettingFooterLogoURL, logo),
		PrimaryPhone:  s.Get(models.SettingContactPhone1, ""),
		Address:       s.Get(models.SettingCompanyAddress, ""),
		HoursWeekdays: s.Get(models.SettingBusinessHoursWeekdays, ""),
		HoursSaturday: s.Get(models.SettingBusinessHoursSaturday, ""),
	}
	for _, key := range []string{models.SettingContactPhone1, models.SettingContactPhone2} {
		if v := s.Get(key, ""); v != "" {
			c.Phones = append(c.Phones, v)
		}
	}
	for _, key := range []string{models.SettingContactEmail, models.SettingContactEmail1, models.SettingContactEmail2} {
		if v := s.Get(key, ""); v != "" && !slices.Contains(c.Emails, v) {
			c.Emails = append(c.Emails, v)
		}
	}
	return c
}
