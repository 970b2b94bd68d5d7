package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
	"cwdp/internal/services"
)

var errDB = errors.New("connection refused")

type mockPartnerRepo struct {
	mu       sync.Mutex
	partners []models.Partner
	nextID   int
}

var _ interfaces.PartnerRepository = (*mockPartnerRepo)(nil)

func (m *mockPartnerRepo) Create(ctx context.Context, p *models.Partner) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = fmt.Sprintf("partner-%d", m.nextID)
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	m.partners = append(m.partners, *p)
	return nil
}

func (m *mockPartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.partners {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockPartnerRepo) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Partner, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Partner
	for _, p := range m.partners {
		if opts.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockPartnerRepo) Update(ctx context.Context, id string, req *models.UpdatePartnerRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.partners {
		p := &m.partners[i]
		if p.ID != id {
			continue
		}
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.LogoURL != nil {
			p.LogoURL = *req.LogoURL
		}
		if req.WebsiteURL != nil {
			p.WebsiteURL = req.WebsiteURL
		}
		if req.Description != nil {
			p.Description = req.Description
		}
		if req.IsActive != nil {
			p.IsActive = *req.IsActive
		}
		if req.DisplayOrder != nil {
			p.DisplayOrder = *req.DisplayOrder
		}
		return nil
	}
	return sql.ErrNoRows
}

func (m *mockPartnerRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.partners {
		if p.ID == id {
			m.partners = append(m.partners[:i], m.partners[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockGalleryRepo struct {
	mu    sync.Mutex
	items []models.GalleryItem
}

var _ interfaces.GalleryRepository = (*mockGalleryRepo)(nil)

func (m *mockGalleryRepo) Create(ctx context.Context, item *models.GalleryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = fmt.Sprintf("gallery-%d", len(m.items)+1)
	m.items = append(m.items, *item)
	return nil
}

func (m *mockGalleryRepo) GetByID(ctx context.Context, id string) (*models.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockGalleryRepo) List(ctx context.Context, opts interfaces.ListOptions) ([]models.GalleryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.GalleryItem
	for _, it := range m.items {
		if opts.ActiveOnly && !it.IsActive {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (m *mockGalleryRepo) Update(ctx context.Context, id string, req *models.UpdateGalleryItemRequest) error {
	return nil
}

func (m *mockGalleryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockContactRepo struct {
	mu        sync.Mutex
	requests  []models.ContactRequest
	createErr error
}

var _ interfaces.ContactRequestRepository = (*mockContactRepo)(nil)

func (m *mockContactRepo) Create(ctx context.Context, req *models.ContactRequest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	req.ID = fmt.Sprintf("contact-%d", len(m.requests)+1)
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	m.requests = append(m.requests, *req)
	return nil
}

func (m *mockContactRepo) GetByID(ctx context.Context, id string) (*models.ContactRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, req := range m.requests {
		if req.ID == id {
			return &req, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockContactRepo) List(ctx context.Context) ([]models.ContactRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.ContactRequest(nil), m.requests...), nil
}

func (m *mockContactRepo) UpdateStatus(ctx context.Context, id string, status models.ContactStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockContactRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

type mockSettingRepo struct {
	mu      sync.Mutex
	values  map[string]string
	upserts []string
	lists   int
}

var _ interfaces.SettingRepository = (*mockSettingRepo)(nil)

func newMockSettingRepo(values map[string]string) *mockSettingRepo {
	if values == nil {
		values = map[string]string{}
	}
	return &mockSettingRepo{values: values}
}

func (m *mockSettingRepo) List(ctx context.Context) ([]models.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lists++
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return m.settings(keys), nil
}

func (m *mockSettingRepo) GetByKeys(ctx context.Context, keys []string) ([]models.Setting, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var present []string
	for _, k := range keys {
		if _, ok := m.values[k]; ok {
			present = append(present, k)
		}
	}
	return m.settings(present), nil
}

func (m *mockSettingRepo) settings(keys []string) []models.Setting {
	var out []models.Setting
	for _, k := range keys {
		v := m.values[k]
		out = append(out, models.Setting{ID: "s-" + k, Key: k, Value: &v})
	}
	return out
}

func (m *mockSettingRepo) Upsert(ctx context.Context, s *models.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.upsert(s)
	return nil
}

func (m *mockSettingRepo) UpsertMany(ctx context.Context, settings []models.Setting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range settings {
		m.upsert(&settings[i])
	}
	return nil
}

func (m *mockSettingRepo) upsert(s *models.Setting) {
	v := ""
	if s.Value != nil {
		v = *s.Value
	}
	m.values[s.Key] = v
	m.upserts = append(m.upserts, s.Key)
	s.ID = "s-" + s.Key
}

type mockProjectRepo struct {
	projects []models.Project
}

var _ interfaces.ProjectRepository = (*mockProjectRepo)(nil)

func (m *mockProjectRepo) Create(ctx context.Context, p *models.Project) error {
	p.ID = fmt.Sprintf("project-%d", len(m.projects)+1)
	m.projects = append(m.projects, *p)
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	for _, p := range m.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockProjectRepo) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Project, error) {
	var out []models.Project
	for _, p := range m.projects {
		if opts.FeaturedOnly && !p.IsFeatured {
			continue
		}
		out = append(out, p)
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) error {
	for i := range m.projects {
		if m.projects[i].ID != id {
			continue
		}
		if req.Title != nil {
			m.projects[i].Title = *req.Title
		}
		if req.IsFeatured != nil {
			m.projects[i].IsFeatured = *req.IsFeatured
		}
		return nil
	}
	return sql.ErrNoRows
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error { return sql.ErrNoRows }

type mockStatRepo struct {
	mu     sync.Mutex
	stats  []models.Stat
	nextID int
	err    error
}

var _ interfaces.StatRepository = (*mockStatRepo)(nil)

func (m *mockStatRepo) Create(ctx context.Context, s *models.Stat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = fmt.Sprintf("stat-%d", m.nextID)
	s.CreatedAt = time.Now().UTC()
	s.UpdatedAt = s.CreatedAt
	m.stats = append(m.stats, *s)
	return nil
}

func (m *mockStatRepo) GetByID(ctx context.Context, id string) (*models.Stat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stats {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockStatRepo) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Stat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Stat
	for _, s := range m.stats {
		if opts.ActiveOnly && !s.IsActive {
			continue
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (m *mockStatRepo) Update(ctx context.Context, id string, req *models.UpdateStatRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.stats {
		s := &m.stats[i]
		if s.ID != id {
			continue
		}
		if req.IconName != nil {
			s.IconName = *req.IconName
		}
		if req.Number != nil {
			s.Number = *req.Number
		}
		if req.Label != nil {
			s.Label = *req.Label
		}
		if req.Suffix != nil {
			s.Suffix = *req.Suffix
		}
		if req.DisplayOrder != nil {
			s.DisplayOrder = *req.DisplayOrder
		}
		if req.IsActive != nil {
			s.IsActive = *req.IsActive
		}
		return nil
	}
	return sql.ErrNoRows
}

func (m *mockStatRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.stats {
		if s.ID == id {
			m.stats = append(m.stats[:i], m.stats[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type mockRemover struct {
	mu   sync.Mutex
	urls []string
	err  error
}

func (m *mockRemover) RemoveByURL(ctx context.Context, bucket models.Bucket, publicURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, string(bucket)+" "+publicURL)
	return m.err
}

type mockStore struct {
	mu      sync.Mutex
	uploads []string
	removed []string
}

func (m *mockStore) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, bucket+"/"+path)
	return nil
}

func (m *mockStore) Remove(ctx context.Context, bucket, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, bucket+"/"+path)
	return nil
}

func (m *mockStore) PublicURL(bucket, path string) string {
	return "https://media.cwdp.pt/" + bucket + "/" + path
}

type recordingNotifier struct {
	notified chan *models.ContactRequest
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notified: make(chan *models.ContactRequest, 4)}
}

func (n *recordingNotifier) Notify(ctx context.Context, req *models.ContactRequest) {
	n.notified <- req
}

type testRepos struct {
	projects *mockProjectRepo
	gallery  *mockGalleryRepo
	partners *mockPartnerRepo
	stats    *mockStatRepo
	settings *mockSettingRepo
	contacts *mockContactRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		projects: &mockProjectRepo{},
		gallery:  &mockGalleryRepo{},
		partners: &mockPartnerRepo{},
		stats:    &mockStatRepo{},
		settings: newMockSettingRepo(nil),
		contacts: &mockContactRepo{},
	}
}

func (r *testRepos) content(cache *services.QueryCache) *services.Content {
	return services.NewContent(r.projects, r.gallery, r.partners, r.stats, r.settings, cache)
}
