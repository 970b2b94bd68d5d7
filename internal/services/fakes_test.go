package services

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"sort"
	"sync"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

type fakePartnerRepo struct {
	mu       sync.Mutex
	partners []models.Partner
	calls    int
}

var _ interfaces.PartnerRepository = (*fakePartnerRepo)(nil)

func (f *fakePartnerRepo) Create(ctx context.Context, p *models.Partner) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = "p" + string(rune('0'+len(f.partners)+1))
	f.partners = append(f.partners, *p)
	return nil
}

func (f *fakePartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.partners {
		if f.partners[i].ID == id {
			p := f.partners[i]
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakePartnerRepo) List(ctx context.Context, opts interfaces.ListOptions) ([]models.Partner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	var out []models.Partner
	for _, p := range f.partners {
		if opts.ActiveOnly && !p.IsActive {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (f *fakePartnerRepo) Update(ctx context.Context, id string, req *models.UpdatePartnerRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.partners {
		if f.partners[i].ID == id {
			if req.IsActive != nil {
				f.partners[i].IsActive = *req.IsActive
			}
			if req.DisplayOrder != nil {
				f.partners[i].DisplayOrder = *req.DisplayOrder
			}
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakePartnerRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeSettingRepo struct {
	settings []models.Setting
	err      error
}

func (f *fakeSettingRepo) List(ctx context.Context) ([]models.Setting, error) {
	return f.settings, f.err
}
func (f *fakeSettingRepo) GetByKeys(ctx context.Context, keys []string) ([]models.Setting, error) {
	return nil, nil
}
func (f *fakeSettingRepo) Upsert(ctx context.Context, s *models.Setting) error      { return nil }
func (f *fakeSettingRepo) UpsertMany(ctx context.Context, s []models.Setting) error { return nil }

type fakeStore struct {
	mu       sync.Mutex
	uploads  []string
	removed  []string
	failWith error
}

func (s *fakeStore) Upload(ctx context.Context, bucket, path string, body io.Reader, size int64, contentType string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return s.failWith
	}
	s.uploads = append(s.uploads, bucket+"/"+path)
	return nil
}

func (s *fakeStore) Remove(ctx context.Context, bucket, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removed = append(s.removed, bucket+"/"+path)
	return s.failWith
}

func (s *fakeStore) PublicURL(bucket, path string) string {
	return "https://cdn.cwdp.pt/" + bucket + "/" + path
}

type fakeSender struct {
	to, subject, body string
	err               error
}

func (s *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

var errBoom = errors.New("boom")
