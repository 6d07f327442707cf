package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// SeoService manages per-page SEO metadata and audits.
type SeoService struct {
	client *Client
}

func (c *Client) Seo() *SeoService {
	return &SeoService{client: c}
}

type SeoListQuery struct {
	Q     string
	Page  int
	Limit int
}

func (q SeoListQuery) params() Params {
	return Params{
		"q":     q.Q,
		"page":  positiveInt(q.Page),
		"limit": positiveInt(q.Limit),
	}
}

func (ss *SeoService) List(ctx context.Context, query SeoListQuery) ([]model.SeoPage, error) {
	var resp model.List[model.SeoPage]
	if err := ss.client.Do(ctx, Request{Path: "/api/seo-pages", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (ss *SeoService) Create(ctx context.Context, page model.SeoPage) (*model.SeoPage, error) {
	var created model.SeoPage
	err := ss.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/seo-pages", Body: page}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (ss *SeoService) Update(ctx context.Context, id string, changes map[string]any) (*model.SeoPage, error) {
	var updated model.SeoPage
	err := ss.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/seo-pages/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (ss *SeoService) Delete(ctx context.Context, id string) error {
	return ss.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/seo-pages/" + id}, nil)
}

func (ss *SeoService) UploadImage(ctx context.Context, id, fileName string, file io.Reader) (*model.SeoPage, error) {
	form, err := NewFormPayload(nil, "image", fileName, file)
	if err != nil {
		return nil, err
	}
	var updated model.SeoPage
	err = ss.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/seo-pages/" + id + "/upload-image", Form: form}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Audit runs a fresh SEO audit for the page and returns the updated record.
func (ss *SeoService) Audit(ctx context.Context, id string) (*model.SeoPage, error) {
	var audited model.SeoPage
	err := ss.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/seo-pages/" + id + "/audit"}, &audited)
	if err != nil {
		return nil, err
	}
	return &audited, nil
}

func (ss *SeoService) AnalyticsSummary(ctx context.Context) (*model.SeoAnalytics, error) {
	var summary model.SeoAnalytics
	if err := ss.client.Do(ctx, Request{Path: "/api/seo-pages/analytics/summary"}, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
