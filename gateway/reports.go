package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// ReportsService manages the market-report catalogue, including the slug
// addressed variants and the bulk import/export tooling.
type ReportsService struct {
	client *Client
}

func (c *Client) Reports() *ReportsService {
	return &ReportsService{client: c}
}

type ReportListQuery struct {
	Q           string
	Category    string
	Subcategory string
	Status      string
	Featured    string // "true"/"false", empty for all
	Page        int
	Limit       int
}

func (q ReportListQuery) params() Params {
	return Params{
		"q":           q.Q,
		"category":    q.Category,
		"subcategory": q.Subcategory,
		"status":      q.Status,
		"featured":    q.Featured,
		"page":        positiveInt(q.Page),
		"limit":       positiveInt(q.Limit),
	}
}

func (rs *ReportsService) List(ctx context.Context, query ReportListQuery) (*model.List[model.Report], error) {
	var resp model.List[model.Report]
	if err := rs.client.Do(ctx, Request{Path: "/api/reports", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (rs *ReportsService) Create(ctx context.Context, report model.Report) (*model.Report, error) {
	var created model.Report
	err := rs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/reports", Body: report}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (rs *ReportsService) Update(ctx context.Context, id string, changes map[string]any) (*model.Report, error) {
	var updated model.Report
	err := rs.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/reports/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (rs *ReportsService) Delete(ctx context.Context, id string) error {
	return rs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/reports/" + id}, nil)
}

func (rs *ReportsService) GetBySlug(ctx context.Context, slug string) (*model.Report, error) {
	var report model.Report
	if err := rs.client.Do(ctx, Request{Path: "/api/reports/by-slug/" + slug}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (rs *ReportsService) UpdateBySlug(ctx context.Context, slug string, changes map[string]any) (*model.Report, error) {
	var updated model.Report
	err := rs.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/reports/by-slug/" + slug, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (rs *ReportsService) DeleteBySlug(ctx context.Context, slug string) error {
	return rs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/reports/by-slug/" + slug}, nil)
}

// ImportResult summarizes a bulk import or maintenance run.
type ImportResult struct {
	Imported int      `json:"imported"`
	Updated  int      `json:"updated"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// Import submits pre-parsed report records for server-side import.
func (rs *ReportsService) Import(ctx context.Context, reports []model.Report) (*ImportResult, error) {
	var result ImportResult
	err := rs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/reports/import",
		Body:   map[string]any{"reports": reports},
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// BulkUpload sends a spreadsheet for server-side parsing and import.
func (rs *ReportsService) BulkUpload(ctx context.Context, fileName string, file io.Reader) (*ImportResult, error) {
	form, err := NewFormPayload(nil, "file", fileName, file)
	if err != nil {
		return nil, err
	}
	var result ImportResult
	err = rs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/reports/bulk-upload", Form: form}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CheckDuplicates reports which of the given titles already exist.
func (rs *ReportsService) CheckDuplicates(ctx context.Context, titles []string) ([]string, error) {
	var resp struct {
		Duplicates []string `json:"duplicates"`
	}
	err := rs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/reports/check-duplicates",
		Body:   map[string]any{"titles": titles},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Duplicates, nil
}

// SyncCategories re-links report category references after category edits.
func (rs *ReportsService) SyncCategories(ctx context.Context) (*ImportResult, error) {
	var result ImportResult
	err := rs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/reports/sync-categories"}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// MigrateSlugs regenerates slugs for legacy records.
func (rs *ReportsService) MigrateSlugs(ctx context.Context) (*ImportResult, error) {
	var result ImportResult
	err := rs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/reports/migrate-slugs"}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Export streams the catalogue in the backend's export format. The caller
// owns closing the returned body.
func (rs *ReportsService) Export(ctx context.Context, query ReportListQuery) (io.ReadCloser, string, error) {
	resp, err := rs.client.DoRaw(ctx, Request{Path: "/api/reports/export", Query: query.params()})
	if err != nil {
		return nil, "", err
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}
