package gateway

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// CategoriesService manages the category tree, its subcategories, and the
// trending selections. Trending reads deliberately map a 404 to an empty
// result: a site that has never marked anything trending has no trending
// document at all.
type CategoriesService struct {
	client *Client
}

func (c *Client) Categories() *CategoriesService {
	return &CategoriesService{client: c}
}

func (cs *CategoriesService) List(ctx context.Context, q string) ([]model.Category, error) {
	var resp model.List[model.Category]
	if err := cs.client.Do(ctx, Request{Path: "/api/categories", Query: Params{"q": q}}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (cs *CategoriesService) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	var created model.Category
	err := cs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/categories", Body: category}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the category; the backend uses PUT here, not PATCH.
func (cs *CategoriesService) Update(ctx context.Context, id string, category model.Category) (*model.Category, error) {
	var updated model.Category
	err := cs.client.Do(ctx, Request{Method: http.MethodPut, Path: "/api/categories/" + id, Body: category}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (cs *CategoriesService) Delete(ctx context.Context, id string) error {
	return cs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/categories/" + id}, nil)
}

func (cs *CategoriesService) CreateSubcategory(ctx context.Context, categoryID string, sub model.Subcategory) (*model.Subcategory, error) {
	var created model.Subcategory
	err := cs.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/api/categories/" + categoryID + "/subcategories",
		Body:   sub,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (cs *CategoriesService) UpdateSubcategory(ctx context.Context, categoryID, subID string, sub model.Subcategory) (*model.Subcategory, error) {
	var updated model.Subcategory
	err := cs.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/api/categories/" + categoryID + "/subcategories/" + subID,
		Body:   sub,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (cs *CategoriesService) DeleteSubcategory(ctx context.Context, categoryID, subID string) error {
	return cs.client.Do(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/api/categories/" + categoryID + "/subcategories/" + subID,
	}, nil)
}

// Seed populates the default category tree on a fresh backend.
func (cs *CategoriesService) Seed(ctx context.Context) error {
	return cs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/categories/seed"}, nil)
}

// Trending returns the trending categories, or an empty slice when the
// backend has no trending document yet.
func (cs *CategoriesService) Trending(ctx context.Context) ([]model.Category, error) {
	var resp model.List[model.Category]
	err := cs.client.Do(ctx, Request{Path: "/api/categories/trending"}, &resp)
	if errors.Is(err, ErrTrendingNotFound) {
		return []model.Category{}, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// SetTrending toggles a category's trending flag.
func (cs *CategoriesService) SetTrending(ctx context.Context, id string, trending bool) error {
	return cs.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/api/categories/trending",
		Body:   map[string]any{"id": id, "trending": trending},
	}, nil)
}

// SubcategoryTrending returns the trending subcategories, empty when none
// have been marked yet.
func (cs *CategoriesService) SubcategoryTrending(ctx context.Context) ([]model.Subcategory, error) {
	var resp model.List[model.Subcategory]
	err := cs.client.Do(ctx, Request{Path: "/api/categories/subcategories/trending"}, &resp)
	if errors.Is(err, ErrTrendingNotFound) {
		return []model.Subcategory{}, nil
	}
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// BulkSubcategoryTrending replaces the trending subcategory selection in one
// call.
func (cs *CategoriesService) BulkSubcategoryTrending(ctx context.Context, ids []string) error {
	return cs.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/api/categories/subcategories/bulk-trending",
		Body:   map[string]any{"ids": ids},
	}, nil)
}
