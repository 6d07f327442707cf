package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// BlogsService manages the standalone blog section, distinct from Posts.
type BlogsService struct {
	client *Client
}

func (c *Client) Blogs() *BlogsService {
	return &BlogsService{client: c}
}

type BlogListQuery struct {
	Q      string
	Status string
	Author string
	Page   int
	Limit  int
}

func (q BlogListQuery) params() Params {
	return Params{
		"q":      q.Q,
		"status": q.Status,
		"author": q.Author,
		"page":   positiveInt(q.Page),
		"limit":  positiveInt(q.Limit),
	}
}

func (bs *BlogsService) List(ctx context.Context, query BlogListQuery) ([]model.Blog, error) {
	var resp model.List[model.Blog]
	if err := bs.client.Do(ctx, Request{Path: "/api/blogs", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (bs *BlogsService) Create(ctx context.Context, blog model.Blog) (*model.Blog, error) {
	var created model.Blog
	err := bs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/blogs", Body: blog}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the blog; the backend uses PUT for blogs.
func (bs *BlogsService) Update(ctx context.Context, id string, blog model.Blog) (*model.Blog, error) {
	var updated model.Blog
	err := bs.client.Do(ctx, Request{Method: http.MethodPut, Path: "/api/blogs/" + id, Body: blog}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (bs *BlogsService) Delete(ctx context.Context, id string) error {
	return bs.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/blogs/" + id}, nil)
}

func (bs *BlogsService) UploadCover(ctx context.Context, id, fileName string, file io.Reader) (*model.Blog, error) {
	form, err := NewFormPayload(nil, "cover", fileName, file)
	if err != nil {
		return nil, err
	}
	var updated model.Blog
	err = bs.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/blogs/" + id + "/cover", Form: form}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Export streams all blogs in the requested format ("csv" or "json"). The
// caller owns closing the returned body.
func (bs *BlogsService) Export(ctx context.Context, format string) (io.ReadCloser, string, error) {
	resp, err := bs.client.DoRaw(ctx, Request{Path: "/api/blogs/export/" + format})
	if err != nil {
		return nil, "", err
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

func (bs *BlogsService) StatsOverview(ctx context.Context) (*model.BlogStats, error) {
	var stats model.BlogStats
	if err := bs.client.Do(ctx, Request{Path: "/api/blogs/stats/overview"}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
