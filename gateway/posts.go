package gateway

import (
	"context"
	"io"
	"net/http"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// PostsService manages blog/news posts.
type PostsService struct {
	client *Client
}

func (c *Client) Posts() *PostsService {
	return &PostsService{client: c}
}

type PostListQuery struct {
	Q        string
	Status   string
	Author   string
	Category string
	Page     int
	Limit    int
}

func (q PostListQuery) params() Params {
	return Params{
		"q":        q.Q,
		"status":   q.Status,
		"author":   q.Author,
		"category": q.Category,
		"page":     positiveInt(q.Page),
		"limit":    positiveInt(q.Limit),
	}
}

func (ps *PostsService) List(ctx context.Context, query PostListQuery) ([]model.Post, error) {
	var resp model.List[model.Post]
	if err := ps.client.Do(ctx, Request{Path: "/api/posts", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (ps *PostsService) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	var created model.Post
	err := ps.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/posts", Body: post}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (ps *PostsService) Update(ctx context.Context, id string, changes map[string]any) (*model.Post, error) {
	var updated model.Post
	err := ps.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/posts/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (ps *PostsService) Delete(ctx context.Context, id string) error {
	return ps.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/posts/" + id}, nil)
}

// UploadCover replaces the post's cover image.
func (ps *PostsService) UploadCover(ctx context.Context, id, fileName string, file io.Reader) (*model.Post, error) {
	form, err := NewFormPayload(nil, "cover", fileName, file)
	if err != nil {
		return nil, err
	}
	var updated model.Post
	err = ps.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/posts/" + id + "/cover", Form: form}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UploadImage uploads an inline editor image and returns its public URL.
func (ps *PostsService) UploadImage(ctx context.Context, fileName string, file io.Reader) (string, error) {
	form, err := NewFormPayload(nil, "image", fileName, file)
	if err != nil {
		return "", err
	}
	var resp struct {
		URL string `json:"url"`
	}
	err = ps.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/posts/upload-image", Form: form}, &resp)
	if err != nil {
		return "", err
	}
	return resp.URL, nil
}
