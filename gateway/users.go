package gateway

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// UsersService manages admin console accounts.
type UsersService struct {
	client *Client
}

func (c *Client) Users() *UsersService {
	return &UsersService{client: c}
}

type UserListQuery struct {
	Q      string
	Role   string
	Status string
	Page   int
	Limit  int
}

func (q UserListQuery) params() Params {
	return Params{
		"q":      q.Q,
		"role":   q.Role,
		"status": q.Status,
		"page":   positiveInt(q.Page),
		"limit":  positiveInt(q.Limit),
	}
}

func (us *UsersService) List(ctx context.Context, query UserListQuery) ([]model.User, error) {
	var resp model.List[model.User]
	if err := us.client.Do(ctx, Request{Path: "/api/users", Query: query.params()}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (us *UsersService) Create(ctx context.Context, user model.User) (*model.User, error) {
	var created model.User
	err := us.client.Do(ctx, Request{Method: http.MethodPost, Path: "/api/users", Body: user}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (us *UsersService) Update(ctx context.Context, id string, changes map[string]any) (*model.User, error) {
	var updated model.User
	err := us.client.Do(ctx, Request{Method: http.MethodPatch, Path: "/api/users/" + id, Body: changes}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (us *UsersService) Delete(ctx context.Context, id string) error {
	return us.client.Do(ctx, Request{Method: http.MethodDelete, Path: "/api/users/" + id}, nil)
}

// positiveInt renders n for the query string, treating zero as unset so it is
// omitted rather than sent literally.
func positiveInt(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
