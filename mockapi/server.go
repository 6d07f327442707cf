// Package mockapi is an in-process stand-in for the admin backend. It
// implements enough of the REST contract for integration tests and local
// development: bearer-token auth, the collection endpoints with q filtering,
// the trending 404 behavior and the CSV export.
package mockapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bipulsingh126/biziwit-admin/model"
)

// Options configure the mock backend's single admin account.
type Options struct {
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	Logger        zerolog.Logger
}

// Server is an http.Handler implementing the mock backend.
type Server struct {
	router     *mux.Router
	logger     zerolog.Logger
	jwtSecret  []byte
	adminEmail string
	adminHash  []byte

	lock       sync.Mutex
	users      []model.User
	posts      []model.Post
	reports    []model.Report
	inquiries  []model.Inquiry
	categories []model.Category
	trending   []model.Category // nil until something is marked trending
}

// New hashes the admin credential and wires the routes.
func New(opts Options) (*Server, error) {
	if opts.AdminEmail == "" || opts.AdminPassword == "" {
		return nil, errors.New("[mockapi.New] admin credentials are required")
	}
	if opts.JWTSecret == "" {
		return nil, errors.New("[mockapi.New] JWT secret is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "[mockapi.New] bcrypt.GenerateFromPassword")
	}

	s := &Server{
		router:     mux.NewRouter(),
		logger:     opts.Logger,
		jwtSecret:  []byte(opts.JWTSecret),
		adminEmail: opts.AdminEmail,
		adminHash:  hash,
	}
	s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("mockapi request")
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := s.router

	r.HandleFunc("/api/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/logout", s.authed(s.handleLogout)).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", s.authed(s.handleMe)).Methods(http.MethodGet)

	r.HandleFunc("/api/users", s.authed(s.handleListUsers)).Methods(http.MethodGet)
	r.HandleFunc("/api/users", s.authed(s.handleCreateUser)).Methods(http.MethodPost)
	r.HandleFunc("/api/users/{id}", s.authed(s.handleUpdateUser)).Methods(http.MethodPatch)
	r.HandleFunc("/api/users/{id}", s.authed(s.handleDeleteUser)).Methods(http.MethodDelete)

	r.HandleFunc("/api/posts", s.authed(s.handleListPosts)).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", s.authed(s.handleCreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{id}", s.authed(s.handleUpdatePost)).Methods(http.MethodPatch)
	r.HandleFunc("/api/posts/{id}", s.authed(s.handleDeletePost)).Methods(http.MethodDelete)

	r.HandleFunc("/api/reports", s.authed(s.handleListReports)).Methods(http.MethodGet)
	r.HandleFunc("/api/reports", s.authed(s.handleCreateReport)).Methods(http.MethodPost)
	r.HandleFunc("/api/reports/export", s.authed(s.handleExportReports)).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/{id}", s.authed(s.handleUpdateReport)).Methods(http.MethodPatch)
	r.HandleFunc("/api/reports/{id}", s.authed(s.handleDeleteReport)).Methods(http.MethodDelete)

	r.HandleFunc("/api/inquiries", s.authed(s.handleListInquiries)).Methods(http.MethodGet)
	r.HandleFunc("/api/inquiries/submit", s.handleSubmitInquiry).Methods(http.MethodPost)
	r.HandleFunc("/api/inquiries/bulk", s.authed(s.handleBulkInquiries)).Methods(http.MethodPost)
	r.HandleFunc("/api/inquiries/export/csv", s.authed(s.handleExportInquiries)).Methods(http.MethodGet)
	r.HandleFunc("/api/inquiries/metadata", s.authed(s.handleInquiryMetadata)).Methods(http.MethodGet)
	r.HandleFunc("/api/inquiries/{id}", s.authed(s.handleDeleteInquiry)).Methods(http.MethodDelete)

	r.HandleFunc("/api/categories", s.authed(s.handleListCategories)).Methods(http.MethodGet)
	r.HandleFunc("/api/categories", s.authed(s.handleCreateCategory)).Methods(http.MethodPost)
	r.HandleFunc("/api/categories/trending", s.authed(s.handleTrendingCategories)).Methods(http.MethodGet)
	r.HandleFunc("/api/categories/trending", s.authed(s.handleSetTrending)).Methods(http.MethodPut)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
