package mockapi

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/bipulsingh126/biziwit-admin/model"
)

func decodeBody(r *http.Request, out any) error {
	defer r.Body.Close() //nolint:errcheck
	return json.NewDecoder(r.Body).Decode(out)
}

func listResponse[T any](items []T) model.List[T] {
	if items == nil {
		items = []T{}
	}
	return model.List[T]{Items: items, Total: len(items)}
}

// matches does a case-insensitive substring check across the given fields,
// mirroring the backend's q parameter.
func matches(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Users

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	role := r.URL.Query().Get("role")

	s.lock.Lock()
	defer s.lock.Unlock()
	var out []model.User
	for _, u := range s.users {
		if !matches(q, u.Name, u.Email) {
			continue
		}
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	writeJSON(w, http.StatusOK, listResponse(out))
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var user model.User
	if err := decodeBody(r, &user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user.ID = uuid.New().String()

	s.lock.Lock()
	s.users = append(s.users, user)
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var changes map[string]any
	if err := decodeBody(r, &changes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if name, ok := changes["name"].(string); ok {
			s.users[i].Name = name
		}
		if role, ok := changes["role"].(string); ok {
			s.users[i].Role = role
		}
		if status, ok := changes["status"].(string); ok {
			s.users[i].Status = status
		}
		writeJSON(w, http.StatusOK, s.users[i])
		return
	}
	writeError(w, http.StatusNotFound, "user not found")
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "user not found")
}

// Posts

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	s.lock.Lock()
	defer s.lock.Unlock()
	var out []model.Post
	for _, p := range s.posts {
		if !matches(q, p.Title, p.Author) {
			continue
		}
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	writeJSON(w, http.StatusOK, listResponse(out))
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var post model.Post
	if err := decodeBody(r, &post); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	post.ID = uuid.New().String()

	s.lock.Lock()
	s.posts = append(s.posts, post)
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, post)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var changes map[string]any
	if err := decodeBody(r, &changes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if title, ok := changes["title"].(string); ok {
			s.posts[i].Title = title
		}
		if status, ok := changes["status"].(string); ok {
			s.posts[i].Status = status
		}
		writeJSON(w, http.StatusOK, s.posts[i])
		return
	}
	writeError(w, http.StatusNotFound, "post not found")
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "post not found")
}

// Reports

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	status := r.URL.Query().Get("status")

	s.lock.Lock()
	defer s.lock.Unlock()
	var out []model.Report
	for _, rep := range s.reports {
		if !matches(q, rep.Title, rep.Summary) {
			continue
		}
		if category != "" && rep.Category != category {
			continue
		}
		if status != "" && rep.Status != status {
			continue
		}
		out = append(out, rep)
	}
	writeJSON(w, http.StatusOK, listResponse(out))
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var report model.Report
	if err := decodeBody(r, &report); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	report.ID = uuid.New().String()

	s.lock.Lock()
	s.reports = append(s.reports, report)
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, report)
}

func (s *Server) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var changes map[string]any
	if err := decodeBody(r, &changes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.reports {
		if s.reports[i].ID != id {
			continue
		}
		if title, ok := changes["title"].(string); ok {
			s.reports[i].Title = title
		}
		if status, ok := changes["status"].(string); ok {
			s.reports[i].Status = status
		}
		writeJSON(w, http.StatusOK, s.reports[i])
		return
	}
	writeError(w, http.StatusNotFound, "report not found")
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.reports {
		if s.reports[i].ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "report not found")
}

func (s *Server) handleExportReports(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	reports := make([]model.Report, len(s.reports))
	copy(reports, s.reports)
	s.lock.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="reports.csv"`)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"id", "title", "category", "status"})
	for _, rep := range reports {
		_ = writer.Write([]string{rep.ID, rep.Title, rep.Category, model.StatusOrDraft(rep.Status)})
	}
	writer.Flush()
}

// Inquiries

func (s *Server) handleListInquiries(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")

	s.lock.Lock()
	defer s.lock.Unlock()
	var out []model.Inquiry
	for _, inq := range s.inquiries {
		if !matches(q, inq.Name, inq.Email, inq.Subject) {
			continue
		}
		if status != "" && inq.Status != status {
			continue
		}
		out = append(out, inq)
	}
	writeJSON(w, http.StatusOK, listResponse(out))
}

func (s *Server) handleSubmitInquiry(w http.ResponseWriter, r *http.Request) {
	var inquiry model.Inquiry
	if err := decodeBody(r, &inquiry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	inquiry.ID = uuid.New().String()
	inquiry.Status = "new"

	s.lock.Lock()
	s.inquiries = append(s.inquiries, inquiry)
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, inquiry)
}

func (s *Server) handleBulkInquiries(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs    []string `json:"ids"`
		Status string   `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	updated := 0
	for _, id := range req.IDs {
		for i := range s.inquiries {
			if s.inquiries[i].ID == id {
				s.inquiries[i].Status = req.Status
				updated++
			}
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": updated})
}

func (s *Server) handleDeleteInquiry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.inquiries {
		if s.inquiries[i].ID == id {
			s.inquiries = append(s.inquiries[:i], s.inquiries[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeError(w, http.StatusNotFound, "inquiry not found")
}

func (s *Server) handleExportInquiries(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	inquiries := make([]model.Inquiry, len(s.inquiries))
	copy(inquiries, s.inquiries)
	s.lock.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="inquiries.csv"`)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"id", "name", "email", "subject", "status"})
	for _, inq := range inquiries {
		_ = writer.Write([]string{inq.ID, inq.Name, inq.Email, inq.Subject, inq.Status})
	}
	writer.Flush()
}

func (s *Server) handleInquiryMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.InquiryMetadata{
		Types:    []string{"general", "sales", "report"},
		Statuses: []string{"new", "in-progress", "resolved"},
	})
}

// Categories

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	s.lock.Lock()
	defer s.lock.Unlock()
	var out []model.Category
	for _, c := range s.categories {
		if matches(q, c.Name) {
			out = append(out, c)
		}
	}
	writeJSON(w, http.StatusOK, listResponse(out))
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var category model.Category
	if err := decodeBody(r, &category); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	category.ID = uuid.New().String()

	s.lock.Lock()
	s.categories = append(s.categories, category)
	s.lock.Unlock()
	writeJSON(w, http.StatusCreated, category)
}

// handleTrendingCategories returns 404 until something has been marked
// trending, matching the real backend's missing-document behavior.
func (s *Server) handleTrendingCategories(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.trending == nil {
		writeError(w, http.StatusNotFound, "no trending categories")
		return
	}
	writeJSON(w, http.StatusOK, listResponse(s.trending))
}

func (s *Server) handleSetTrending(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       string `json:"id"`
		Trending bool   `json:"trending"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()
	trending := make([]model.Category, 0, len(s.categories))
	for i := range s.categories {
		if s.categories[i].ID == req.ID {
			s.categories[i].Trending = req.Trending
		}
		if s.categories[i].Trending {
			trending = append(trending, s.categories[i])
		}
	}
	s.trending = trending
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
