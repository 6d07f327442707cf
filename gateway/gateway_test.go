package gateway_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/biziwit-admin/gateway"
	"github.com/bipulsingh126/biziwit-admin/session"
)

func newTestClient(t *testing.T, handler http.Handler, options ...gateway.Option) (*gateway.Client, *session.Session, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sess, err := session.New(session.NewMemoryStore())
	require.NoError(t, err)

	client, err := gateway.New(server.URL, sess, options...)
	require.NoError(t, err)

	return client, sess, server
}

func TestClient_BearerHeader(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	t.Run("no token means no header", func(t *testing.T) {
		client, _, _ := newTestClient(t, handler)
		var out map[string]any
		require.NoError(t, client.Do(context.Background(), gateway.Request{Path: "/api/users"}, &out))
		require.Empty(t, gotAuth)
	})

	t.Run("configured token is attached", func(t *testing.T) {
		client, _, _ := newTestClient(t, handler)
		require.NoError(t, client.ConfigureToken("abc"))
		var out map[string]any
		require.NoError(t, client.Do(context.Background(), gateway.Request{Path: "/api/users"}, &out))
		require.Equal(t, "Bearer abc", gotAuth)
	})

	t.Run("cleared token is not attached", func(t *testing.T) {
		client, _, _ := newTestClient(t, handler)
		require.NoError(t, client.ConfigureToken("abc"))
		require.NoError(t, client.ClearToken())
		var out map[string]any
		require.NoError(t, client.Do(context.Background(), gateway.Request{Path: "/api/users"}, &out))
		require.Empty(t, gotAuth)
	})
}

func TestClient_SessionExpired(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	t.Run("401 clears token and raises the event", func(t *testing.T) {
		expiries := 0
		client, sess, _ := newTestClient(t, handler, gateway.WithOnSessionExpired(func() { expiries++ }))
		require.NoError(t, client.ConfigureToken("abc"))

		err := client.Do(context.Background(), gateway.Request{Path: "/api/users"}, nil)
		require.ErrorIs(t, err, gateway.ErrSessionExpired)

		_, ok := sess.Token()
		require.False(t, ok)
		require.Equal(t, 1, expiries)
	})

	t.Run("concurrent 401s fire the event once", func(t *testing.T) {
		var lock sync.Mutex
		expiries := 0
		client, _, _ := newTestClient(t, handler, gateway.WithOnSessionExpired(func() {
			lock.Lock()
			expiries++
			lock.Unlock()
		}))
		require.NoError(t, client.ConfigureToken("abc"))

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := client.Do(context.Background(), gateway.Request{Path: "/api/users"}, nil)
				require.ErrorIs(t, err, gateway.ErrSessionExpired)
			}()
		}
		wg.Wait()
		require.Equal(t, 1, expiries)
	})

	t.Run("new token re-arms the event", func(t *testing.T) {
		expiries := 0
		client, _, _ := newTestClient(t, handler, gateway.WithOnSessionExpired(func() { expiries++ }))

		require.NoError(t, client.ConfigureToken("first"))
		_ = client.Do(context.Background(), gateway.Request{Path: "/api/users"}, nil)
		require.NoError(t, client.ConfigureToken("second"))
		_ = client.Do(context.Background(), gateway.Request{Path: "/api/users"}, nil)

		require.Equal(t, 2, expiries)
	})
}

func TestClient_NotFound(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such record"}`))
	})

	t.Run("trending path maps to the sentinel", func(t *testing.T) {
		client, _, _ := newTestClient(t, handler)
		err := client.Do(context.Background(), gateway.Request{Path: "/api/categories/trending"}, nil)
		require.ErrorIs(t, err, gateway.ErrTrendingNotFound)
		require.Equal(t, "404", err.Error())
	})

	t.Run("other paths are a plain status error", func(t *testing.T) {
		client, _, _ := newTestClient(t, handler)
		err := client.Do(context.Background(), gateway.Request{Path: "/api/users/x"}, nil)
		require.NotErrorIs(t, err, gateway.ErrTrendingNotFound)

		var statusErr *gateway.StatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, http.StatusNotFound, statusErr.Status)
		require.Equal(t, "no such record", statusErr.Message)
	})
}

func TestClient_ErrorMessages(t *testing.T) {
	t.Run("json error body message is surfaced", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"title is required"}`))
		}))
		err := client.Do(context.Background(), gateway.Request{Path: "/api/reports"}, nil)
		require.EqualError(t, err, "title is required")
	})

	t.Run("non-json error body falls back to status", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("bad gateway"))
		}))
		err := client.Do(context.Background(), gateway.Request{Path: "/api/reports"}, nil)
		require.EqualError(t, err, "HTTP 502")
	})

	t.Run("unreachable server is a network error", func(t *testing.T) {
		sess, err := session.New(session.NewMemoryStore())
		require.NoError(t, err)
		client, err := gateway.New("http://127.0.0.1:1", sess)
		require.NoError(t, err)

		callErr := client.Do(context.Background(), gateway.Request{Path: "/api/users"}, nil)
		require.ErrorIs(t, callErr, gateway.ErrNetwork)
	})
}

func TestClient_Bodies(t *testing.T) {
	t.Run("json body sets content type", func(t *testing.T) {
		var gotContentType, gotBody string
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))

		err := client.Do(context.Background(), gateway.Request{
			Method: http.MethodPost,
			Path:   "/api/posts",
			Body:   map[string]string{"title": "hello"},
		}, nil)
		require.NoError(t, err)
		require.Equal(t, "application/json", gotContentType)
		require.JSONEq(t, `{"title":"hello"}`, gotBody)
	})

	t.Run("multipart body keeps the writer boundary", func(t *testing.T) {
		var gotContentType string
		var gotFile string
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, r.ParseMultipartForm(1<<20))
			file, _, err := r.FormFile("cover")
			require.NoError(t, err)
			raw, _ := io.ReadAll(file)
			gotFile = string(raw)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		}))

		form, err := gateway.NewFormPayload(nil, "cover", "cover.png", strings.NewReader("png-bytes"))
		require.NoError(t, err)

		err = client.Do(context.Background(), gateway.Request{
			Method: http.MethodPost,
			Path:   "/api/posts/1/cover",
			Form:   form,
		}, nil)
		require.NoError(t, err)
		require.Contains(t, gotContentType, "multipart/form-data; boundary=")
		require.Equal(t, "png-bytes", gotFile)
	})

	t.Run("raw responses pass through for downloads", func(t *testing.T) {
		client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write([]byte("id,title\n1,Report\n"))
		}))

		resp, err := client.DoRaw(context.Background(), gateway.Request{Path: "/api/reports/export"})
		require.NoError(t, err)
		defer resp.Body.Close() //nolint:errcheck

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "id,title\n1,Report\n", string(raw))
		require.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	})
}

func TestClient_QueryEncoding(t *testing.T) {
	var gotQuery string
	client, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))

	err := client.Do(context.Background(), gateway.Request{
		Path:  "/api/users",
		Query: gateway.Params{"q": "alice", "role": "", "page": "2"},
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "page=2&q=alice", gotQuery)
}
