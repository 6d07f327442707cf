package listctrl_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/biziwit-admin/gateway"
	"github.com/bipulsingh126/biziwit-admin/listctrl"
)

type item struct {
	ID   string
	Name string
}

func itemID(i item) string { return i.ID }

// recorder is a scripted fetch fake: it records every query it is called
// with and returns the next scripted response.
type recorder struct {
	lock      sync.Mutex
	queries   []listctrl.Query
	responses [][]item
	err       error
}

func (r *recorder) fetch(ctx context.Context, q listctrl.Query) ([]item, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.queries = append(r.queries, q)
	if r.err != nil {
		return nil, r.err
	}
	if len(r.responses) == 0 {
		return []item{}, nil
	}
	next := r.responses[0]
	r.responses = r.responses[1:]
	return next, nil
}

func (r *recorder) calls() []listctrl.Query {
	r.lock.Lock()
	defer r.lock.Unlock()
	out := make([]listctrl.Query, len(r.queries))
	copy(out, r.queries)
	return out
}

func newController(t *testing.T, cfg listctrl.Config[item]) *listctrl.Controller[item] {
	t.Helper()
	if cfg.ID == nil {
		cfg.ID = itemID
	}
	ctrl, err := listctrl.New(cfg)
	require.NoError(t, err)
	t.Cleanup(ctrl.Close)
	return ctrl
}

func TestController_LoadReplacesWholesale(t *testing.T) {
	rec := &recorder{responses: [][]item{
		{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}},
		{{ID: "3", Name: "third"}},
		{},
	}}
	ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})

	ctrl.Load(context.Background())
	require.Equal(t, []item{{ID: "1", Name: "first"}, {ID: "2", Name: "second"}}, ctrl.Items())

	ctrl.Load(context.Background())
	require.Equal(t, []item{{ID: "3", Name: "third"}}, ctrl.Items())

	ctrl.Load(context.Background())
	require.Empty(t, ctrl.Items())
	require.False(t, ctrl.Loading())
	require.Empty(t, ctrl.LastError())
}

func TestController_LoadFailure(t *testing.T) {
	const networkMsg = "Network error. Please check your connection and try again."

	rec := &recorder{responses: [][]item{{{ID: "1", Name: "kept?"}}}}
	ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
	ctrl.Load(context.Background())
	require.Len(t, ctrl.Items(), 1)

	rec.lock.Lock()
	rec.err = errors.New(networkMsg)
	rec.lock.Unlock()

	ctrl.Load(context.Background())
	require.Empty(t, ctrl.Items())
	require.Equal(t, networkMsg, ctrl.LastError())
	require.False(t, ctrl.Loading())
}

func TestController_NilResponseDefaultsToEmpty(t *testing.T) {
	ctrl := newController(t, listctrl.Config[item]{
		Fetch: func(ctx context.Context, q listctrl.Query) ([]item, error) { return nil, nil },
	})
	ctrl.Load(context.Background())
	require.NotNil(t, ctrl.Items())
	require.Empty(t, ctrl.Items())
}

func TestController_Debounce(t *testing.T) {
	rec := &recorder{}
	ctrl := newController(t, listctrl.Config[item]{
		Fetch:    rec.fetch,
		Debounce: 80 * time.Millisecond,
	})

	ctx := context.Background()
	ctrl.SetSearch(ctx, "a")
	time.Sleep(20 * time.Millisecond)
	ctrl.SetSearch(ctx, "al")
	time.Sleep(20 * time.Millisecond)
	ctrl.SetSearch(ctx, "ali")

	time.Sleep(250 * time.Millisecond)

	calls := rec.calls()
	require.Len(t, calls, 1)
	require.Equal(t, "ali", calls[0].Search)
}

func TestController_CloseCancelsPendingLoad(t *testing.T) {
	rec := &recorder{}
	ctrl := newController(t, listctrl.Config[item]{
		Fetch:    rec.fetch,
		Debounce: 50 * time.Millisecond,
	})

	ctrl.SetSearch(context.Background(), "a")
	ctrl.Close()
	time.Sleep(150 * time.Millisecond)
	require.Empty(t, rec.calls())
}

func TestController_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	fetch := func(ctx context.Context, q listctrl.Query) ([]item, error) {
		if q.Search == "slow" {
			<-release
			return []item{{ID: "stale"}}, nil
		}
		return []item{{ID: "fresh"}}, nil
	}
	ctrl := newController(t, listctrl.Config[item]{Fetch: fetch, Debounce: time.Hour})

	ctx := context.Background()
	ctrl.SetSearch(ctx, "slow")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ctrl.Load(ctx)
	}()

	// let the slow load be issued before the fast one supersedes it
	time.Sleep(30 * time.Millisecond)
	ctrl.SetSearch(ctx, "fresh")
	ctrl.Load(ctx)
	require.Equal(t, []item{{ID: "fresh"}}, ctrl.Items())

	close(release)
	wg.Wait()

	// the late-arriving slow response did not overwrite the newer state
	require.Equal(t, []item{{ID: "fresh"}}, ctrl.Items())
	require.False(t, ctrl.Loading())
}

func TestController_SelectAllToggle(t *testing.T) {
	rec := &recorder{responses: [][]item{
		{{ID: "1"}, {ID: "2"}, {ID: "3"}},
	}}
	ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
	ctrl.Load(context.Background())

	t.Run("toggling twice restores the previous selection", func(t *testing.T) {
		ctrl.ToggleSelect("2")
		require.Equal(t, []string{"2"}, ctrl.Selected())

		ctrl.ToggleSelectAll()
		require.Equal(t, []string{"1", "2", "3"}, ctrl.Selected())

		ctrl.ToggleSelectAll()
		require.Empty(t, ctrl.Selected())
	})

	t.Run("selection ignores ids not in the collection", func(t *testing.T) {
		ctrl.ToggleSelect("ghost")
		require.Empty(t, ctrl.Selected())
	})

	t.Run("toggle all on empty items is a no-op", func(t *testing.T) {
		empty := newController(t, listctrl.Config[item]{Fetch: (&recorder{}).fetch})
		empty.Load(context.Background())
		empty.ToggleSelectAll()
		require.Empty(t, empty.Selected())
	})
}

func TestController_SelectionClearedOnLoad(t *testing.T) {
	rec := &recorder{responses: [][]item{
		{{ID: "1"}, {ID: "2"}},
		{{ID: "1"}, {ID: "2"}},
	}}
	ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
	ctrl.Load(context.Background())
	ctrl.ToggleSelect("1")
	require.Len(t, ctrl.Selected(), 1)

	ctrl.Load(context.Background())
	require.Empty(t, ctrl.Selected())
}

func TestController_BulkAct(t *testing.T) {
	t.Run("fans out once per id then reloads once", func(t *testing.T) {
		rec := &recorder{responses: [][]item{
			{{ID: "1"}, {ID: "2"}, {ID: "3"}},
			{{ID: "remaining"}},
		}}
		ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
		ctrl.Load(context.Background())
		ctrl.ToggleSelectAll()

		var lock sync.Mutex
		acted := map[string]int{}
		err := ctrl.BulkAct(context.Background(), func(ctx context.Context, id string) error {
			lock.Lock()
			defer lock.Unlock()
			acted[id]++
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, map[string]int{"1": 1, "2": 1, "3": 1}, acted)
		require.Empty(t, ctrl.Selected())
		require.Len(t, rec.calls(), 2) // initial load + post-bulk reload
		require.Equal(t, []item{{ID: "remaining"}}, ctrl.Items())
	})

	t.Run("partial failure reports one aggregate error", func(t *testing.T) {
		rec := &recorder{responses: [][]item{
			{{ID: "1"}, {ID: "2"}, {ID: "3"}},
			{{ID: "1"}},
		}}
		ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
		ctrl.Load(context.Background())
		ctrl.ToggleSelectAll()

		err := ctrl.BulkAct(context.Background(), func(ctx context.Context, id string) error {
			if id != "1" {
				return errors.New("boom")
			}
			return nil
		})
		require.EqualError(t, err, "bulk action failed for 2 of 3 items")
		require.Equal(t, "bulk action failed for 2 of 3 items", ctrl.LastError())
		require.Empty(t, ctrl.Selected())
		require.Len(t, rec.calls(), 2)
	})

	t.Run("empty selection does nothing", func(t *testing.T) {
		rec := &recorder{}
		ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
		require.NoError(t, ctrl.BulkAct(context.Background(), func(ctx context.Context, id string) error {
			t.Fatal("should not be called")
			return nil
		}))
		require.Empty(t, rec.calls())
	})
}

func TestController_BulkDelete(t *testing.T) {
	rec := &recorder{responses: [][]item{
		{{ID: "1"}, {ID: "2"}},
		{},
	}}
	var lock sync.Mutex
	deleted := []string{}
	ctrl := newController(t, listctrl.Config[item]{
		Fetch: rec.fetch,
		Delete: func(ctx context.Context, id string) error {
			lock.Lock()
			defer lock.Unlock()
			deleted = append(deleted, id)
			return nil
		},
	})
	ctrl.Load(context.Background())
	ctrl.ToggleSelectAll()

	require.NoError(t, ctrl.BulkDelete(context.Background()))
	require.ElementsMatch(t, []string{"1", "2"}, deleted)
	require.Empty(t, ctrl.Selected())
	require.Len(t, rec.calls(), 2)
}

func TestController_Mutations(t *testing.T) {
	t.Run("create reloads on success", func(t *testing.T) {
		rec := &recorder{responses: [][]item{{{ID: "1", Name: "created"}}}}
		created := false
		ctrl := newController(t, listctrl.Config[item]{
			Fetch: rec.fetch,
			Create: func(ctx context.Context, it item) error {
				created = true
				return nil
			},
		})

		require.NoError(t, ctrl.CreateItem(context.Background(), item{Name: "created"}))
		require.True(t, created)
		require.Equal(t, []item{{ID: "1", Name: "created"}}, ctrl.Items())
	})

	t.Run("failed mutation records the message and skips the reload", func(t *testing.T) {
		rec := &recorder{}
		ctrl := newController(t, listctrl.Config[item]{
			Fetch: rec.fetch,
			Delete: func(ctx context.Context, id string) error {
				return errors.New("delete rejected")
			},
		})

		err := ctrl.DeleteItem(context.Background(), "1")
		require.EqualError(t, err, "delete rejected")
		require.Equal(t, "delete rejected", ctrl.LastError())
		require.Empty(t, rec.calls())
	})

	t.Run("unconfigured mutations are an error", func(t *testing.T) {
		ctrl := newController(t, listctrl.Config[item]{Fetch: (&recorder{}).fetch})
		require.Error(t, ctrl.CreateItem(context.Background(), item{}))
		require.Error(t, ctrl.UpdateItem(context.Background(), "1", item{}))
		require.Error(t, ctrl.DeleteItem(context.Background(), "1"))
		require.Error(t, ctrl.BulkDelete(context.Background()))
	})
}

func TestController_PatchItem(t *testing.T) {
	rec := &recorder{responses: [][]item{{{ID: "1", Name: "before"}}}}
	ctrl := newController(t, listctrl.Config[item]{Fetch: rec.fetch})
	ctrl.Load(context.Background())

	require.True(t, ctrl.PatchItem("1", func(it *item) { it.Name = "after" }))
	require.Equal(t, []item{{ID: "1", Name: "after"}}, ctrl.Items())

	require.False(t, ctrl.PatchItem("missing", func(it *item) { it.Name = "x" }))
}

func TestController_TrendingMissIsEmptyState(t *testing.T) {
	ctrl := newController(t, listctrl.Config[item]{
		Fetch: func(ctx context.Context, q listctrl.Query) ([]item, error) {
			return nil, gateway.ErrTrendingNotFound
		},
		EmptyOnTrendingMiss: true,
	})

	ctrl.Load(context.Background())
	require.Empty(t, ctrl.Items())
	require.Empty(t, ctrl.LastError())
	require.False(t, ctrl.Loading())
}

func TestController_QueryState(t *testing.T) {
	ctrl := newController(t, listctrl.Config[item]{
		Fetch:    (&recorder{}).fetch,
		Debounce: time.Hour,
	})
	ctx := context.Background()

	ctrl.SetSearch(ctx, "al")
	ctrl.SetFilter(ctx, "status", "live")
	ctrl.SetPage(ctx, 3)

	q := ctrl.Query()
	require.Equal(t, "al", q.Search)
	require.Equal(t, map[string]string{"status": "live"}, q.Filters)
	require.Equal(t, 3, q.Page)

	ctrl.SetFilter(ctx, "status", "")
	require.Empty(t, ctrl.Query().Filters)

	// search and filter changes reset pagination
	ctrl.SetPage(ctx, 5)
	ctrl.SetSearch(ctx, "new")
	require.Equal(t, 0, ctrl.Query().Page)
}

func TestController_RequiredConfig(t *testing.T) {
	_, err := listctrl.New(listctrl.Config[item]{ID: itemID})
	require.Error(t, err)

	_, err = listctrl.New(listctrl.Config[item]{
		Fetch: func(ctx context.Context, q listctrl.Query) ([]item, error) { return nil, nil },
	})
	require.Error(t, err)
}
