package listctrl

import (
	"context"
	"fmt"
	"sync"
)

// ToggleSelect flips one id in or out of the selection. Ids not present in
// the current collection are ignored so the selection stays a subset of the
// visible items.
func (c *Controller[T]) ToggleSelect(id string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if !c.visibleLocked(id) {
		return
	}
	if _, ok := c.selection[id]; ok {
		delete(c.selection, id)
		return
	}
	c.selection[id] = struct{}{}
}

// ToggleSelectAll selects exactly the ids currently visible, or clears the
// selection when everything visible is already selected. Two invocations in
// a row with no intervening items change are a no-op pair.
func (c *Controller[T]) ToggleSelectAll() {
	c.lock.Lock()
	defer c.lock.Unlock()

	allSelected := len(c.items) > 0
	for _, item := range c.items {
		if _, ok := c.selection[c.cfg.ID(item)]; !ok {
			allSelected = false
			break
		}
	}

	if allSelected {
		c.selection = map[string]struct{}{}
		return
	}
	c.selection = make(map[string]struct{}, len(c.items))
	for _, item := range c.items {
		c.selection[c.cfg.ID(item)] = struct{}{}
	}
}

// IsSelected reports whether the id is currently selected.
func (c *Controller[T]) IsSelected(id string) bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	_, ok := c.selection[id]
	return ok
}

// Selected returns the selected ids in current item order.
func (c *Controller[T]) Selected() []string {
	c.lock.Lock()
	defer c.lock.Unlock()
	ids := make([]string, 0, len(c.selection))
	for _, item := range c.items {
		id := c.cfg.ID(item)
		if _, ok := c.selection[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *Controller[T]) visibleLocked(id string) bool {
	for _, item := range c.items {
		if c.cfg.ID(item) == id {
			return true
		}
	}
	return false
}

// BulkAct runs act once per selected id concurrently, waits for all to
// settle, clears the selection and reloads exactly once. Partial failure is
// reported as a single aggregate error; which ids failed is not broken out.
func (c *Controller[T]) BulkAct(ctx context.Context, act func(ctx context.Context, id string) error) error {
	ids := c.Selected()
	if len(ids) == 0 {
		return nil
	}

	failures := make([]error, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			failures[i] = act(ctx, id)
		}(i, id)
	}
	wg.Wait()

	failed := 0
	for _, err := range failures {
		if err != nil {
			failed++
		}
	}

	c.lock.Lock()
	c.selection = map[string]struct{}{}
	c.lock.Unlock()

	c.Load(ctx)

	if failed > 0 {
		err := fmt.Errorf("bulk action failed for %d of %d items", failed, len(ids))
		c.lock.Lock()
		c.lastError = err.Error()
		c.lock.Unlock()
		return err
	}
	return nil
}

// BulkDelete fans the configured delete out across the selection.
func (c *Controller[T]) BulkDelete(ctx context.Context) error {
	if c.cfg.Delete == nil {
		return fmt.Errorf("[Controller.BulkDelete] no Delete configured")
	}
	return c.BulkAct(ctx, c.cfg.Delete)
}
