package table

import (
	"context"
	"sync"
)

// FetchFunc loads a fresh, complete row set. total is the host-reported row
// count and is only used for server-side paging.
type FetchFunc func(ctx context.Context) (rows []Row, total int, err error)

// Refresher runs fetches for a Table on background goroutines. When fetches
// overlap, only the most recently started one is applied; older results are
// dropped and their contexts cancelled.
type Refresher struct {
	mu       sync.Mutex
	table    *Table
	cancel   context.CancelFunc
	lastErr  error
	onUpdate func(View, error)
	wg       sync.WaitGroup
}

// NewRefresher wraps t. onUpdate, if non-nil, is called after each applied
// result or failure with the table lock released.
func NewRefresher(t *Table, onUpdate func(View, error)) *Refresher {
	return &Refresher{table: t, onUpdate: onUpdate}
}

// Refresh starts fetch and supersedes any fetch still in flight.
func (r *Refresher) Refresh(ctx context.Context, fetch FetchFunc) {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	token := r.table.BeginRefresh()
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer cancel()

		rows, total, err := fetch(fctx)

		r.mu.Lock()
		var applied bool
		if err != nil {
			applied = r.table.Abandon(token)
		} else {
			applied = r.table.Deliver(token, rows, total)
		}
		if applied {
			r.lastErr = err
		}
		view := r.table.View()
		r.mu.Unlock()

		if applied && r.onUpdate != nil {
			r.onUpdate(view, err)
		}
	}()
}

// Do runs fn with exclusive access to the table.
func (r *Refresher) Do(fn func(t *Table)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.table)
}

// View returns the current view.
func (r *Refresher) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.View()
}

// Err returns the error of the most recently applied fetch.
func (r *Refresher) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Wait blocks until all started fetches have returned.
func (r *Refresher) Wait() {
	r.wg.Wait()
}

// Stop cancels the fetch in flight, if any.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
