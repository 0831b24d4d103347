// Package pool provides the worker-pool abstraction the deblock
// Dispatcher uses to fan stripe tasks out across goroutines (§4.5, §6).
package pool

import (
	"golang.org/x/sync/errgroup"
)

// Pool runs a batch of tasks and waits for all of them to finish: callers
// call Submit for every task in one pass, then WaitAll once before starting
// the next pass. Both implementations here reset in WaitAll, so the same
// Pool can run the next batch.
type Pool interface {
	// Submit schedules fn to run, possibly concurrently with other
	// submitted tasks. fn's error, if any, is reported by WaitAll.
	Submit(fn func() error)

	// WaitAll blocks until every submitted task has returned, then
	// returns the first non-nil error reported by any of them.
	WaitAll() error
}

// Serial runs submitted tasks synchronously, in submission order, on the
// calling goroutine; once a task returns an error, later tasks are skipped
// until WaitAll reports it. It is the Dispatcher's fallback when no
// concurrency is requested (mirrors the reference decoder's
// zero-worker-threads path).
type Serial struct {
	err error
}

// NewSerial constructs a Serial pool.
func NewSerial() *Serial {
	return &Serial{}
}

// Submit implements Pool.
func (p *Serial) Submit(fn func() error) {
	if p.err != nil {
		return
	}
	p.err = fn()
}

// WaitAll implements Pool.
func (p *Serial) WaitAll() error {
	err := p.err
	p.err = nil
	return err
}

// ErrGroup runs submitted tasks concurrently via golang.org/x/sync/errgroup,
// bounded by an optional concurrency limit.
type ErrGroup struct {
	limit int
	g     *errgroup.Group
}

// NewErrGroup constructs an ErrGroup pool. limit <= 0 means unbounded
// concurrency.
func NewErrGroup(limit int) *ErrGroup {
	g := new(errgroup.Group)
	if limit > 0 {
		g.SetLimit(limit)
	}
	return &ErrGroup{limit: limit, g: g}
}

// Submit implements Pool.
func (p *ErrGroup) Submit(fn func() error) {
	p.g.Go(fn)
}

// WaitAll implements Pool.
func (p *ErrGroup) WaitAll() error {
	err := p.g.Wait()
	p.g = new(errgroup.Group)
	if p.limit > 0 {
		p.g.SetLimit(p.limit)
	}
	return err
}
