// Package catalog owns the exercise collection behind the browse view.
//
// A Controller turns filter selections and search terms into fetches,
// collapses every failure to an empty collection and publishes the result
// into a state.Store. Each fetch takes a generation number; a completion is
// applied only while its generation is still the latest one issued, so a
// slow response can never overwrite a newer one.
package catalog

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/paginate"
	"github.com/five82/reps/internal/rapidapi"
	"github.com/five82/reps/internal/state"
)

// AllBodyParts is the filter value meaning "no filter".
const AllBodyParts = "all"

// Source is the subset of the ExerciseDB client the controller needs.
type Source interface {
	Exercises(ctx context.Context) rapidapi.Result[[]exercisedb.Exercise]
	ByBodyPart(ctx context.Context, part string) rapidapi.Result[[]exercisedb.Exercise]
	BodyParts(ctx context.Context) rapidapi.Result[[]string]
}

// Outcome describes what a fetch did to the collection.
type Outcome struct {
	Generation uint64
	// Applied is false when the fetch was superseded or skipped.
	Applied bool
	// Skipped is set for an empty search term; nothing was fetched.
	Skipped bool
	Count   int
	Failure *rapidapi.Failure
}

// Controller coordinates fetches for the browse view.
type Controller struct {
	source   Source
	store    *state.Store
	logger   *zap.Logger
	pageSize int

	mu         sync.Mutex
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPageSize overrides paginate.DefaultPageSize.
func WithPageSize(size int) Option {
	return func(c *Controller) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// New returns a Controller publishing into store. A nil store is replaced
// with a fresh one.
func New(source Source, store *state.Store, opts ...Option) *Controller {
	c := &Controller{
		source:   source,
		logger:   zap.NewNop(),
		pageSize: paginate.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	if store == nil {
		store = state.NewStore(c.pageSize)
	}
	c.store = store
	return c
}

// Store returns the store the controller publishes into.
func (c *Controller) Store() *state.Store {
	return c.store
}

// LoadBodyParts fetches the filter choices. The result always starts with
// AllBodyParts; a failed fetch leaves only that entry and is returned so
// callers can decide whether trying again makes sense.
func (c *Controller) LoadBodyParts(ctx context.Context) ([]string, *rapidapi.Failure) {
	res := c.source.BodyParts(ctx)
	fetched, ok := res.Value()
	if !ok {
		c.logger.Info("body part list unavailable", zap.Error(res.Err()))
	}
	parts := BodyPartChoices(fetched)
	c.store.SetBodyParts(parts)
	return parts, res.Failure()
}

// BodyPartChoices prefixes fetched with AllBodyParts, dropping blanks and
// any duplicate "all" entry.
func BodyPartChoices(fetched []string) []string {
	parts := make([]string, 0, len(fetched)+1)
	parts = append(parts, AllBodyParts)
	for _, p := range fetched {
		p = strings.TrimSpace(p)
		if p == "" || strings.EqualFold(p, AllBodyParts) {
			continue
		}
		parts = append(parts, p)
	}
	return parts
}

// SetBodyPart selects a filter and fetches the matching collection.
// AllBodyParts (or an empty value) fetches the unfiltered list.
func (c *Controller) SetBodyPart(ctx context.Context, part string) Outcome {
	part = strings.TrimSpace(part)
	if part == "" {
		part = AllBodyParts
	}
	gen := c.begin()

	var res rapidapi.Result[[]exercisedb.Exercise]
	if part == AllBodyParts {
		res = c.source.Exercises(ctx)
	} else {
		res = c.source.ByBodyPart(ctx, part)
	}
	items, _ := res.Value()
	return c.apply(gen, items, "", part, res.Failure())
}

// Search fetches the unfiltered list and keeps records matching term. An
// empty term is a no-op: no fetch, no change to the collection.
func (c *Controller) Search(ctx context.Context, term string) Outcome {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return Outcome{Skipped: true}
	}
	gen := c.begin()

	res := c.source.Exercises(ctx)
	items, ok := res.Value()
	if ok {
		items = Filter(items, term)
	}
	return c.apply(gen, items, term, "", res.Failure())
}

// Replace swaps the collection directly. It supersedes any fetch in flight.
func (c *Controller) Replace(items []exercisedb.Exercise) {
	gen := c.begin()
	c.apply(gen, items, "", "", nil)
}

// SetPage moves to index, clamped to the collection, and returns the page
// actually selected.
func (c *Controller) SetPage(index int) int {
	return c.store.SetPage(index)
}

// Page returns the visible page.
func (c *Controller) Page() paginate.Page[exercisedb.Exercise] {
	return c.store.Snapshot().Page()
}

// Collection returns the whole current collection.
func (c *Controller) Collection() []exercisedb.Exercise {
	return c.store.Snapshot().Exercises
}

// BodyPart returns the active filter.
func (c *Controller) BodyPart() string {
	part := c.store.Snapshot().BodyPart
	if part == "" {
		return AllBodyParts
	}
	return part
}

// Snapshot returns the store snapshot.
func (c *Controller) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Generation returns the latest generation issued.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *Controller) begin() uint64 {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()
	c.store.SetLoading(true)
	return gen
}

// apply publishes a completion if gen is still current. The check and the
// store write happen under c.mu so a newer generation cannot slip between.
// A non-empty part becomes the active filter label; empty keeps the current
// one.
func (c *Controller) apply(gen uint64, items []exercisedb.Exercise, term, part string, failure *rapidapi.Failure) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := Outcome{Generation: gen, Failure: failure}
	if gen != c.generation {
		c.logger.Debug("discarding stale fetch",
			zap.Uint64("generation", gen),
			zap.Uint64("latest", c.generation),
		)
		return out
	}
	if failure != nil {
		items = nil
	}
	if part != "" {
		c.store.SetBodyPart(part)
	}
	c.store.Replace(items, term, failure)
	out.Applied = true
	out.Count = len(items)
	return out
}

// Filter keeps records where term is a case-insensitive substring of name,
// target, equipment or body part. The result is never nil.
func Filter(records []exercisedb.Exercise, term string) []exercisedb.Exercise {
	out := make([]exercisedb.Exercise, 0, len(records))
	for _, r := range records {
		if r.Matches(term) {
			out = append(out, r)
		}
	}
	return slices.Clip(out)
}
