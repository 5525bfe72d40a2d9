// Package detail assembles everything shown for a single exercise.
package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/rapidapi"
	"github.com/five82/reps/internal/videosearch"
)

// MaxRelated caps each related section.
const MaxRelated = 6

// Section names reported in Detail.Degraded.
const (
	SectionVideos        = "videos"
	SectionSameTarget    = "target"
	SectionSameEquipment = "equipment"
)

// ErrEmptyID is returned when Load is called without an exercise id.
var ErrEmptyID = errors.New("exercise id is empty")

// ExerciseSource fetches exercises for the detail view.
type ExerciseSource interface {
	Exercise(ctx context.Context, id string) rapidapi.Result[exercisedb.Exercise]
	ByTarget(ctx context.Context, target string) rapidapi.Result[[]exercisedb.Exercise]
	ByEquipment(ctx context.Context, equipment string) rapidapi.Result[[]exercisedb.Exercise]
}

// VideoSource searches demonstration videos.
type VideoSource interface {
	Search(ctx context.Context, query string) rapidapi.Result[[]videosearch.Video]
}

// Detail is one exercise plus its related sections. Sections are never nil.
type Detail struct {
	Exercise      exercisedb.Exercise
	Videos        []videosearch.Video
	SameTarget    []exercisedb.Exercise
	SameEquipment []exercisedb.Exercise
	// Degraded lists the sections that failed to load.
	Degraded []string
}

// Loader fetches Detail values.
type Loader struct {
	exercises ExerciseSource
	videos    VideoSource
	logger    *zap.Logger
}

// New returns a Loader. videos may be nil, in which case the video section
// stays empty.
func New(exercises ExerciseSource, videos VideoSource, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{exercises: exercises, videos: videos, logger: logger}
}

// VideoQuery is the search phrase used for an exercise's videos.
func VideoQuery(name string) string {
	return strings.TrimSpace(name) + " exercise"
}

// Load fetches the exercise, then its videos and similar exercises in
// parallel. Only a failed exercise lookup is an error.
func (l *Loader) Load(ctx context.Context, id string) (Detail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Detail{}, ErrEmptyID
	}

	res := l.exercises.Exercise(ctx, id)
	ex, ok := res.Value()
	if !ok {
		return Detail{}, fmt.Errorf("load exercise %s: %w", id, res.Err())
	}

	d := Detail{
		Exercise:      ex,
		Videos:        []videosearch.Video{},
		SameTarget:    []exercisedb.Exercise{},
		SameEquipment: []exercisedb.Exercise{},
	}

	var mu sync.Mutex
	degrade := func(section string, f *rapidapi.Failure) {
		l.logger.Info("detail section unavailable",
			zap.String("exercise_id", ex.ID),
			zap.String("section", section),
			zap.Error(f),
		)
		mu.Lock()
		d.Degraded = append(d.Degraded, section)
		mu.Unlock()
	}

	// The group only joins the side calls. None of them returns an error, so
	// a failure empties its own section and never cancels the others.
	var eg errgroup.Group

	if l.videos != nil && strings.TrimSpace(ex.Name) != "" {
		eg.Go(func() error {
			res := l.videos.Search(ctx, VideoQuery(ex.Name))
			if videos, ok := res.Value(); ok {
				d.Videos = videos[:min(len(videos), MaxRelated)]
			} else {
				degrade(SectionVideos, res.Failure())
			}
			return nil
		})
	}
	if strings.TrimSpace(ex.Target) != "" {
		eg.Go(func() error {
			res := l.exercises.ByTarget(ctx, ex.Target)
			if items, ok := res.Value(); ok {
				d.SameTarget = related(items, ex.ID)
			} else {
				degrade(SectionSameTarget, res.Failure())
			}
			return nil
		})
	}
	if strings.TrimSpace(ex.Equipment) != "" {
		eg.Go(func() error {
			res := l.exercises.ByEquipment(ctx, ex.Equipment)
			if items, ok := res.Value(); ok {
				d.SameEquipment = related(items, ex.ID)
			} else {
				degrade(SectionSameEquipment, res.Failure())
			}
			return nil
		})
	}

	_ = eg.Wait()
	return d, nil
}

// related drops the current exercise and caps the list.
func related(items []exercisedb.Exercise, currentID string) []exercisedb.Exercise {
	out := make([]exercisedb.Exercise, 0, MaxRelated)
	for _, item := range items {
		if item.ID == currentID {
			continue
		}
		out = append(out, item)
		if len(out) == MaxRelated {
			break
		}
	}
	return out
}
