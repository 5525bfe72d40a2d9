package detail

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/reps/internal/exercisedb"
	"github.com/five82/reps/internal/rapidapi"
	"github.com/five82/reps/internal/videosearch"
)

func list(prefix string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(`{"id":"%s%d","name":"%s %d"}`, prefix, i, prefix, i)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func newLoader(t *testing.T, handler http.HandlerFunc) *Loader {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw := rapidapi.New(rapidapi.Credentials{Key: "k"}, rapidapi.WithHTTPClient(server.Client()))
	exercises, err := exercisedb.New(gw, server.URL)
	require.NoError(t, err)
	videos, err := videosearch.New(gw, server.URL)
	require.NoError(t, err)
	return New(exercises, videos, nil)
}

func TestLoader_LoadAssemblesSections(t *testing.T) {
	var videoQuery string
	loader := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/exercises/exercise/0285":
			fmt.Fprint(w, `{"id":"0285","name":"dumbbell alternate curl","target":"biceps","equipment":"dumbbell","bodyPart":"upper arms"}`)
		case r.URL.Path == "/exercises/target/biceps":
			fmt.Fprint(w, `[{"id":"0285","name":"self"},`+strings.TrimPrefix(list("t", 8), "["))
		case r.URL.Path == "/exercises/equipment/dumbbell":
			fmt.Fprint(w, list("e", 2))
		case r.URL.Path == "/search":
			videoQuery = r.URL.Query().Get("query")
			fmt.Fprint(w, `{"contents":[{"video":{"videoId":"v1","title":"curl"}}]}`)
		default:
			http.NotFound(w, r)
		}
	})

	d, err := loader.Load(context.Background(), "0285")
	require.NoError(t, err)

	assert.Equal(t, "dumbbell alternate curl", d.Exercise.Name)
	assert.Equal(t, "dumbbell alternate curl exercise", videoQuery)
	require.Len(t, d.Videos, 1)
	assert.Equal(t, "v1", d.Videos[0].ID)
	require.Len(t, d.SameTarget, MaxRelated)
	for _, ex := range d.SameTarget {
		assert.NotEqual(t, "0285", ex.ID)
	}
	assert.Len(t, d.SameEquipment, 2)
	assert.Empty(t, d.Degraded)
}

func TestLoader_SideFailuresDegrade(t *testing.T) {
	loader := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/exercises/exercise/1":
			fmt.Fprint(w, `{"id":"1","name":"squat","target":"glutes","equipment":"barbell"}`)
		case "/exercises/target/glutes":
			fmt.Fprint(w, `{"not":"a list"}`)
		case "/search":
			http.Error(w, "quota", http.StatusTooManyRequests)
		default:
			fmt.Fprint(w, list("b", 3))
		}
	})

	d, err := loader.Load(context.Background(), "1")
	require.NoError(t, err)

	assert.NotNil(t, d.Videos)
	assert.Empty(t, d.Videos)
	assert.NotNil(t, d.SameTarget)
	assert.Empty(t, d.SameTarget)
	assert.Len(t, d.SameEquipment, 3)
	assert.ElementsMatch(t, []string{SectionVideos, SectionSameTarget}, d.Degraded)
}

func TestLoader_ExerciseFailureIsError(t *testing.T) {
	loader := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})

	_, err := loader.Load(context.Background(), "0001")
	require.Error(t, err)

	f, ok := rapidapi.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, f.Status)
}

func TestLoader_ExerciseMustBeObject(t *testing.T) {
	loader := newLoader(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	_, err := loader.Load(context.Background(), "0001")
	f, ok := rapidapi.AsFailure(err)
	require.True(t, ok)
	assert.Equal(t, rapidapi.ReasonShape, f.Reason)
}

func TestLoader_EmptyID(t *testing.T) {
	_, err := New(nil, nil, nil).Load(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyID)
}

type stubExercises struct{}

func (stubExercises) Exercise(context.Context, string) rapidapi.Result[exercisedb.Exercise] {
	return rapidapi.Ok(exercisedb.Exercise{ID: "7", Name: "plank"})
}

func (stubExercises) ByTarget(context.Context, string) rapidapi.Result[[]exercisedb.Exercise] {
	panic("no target on exercise")
}

func (stubExercises) ByEquipment(context.Context, string) rapidapi.Result[[]exercisedb.Exercise] {
	panic("no equipment on exercise")
}

func TestLoader_SkipsCallsWithoutKeys(t *testing.T) {
	d, err := New(stubExercises{}, nil, nil).Load(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "plank", d.Exercise.Name)
	assert.Empty(t, d.Videos)
	assert.Empty(t, d.SameTarget)
	assert.Empty(t, d.SameEquipment)
}

func TestVideoQuery(t *testing.T) {
	assert.Equal(t, "push-up exercise", VideoQuery("  push-up "))
}
