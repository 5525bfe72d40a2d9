package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/five82/reps/internal/catalog"
	"github.com/five82/reps/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvLegacyAPIKey, "")
}

func TestBuild_RequiresAPIKey(t *testing.T) {
	isolate(t)

	_, err := Build(Options{ConfigPath: writeConfig(t, `page_size = 9`), Logger: zap.NewNop()})
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestBuild_WiresPipeline(t *testing.T) {
	isolate(t)

	var gotKey, gotHost string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-RapidAPI-Key")
		gotHost = r.Header.Get("X-RapidAPI-Host")
		switch r.URL.Path {
		case "/exercises/bodyPartList":
			fmt.Fprint(w, `["back","chest"]`)
		case "/exercises":
			fmt.Fprint(w, `[{"id":"1","name":"push-up","bodyPart":"chest"},{"id":"2","name":"pull-up","bodyPart":"back"},{"id":"3","name":"dip","bodyPart":"chest"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	path := writeConfig(t, fmt.Sprintf(`
api_key = "secret"
exercise_base_url = %q
exercise_host = "exercisedb.test"
page_size = 2
`, server.URL))

	rt, err := Build(Options{
		ConfigPath: path,
		PrefsPath:  filepath.Join(t.TempDir(), "prefs.toml"),
		Logger:     zap.NewNop(),
	})
	require.NoError(t, err)
	t.Cleanup(rt.Close)

	parts, failure := rt.Catalog.LoadBodyParts(context.Background())
	require.Nil(t, failure)
	assert.Equal(t, []string{catalog.AllBodyParts, "back", "chest"}, parts)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "exercisedb.test", gotHost)

	out := rt.Catalog.SetBodyPart(context.Background(), catalog.AllBodyParts)
	require.True(t, out.Applied)
	page := rt.Catalog.Page()
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.ShowControl())
	assert.Equal(t, "Nightfox", rt.Prefs.Theme)
}
