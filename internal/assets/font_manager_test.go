package assets

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// pollUntilIdle крутит Poll, пока не завершатся все загрузки, как это делал бы главный цикл.
func pollUntilIdle(t *testing.T, m *FontManager) int {
	t.Helper()
	calls := 0
	require.Eventually(t, func() bool {
		calls += m.Poll()
		return m.Pending() == 0
	}, 5*time.Second, 5*time.Millisecond)
	return calls
}

func TestFontManager_BuiltinSharedLoad(t *testing.T) {
	m := NewFontManager(time.Second)
	var got []*opentype.Font
	cb := func(f *opentype.Font) { got = append(got, f) }

	m.Request(BuiltinGoRegular, cb)
	m.Request(BuiltinGoRegular, cb)
	assert.Empty(t, got, "callbacks must not run before Poll")

	assert.Equal(t, 2, pollUntilIdle(t, m))
	require.Len(t, got, 2)
	assert.NotNil(t, got[0])
	assert.Same(t, got[0], got[1])

	// Повторный запрос обслуживается из кэша на следующем Poll.
	m.Request(BuiltinGoRegular, cb)
	assert.Equal(t, 1, m.Poll())
	assert.Len(t, got, 3)
}

func TestFontManager_FailureNeverCallsBack(t *testing.T) {
	m := NewFontManager(time.Second)
	missing := filepath.Join(t.TempDir(), "missing.ttf")
	called := false
	m.Request(missing, func(*opentype.Font) { called = true })

	assert.Equal(t, 0, pollUntilIdle(t, m))
	assert.False(t, called)

	// Провал запоминается: повторная загрузка не запускается.
	m.Request(missing, func(*opentype.Font) { called = true })
	assert.Equal(t, 0, m.Pending())
	assert.Equal(t, 0, m.Poll())
	assert.False(t, called)
}

func TestFontManager_FileAndGarbage(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ttf")
	bad := filepath.Join(dir, "bad.ttf")
	require.NoError(t, os.WriteFile(good, goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))

	m := NewFontManager(time.Second)
	var loaded, broken bool
	m.Request(good, func(*opentype.Font) { loaded = true })
	m.Request(bad, func(*opentype.Font) { broken = true })
	pollUntilIdle(t, m)

	assert.True(t, loaded)
	assert.False(t, broken)
	_, ok := m.Loaded(good)
	assert.True(t, ok)
}

func TestFontManager_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/font.ttf" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(goregular.TTF)
	}))
	defer srv.Close()

	m := NewFontManager(time.Second)
	var ok, notFound bool
	m.Request(srv.URL+"/font.ttf", func(*opentype.Font) { ok = true })
	m.Request(srv.URL+"/missing.ttf", func(*opentype.Font) { notFound = true })
	pollUntilIdle(t, m)

	assert.True(t, ok)
	assert.False(t, notFound)
}

func TestFontManager_FaceCache(t *testing.T) {
	m := NewFontManager(time.Second)
	f, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)

	a := m.FaceFor(f, 12.2)
	b := m.FaceFor(f, 11.8)
	require.NotNil(t, a)
	assert.Same(t, a, b)
	assert.Nil(t, m.FaceFor(f, 0.3))
	assert.Nil(t, m.FaceFor(nil, 12))

	m.Cleanup()
	assert.NotSame(t, a, m.FaceFor(f, 12))
}
