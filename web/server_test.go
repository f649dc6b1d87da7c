package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/imagine"
	"github.com/fwojciec/imagine/mock"
	"github.com/fwojciec/imagine/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(gen imagine.Generator) http.Handler {
	return web.New(gen).Handler()
}

func staticGenerator(dir string) *mock.Generator {
	return &mock.Generator{
		GenerateFn: func(context.Context, imagine.Request) imagine.Outcome {
			return imagine.Success(filepath.Join(dir, "img.png"), []byte("PNG"))
		},
		OutputDirFn: func() string { return dir },
	}
}

func TestIndexPage(t *testing.T) {
	t.Parallel()
	h := newServer(staticGenerator(t.TempDir()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "/api/generate")
}

func TestServeImage(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img.png"), []byte("PNG-bytes"), 0o644))

	h := newServer(staticGenerator(dir))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/img.png", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PNG-bytes", w.Body.String())
}

func TestServeImage_NotFound(t *testing.T) {
	t.Parallel()
	h := newServer(staticGenerator(t.TempDir()))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeImage_RejectsTraversal(t *testing.T) {
	t.Parallel()
	h := newServer(staticGenerator(t.TempDir()))
	for _, name := range []string{"..", ".hidden", "%2e%2e%2fetc"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/images/"+name, nil))
		assert.NotEqual(t, http.StatusOK, w.Code, "name %q must not be served", name)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	h := newServer(staticGenerator(dir))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"prompt":"a red cube"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ImageURL string `json:"imageUrl"`
		Text     string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/images/img.png", body.ImageURL)
	assert.Contains(t, body.Text, "successfully")
}

func TestGenerate_MissingPrompt(t *testing.T) {
	t.Parallel()
	called := false
	gen := &mock.Generator{
		GenerateFn: func(context.Context, imagine.Request) imagine.Outcome {
			called = true
			return imagine.Failure("unexpected")
		},
		OutputDirFn: func() string { return "/out" },
	}
	h := newServer(gen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called)
}

func TestGenerate_OutOfRangeTunable(t *testing.T) {
	t.Parallel()
	h := newServer(staticGenerator(t.TempDir()))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"prompt":"x","temperature":2.5}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerate_ProviderFailure(t *testing.T) {
	t.Parallel()
	gen := &mock.Generator{
		GenerateFn: func(context.Context, imagine.Request) imagine.Outcome {
			return imagine.Failure("no image produced")
		},
		OutputDirFn: func() string { return "/out" },
	}
	h := newServer(gen)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(`{"prompt":"a red cube"}`))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "no image produced")
}
