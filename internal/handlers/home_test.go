package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/homepage/internal/domain"
	"github.com/nfrund/homepage/internal/handlers"
	"github.com/nfrund/homepage/internal/rendering"
	"github.com/nfrund/homepage/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	likePathRe = regexp.MustCompile(`hx-post="(/likes/[0-9a-f-]+)"`)
	nameItemRe = regexp.MustCompile(`<li data-key="[^"]*">([^<]*)</li>`)
)

func newTestEcho(store handlers.PageStore) *echo.Echo {
	e := echo.New()
	h := handlers.NewHomeHandler(store, rendering.NewUniversalRenderer())
	e.GET("/", h.HomeGet)
	e.POST("/likes/:id", h.LikePost)
	return e
}

func serve(e *echo.Echo, method, target string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if htmx {
		req.Header.Set(handlers.HeaderHXRequest, "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func likePath(t *testing.T, body string) string {
	t.Helper()
	m := likePathRe.FindStringSubmatch(body)
	require.NotNil(t, m, "like button target not found in:\n%s", body)
	return m[1]
}

func names(body string) []string {
	var out []string
	for _, m := range nameItemRe.FindAllStringSubmatch(body, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestHomePage_MountLikeTwice(t *testing.T) {
	e := newTestEcho(state.NewStore(state.Options{TTL: time.Minute}))
	wantNames := []string{"Ada Lovelace", "Grace Hopper", "Margaret Hamilton"}

	rec := serve(e, http.MethodGet, "/", false)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()

	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Equal(t, wantNames, names(body))
	assert.Contains(t, body, "Like (0)")
	assert.Contains(t, body, "<h2>Develop. Preview. Ship. 🚀</h2>")
	path := likePath(t, body)

	for n, want := range []string{"Like (1)", "Like (2)"} {
		rec = serve(e, http.MethodPost, path, true)
		require.Equal(t, http.StatusOK, rec.Code, "like %d", n+1)

		fragment := rec.Body.String()
		assert.Contains(t, fragment, want)
		assert.NotContains(t, fragment, "<ul>", "fragments redraw the button only")
		assert.NotContains(t, fragment, "<h2>", "fragments redraw the button only")
		assert.Equal(t, path, likePath(t, fragment))
	}
}

func TestHomePage_ReloadResetsCounter(t *testing.T) {
	e := newTestEcho(state.NewStore(state.Options{TTL: time.Minute}))

	first := serve(e, http.MethodGet, "/", false).Body.String()
	path := likePath(t, first)
	serve(e, http.MethodPost, path, true)
	serve(e, http.MethodPost, path, true)

	reloaded := serve(e, http.MethodGet, "/", false).Body.String()
	assert.Contains(t, reloaded, "Like (0)")
	assert.NotEqual(t, path, likePath(t, reloaded))
}

func TestHomePage_SequentialLikes(t *testing.T) {
	e := newTestEcho(state.NewStore(state.Options{TTL: time.Minute}))
	path := likePath(t, serve(e, http.MethodGet, "/", false).Body.String())

	for n := 1; n <= 25; n++ {
		rec := serve(e, http.MethodPost, path, true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), ">Like ("+strconv.Itoa(n)+")</button>")
	}
}

func TestLikePost_WithoutHTMXRendersFullPage(t *testing.T) {
	e := newTestEcho(state.NewStore(state.Options{TTL: time.Minute}))
	path := likePath(t, serve(e, http.MethodGet, "/", false).Body.String())

	rec := serve(e, http.MethodPost, path, false)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "Like (1)")
	assert.Equal(t, []string{"Ada Lovelace", "Grace Hopper", "Margaret Hamilton"}, names(body))
	assert.Equal(t, path, likePath(t, body))
}

func TestLikePost_Errors(t *testing.T) {
	e := newTestEcho(state.NewStore(state.Options{TTL: time.Minute}))

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"malformed id", "/likes/not-a-uuid", http.StatusBadRequest},
		{"unknown id", "/likes/0b9f3c1e-6c44-4b53-9a53-0c1f0c2d6f11", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, http.MethodPost, tt.target, true)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

type failingStore struct{}

func (failingStore) Mount(ctx context.Context) (domain.PageInstance, error) {
	return domain.PageInstance{}, errors.New("entropy exhausted")
}

func (failingStore) Like(ctx context.Context, id string) (domain.PageInstance, error) {
	return domain.PageInstance{}, errors.New("unavailable")
}

func TestHomeHandler_StoreFailures(t *testing.T) {
	e := newTestEcho(failingStore{})

	assert.Equal(t, http.StatusInternalServerError, serve(e, http.MethodGet, "/", false).Code)
	assert.Equal(t, http.StatusInternalServerError,
		serve(e, http.MethodPost, "/likes/0b9f3c1e-6c44-4b53-9a53-0c1f0c2d6f11", true).Code)
}
