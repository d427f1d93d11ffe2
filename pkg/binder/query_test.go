package binder_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/spotifyauth/pkg/binder"
)

func TestQuery(t *testing.T) {
	t.Parallel()

	type callbackRequest struct {
		Code     string   `query:"code"`
		State    string   `query:"state"`
		Page     int      `query:"page"`
		Dialog   *bool    `query:"show_dialog"`
		Scopes   []string `query:"scope"`
		Internal string   `query:"-"`
		Fallback string
	}

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/callback?code=abc&state=xyz&page=2&show_dialog=true&scope=a&scope=b&fallback=f", nil)

		var got callbackRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Equal(t, "abc", got.Code)
		assert.Equal(t, "xyz", got.State)
		assert.Equal(t, 2, got.Page)
		require.NotNil(t, got.Dialog)
		assert.True(t, *got.Dialog)
		assert.Equal(t, []string{"a", "b"}, got.Scopes)
		assert.Equal(t, "f", got.Fallback)
	})

	t.Run("missing parameters stay zero", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/callback", nil)

		var got callbackRequest
		require.NoError(t, binder.Query()(req, &got))

		assert.Empty(t, got.Code)
		assert.Empty(t, got.State)
		assert.Nil(t, got.Dialog)
	})

	t.Run("skips ignored fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/callback?internal=nope", nil)

		var got callbackRequest
		require.NoError(t, binder.Query()(req, &got))
		assert.Empty(t, got.Internal)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/callback?page=two", nil)

		var got callbackRequest
		err := binder.Query()(req, &got)
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/callback?code=abc", nil)

		err := binder.Query()(req, callbackRequest{})
		require.Error(t, err)
		assert.ErrorIs(t, err, binder.ErrInvalidTarget)
		assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
	})
}
