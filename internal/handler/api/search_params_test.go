//go:build unit

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/apartments/search?"+rawQuery, nil)
	return c
}

func TestParseSearchParams(t *testing.T) {
	t.Run("free text arrives via the query parameter", func(t *testing.T) {
		params, err := parseSearchParams(searchContext(t, "query=harbour+loft"))
		require.NoError(t, err)
		assert.Equal(t, "harbour loft", params.Query)
	})

	t.Run("the short q alias is accepted", func(t *testing.T) {
		params, err := parseSearchParams(searchContext(t, "q=loft"))
		require.NoError(t, err)
		assert.Equal(t, "loft", params.Query)
	})

	t.Run("the long name wins when both are present", func(t *testing.T) {
		params, err := parseSearchParams(searchContext(t, "query=harbour&q=loft"))
		require.NoError(t, err)
		assert.Equal(t, "harbour", params.Query)
	})

	t.Run("category passes through untouched", func(t *testing.T) {
		params, err := parseSearchParams(searchContext(t, "category=9f1c1f1e-8f2d-4a7a-9b3c-0d6e5f4a3b2c"))
		require.NoError(t, err)
		assert.Equal(t, "9f1c1f1e-8f2d-4a7a-9b3c-0d6e5f4a3b2c", params.Category)
	})

	t.Run("numeric facets parse into pointers", func(t *testing.T) {
		params, err := parseSearchParams(searchContext(t, "minPrice=10000&bedrooms=2&isAvailable=true"))
		require.NoError(t, err)
		require.NotNil(t, params.MinPrice)
		assert.Equal(t, int64(10000), *params.MinPrice)
		require.NotNil(t, params.Bedrooms)
		assert.Equal(t, 2, *params.Bedrooms)
		require.NotNil(t, params.IsAvailable)
		assert.True(t, *params.IsAvailable)
	})

	t.Run("garbage numeric values are rejected", func(t *testing.T) {
		_, err := parseSearchParams(searchContext(t, "bedrooms=two"))
		assert.Error(t, err)
	})
}
