//go:build unit

package category_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain/category"
)

func TestNewCategory(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := category.NewCategory("Studio", "Single-room apartments")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Studio", actual.Name())
		assert.Equal(t, "Single-room apartments", actual.Description())
	})

	t.Run("name and description are trimmed", func(t *testing.T) {
		actual, err := category.NewCategory("  Studio  ", "  desc  ")
		require.NoError(t, err)
		assert.Equal(t, "Studio", actual.Name())
		assert.Equal(t, "desc", actual.Description())
	})

	cases := []struct {
		name        string
		catName     string
		description string
		errIs       error
	}{
		{"empty name", "", "", category.ErrEmptyName},
		{"whitespace-only name", "   ", "", category.ErrEmptyName},
		{"name too short", "A", "", category.ErrNameTooShort},
		{"minimum length name", strings.Repeat("a", category.MinNameLength), "", nil},
		{"maximum length name", strings.Repeat("a", category.MaxNameLength), "", nil},
		{"name too long", strings.Repeat("a", category.MaxNameLength+1), "", category.ErrNameTooLong},
		{"maximum length description", "Studio", strings.Repeat("a", category.MaxDescriptionLength), nil},
		{"description too long", "Studio", strings.Repeat("a", category.MaxDescriptionLength+1), category.ErrDescriptionTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := category.NewCategory(tc.catName, tc.description)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
