package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_RouteOrder(t *testing.T) {
	all := All()
	require.Len(t, all, 2)
	assert.Equal(t, "/", all[0].Path)
	assert.Equal(t, "/about", all[1].Path)
}

func TestLookup(t *testing.T) {
	tests := []struct {
		path      string
		wantFound bool
		wantTitle string
	}{
		{"/", true, "Welcome to My Next.js 13 App Router App"},
		{"/about", true, "About Page"},
		{"/about/", false, ""},
		{"/contact", false, ""},
		{"", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			page, found := Lookup(tt.path)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantTitle, page.Title)
		})
	}
}

func TestPages_LinkToEachOther(t *testing.T) {
	assert.Equal(t, About.Path, Home.Link.Href)
	assert.Equal(t, Home.Path, About.Link.Href)
}

func TestValidate(t *testing.T) {
	t.Run("site pages are valid", func(t *testing.T) {
		assert.NoError(t, Validate(All()))
	})

	t.Run("dangling link", func(t *testing.T) {
		err := Validate([]Page{Home})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownRoute)
		assert.Contains(t, err.Error(), `"/about"`)
	})

	t.Run("duplicate route", func(t *testing.T) {
		err := Validate([]Page{Home, About, Home})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate route")
	})

	t.Run("empty set", func(t *testing.T) {
		assert.NoError(t, Validate(nil))
	})
}
