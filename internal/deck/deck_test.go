package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDeckHasEightSlides(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 8, d.Len())
	assert.Equal(t, "Year in Review", d.Title())

	first, ok := d.Slide(0)
	require.True(t, ok)
	assert.Equal(t, "cover", first.ID)

	metrics, ok := d.Slide(2)
	require.True(t, ok)
	require.Len(t, metrics.Metrics, 3)
	assert.True(t, metrics.Metrics[0].Decimal())
	assert.False(t, metrics.Metrics[1].Decimal())
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Len())
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.toml")
	content := `
[[slides]]
title = "Hello"
points = ["one", "two"]

[[slides]]
id = "end"
title = "Bye"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	d, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
	assert.Equal(t, "Hello", d.Title(), "title falls back to the first slide")

	s, _ := d.Slide(0)
	assert.Equal(t, "slide-1", s.ID)
	assert.Equal(t, []string{"one", "two"}, s.Points)

	s, _ = d.Slide(1)
	assert.Equal(t, "end", s.ID)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"no slides", `title = "x"`, ErrNoSlides},
		{"empty title", "[[slides]]\ntitle = \"  \"", ErrEmptyTitle},
		{"duplicate id", "[[slides]]\nid = \"a\"\ntitle = \"A\"\n[[slides]]\nid = \"a\"\ntitle = \"B\"", ErrDuplicateID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestParseSyntaxErrorReportsPosition(t *testing.T) {
	_, err := Parse([]byte("[[slides]]\ntitle = \n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestDeckIsImmutable(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	slides := d.Slides()
	slides[0].Title = "changed"

	s, _ := d.Slide(0)
	assert.Equal(t, "Year in Review", s.Title)

	_, ok := d.Slide(8)
	assert.False(t, ok)
	_, ok = d.Slide(-1)
	assert.False(t, ok)
}
