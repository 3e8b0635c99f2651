package traits

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogSize(t *testing.T) {
	all := All()
	assert.Len(t, all, Count)

	seen := make(map[string]bool, Count)
	for _, name := range all {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate trait %q", name)
		seen[name] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0] = "mutated"
	assert.Equal(t, "Physical object", Label(0))
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  string
	}{
		{"first", 0, "Physical object"},
		{"last", 31, "Widely known"},
		{"negative", -1, Unknown},
		{"past end", 32, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(tt.index))
		})
	}
}

func TestIconPath(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		iconID int
		want   string
	}{
		{"empty base", "", 7, "icons/Icon7.png"},
		{"url base", "https://universalhex.org", 1, "https://universalhex.org/icons/Icon1.png"},
		{"url base trailing slash", "https://universalhex.org/static/", 32, "https://universalhex.org/static/icons/Icon32.png"},
		{"dir base", "/srv/assets", 3, filepath.Join("/srv/assets", "icons", "Icon3.png")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconPath(tt.base, tt.iconID))
		})
	}
}

func TestIconID(t *testing.T) {
	assert.Equal(t, 1, IconID(0))
	assert.Equal(t, 32, IconID(31))
}
