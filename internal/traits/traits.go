// Package traits holds the fixed trait catalog the quiz asks about.
package traits

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Count is the number of traits in the catalog.
const Count = 32

// Unknown is the label shown for an index outside the catalog.
const Unknown = "(Unknown)"

var catalog = [Count]string{
	"Physical object",
	"Man-made / synthetic",
	"Biological or biologically-inspired",
	"Fixed/static",
	"Structural",
	"Perceptible",
	"Material form",
	"Passive",
	"Purposeful / intentional",
	"Emits output / produces effect",
	"Processes or regulates logic/signals",
	"Transforms or modifies internal state",
	"Interacts with humans directly",
	"Part of a larger system",
	"Autonomous in function",
	"System-critical",
	"Symbolic / representational",
	"Communicative",
	"Logical / rule-based",
	"Hierarchical / modular",
	"Behavior-guiding",
	"Self-referential / meta-conceptual",
	"Temporal",
	"Contextual abstraction",
	"Socially / culturally constructed",
	"Defined by a group/system",
	"Linked to identity or role",
	"Regulated / governed",
	"Teachable / transmissible",
	"Visible",
	"Context-sensitive",
	"Widely known",
}

// All returns a copy of the catalog in index order.
func All() []string {
	out := make([]string, Count)
	copy(out, catalog[:])
	return out
}

// Valid reports whether i is a catalog index.
func Valid(i int) bool {
	return i >= 0 && i < Count
}

// Label returns the trait name at index i, or Unknown.
func Label(i int) string {
	if !Valid(i) {
		return Unknown
	}
	return catalog[i]
}

// IconID returns the 1-based asset id for trait index i.
func IconID(i int) int {
	return i + 1
}

// IconFile returns the relative asset path for an icon id.
func IconFile(iconID int) string {
	return fmt.Sprintf("icons/Icon%d.png", iconID)
}

// IconPath resolves an icon id against base. A base with an http or https
// scheme is joined as a URL, anything else as a filesystem path. An empty
// base yields the relative asset path.
func IconPath(base string, iconID int) string {
	rel := IconFile(iconID)
	if base == "" {
		return rel
	}
	if u, err := url.Parse(base); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		u.Path = path.Join("/", strings.TrimSuffix(u.Path, "/"), rel)
		return u.String()
	}
	return filepath.Join(base, filepath.FromSlash(rel))
}
