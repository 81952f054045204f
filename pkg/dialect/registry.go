package dialect

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Dialect)
)

// ErrDialectRequired is returned when a dialect is required but not provided.
var ErrDialectRequired = errors.New("dialect is required")

// Get returns a dialect by name.
func Get(name string) (*Dialect, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	d, ok := dialects[strings.ToLower(name)]
	return d, ok
}

// Register registers a dialect in the global registry.
// Called by dialect implementations in their init() functions.
//
// A derived dialect must be able to encode every canonical directive its
// own time table can produce into the base dialect's vocabulary; a gap
// would silently corrupt rewritten format strings, so it is fatal here,
// before any decode/encode runs.
func Register(d *Dialect) {
	if d.Base != nil && d.Base.TimeTable != nil && d.TimeTable != nil {
		if err := d.Base.TimeTable.CheckCoverage(d.TimeTable); err != nil {
			panic("dialect " + d.Name + ": " + err.Error())
		}
	}

	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(d.Name)] = d
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
