package fontindex

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Catalog scans the system for fonts and memoizes the result for the
// lifetime of the process (or until ClearCache). It keeps two independent
// result lists, one per value of the latinOnly flag, each populated lazily
// on first request.
//
// Catalog is safe for concurrent use. Returned slices are fresh copies, so
// callers can reorder or truncate them without corrupting the cache.
type Catalog struct {
	cfg config

	mu    sync.Mutex
	slots [2][]Record // indexed by slotIndex(latinOnly)
	valid [2]bool
}

// NewCatalog creates a Catalog.
// With no options it discovers fonts with a SystemLister and parses them
// with the default backend.
func NewCatalog(opts ...Option) *Catalog {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.lister == nil {
		cfg.lister = NewSystemLister()
	}
	return &Catalog{cfg: cfg}
}

func slotIndex(latinOnly bool) int {
	if latinOnly {
		return 0
	}
	return 1
}

// All returns every usable font face, sorted by (family, weight, italic,
// bold). With latinOnly, faces whose character map does not cover the basic
// Latin letters are dropped.
//
// The first call per flag value runs a full scan; subsequent calls return
// the memoized result. The only error condition is the discovery source
// itself failing; individual files that cannot be parsed are skipped.
func (c *Catalog) All(latinOnly bool) ([]Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := slotIndex(latinOnly)
	if !c.valid[idx] {
		records, err := c.scan(latinOnly)
		if err != nil {
			return nil, err
		}
		c.slots[idx] = records
		c.valid[idx] = true
	}
	return slices.Clone(c.slots[idx]), nil
}

// ClearCache discards both memoized result lists. The next All call per
// flag value runs a fresh scan, picking up newly installed fonts.
func (c *Catalog) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots = [2][]Record{}
	c.valid = [2]bool{}
}

// scan runs the full discovery and extraction pipeline.
// Callers hold c.mu.
func (c *Catalog) scan(latinOnly bool) ([]Record, error) {
	log := Logger()
	log.Info("scanning fonts", "latin_only", latinOnly)

	paths, err := c.cfg.lister.ListFontPaths()
	if err != nil {
		return nil, fmt.Errorf("fontindex: font discovery failed: %w", err)
	}

	// De-duplicate case-sensitively by resolved path, so the same physical
	// file registered under several aliases yields one record. First
	// occurrence wins.
	seen := make(map[string]bool, len(paths))
	var records []Record
	for _, path := range paths {
		key := resolvePath(path)
		if seen[key] {
			continue
		}
		seen[key] = true

		rec, err := Extract(path, WithParser(c.cfg.parserName))
		if err != nil {
			// Best-effort policy: a file that cannot be parsed is
			// dropped, not reported.
			log.Debug("skipping font file", "path", path, "err", err)
			continue
		}
		if latinOnly && !rec.SupportsLatin {
			continue
		}
		records = append(records, rec)
	}

	slices.SortFunc(records, Record.Compare)
	log.Info("font scan complete", "count", len(records), "latin_only", latinOnly)
	return records, nil
}

// resolvePath produces the dedup key for a discovered path: symlinks are
// resolved best-effort so aliased registrations collapse to one entry.
func resolvePath(path string) string {
	clean := filepath.Clean(path)
	if resolved, err := filepath.EvalSymlinks(clean); err == nil {
		return resolved
	}
	return clean
}

// Families returns the sorted unique family names of every usable font.
func (c *Catalog) Families(latinOnly bool) ([]string, error) {
	records, err := c.All(latinOnly)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(records))
	var families []string
	for _, r := range records {
		if !set[r.Family] {
			set[r.Family] = true
			families = append(families, r.Family)
		}
	}
	slices.Sort(families)
	return families, nil
}

// Find looks up a single font by name, case-insensitively, against the
// default (Latin-only) collection. It tries, in order: an exact match on
// the full name, an exact match on the family (returning the first variant
// in sort order), and finally a substring match on the full name.
//
// A miss is reported as ErrNotFound, never as a panic; only a failing
// discovery source produces a different error.
func (c *Catalog) Find(name string) (Record, error) {
	records, err := c.All(true)
	if err != nil {
		return Record{}, err
	}

	needle := fold(name)
	for _, r := range records {
		if fold(r.FullName) == needle {
			return r, nil
		}
	}
	for _, r := range records {
		if fold(r.Family) == needle {
			return r, nil
		}
	}
	for _, r := range records {
		if strings.Contains(fold(r.FullName), needle) {
			return r, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Filter applies the given criteria to the default (Latin-only) collection.
// See [Filter] for the matching rules.
func (c *Catalog) Filter(match ...Criterion) ([]Record, error) {
	records, err := c.All(true)
	if err != nil {
		return nil, err
	}
	return Filter(records, match...), nil
}

// defaultCatalog backs the package-level convenience functions.
var defaultCatalog = NewCatalog()

// All returns every usable font face known to the default catalog.
// See [Catalog.All].
func All(latinOnly bool) ([]Record, error) {
	return defaultCatalog.All(latinOnly)
}

// Families returns the sorted unique family names from the default catalog.
// See [Catalog.Families].
func Families(latinOnly bool) ([]string, error) {
	return defaultCatalog.Families(latinOnly)
}

// Find looks up a single font by name in the default catalog.
// See [Catalog.Find].
func Find(name string) (Record, error) {
	return defaultCatalog.Find(name)
}

// FilterAll applies criteria to the default catalog's Latin-only collection.
// See [Catalog.Filter].
func FilterAll(match ...Criterion) ([]Record, error) {
	return defaultCatalog.Filter(match...)
}

// ClearCache discards the default catalog's memoized scans.
func ClearCache() {
	defaultCatalog.ClearCache()
}
