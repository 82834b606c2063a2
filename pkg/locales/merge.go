package locales

// Stats reports what a merge changed in a single document.
type Stats struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// Total returns the number of keys the merge touched.
func (s Stats) Total() int {
	return s.Added + s.Updated
}

// Zero reports whether the merge was a no-op.
func (s Stats) Zero() bool {
	return s.Added == 0 && s.Updated == 0
}

// Add accumulates other into s.
func (s *Stats) Add(other Stats) {
	s.Added += other.Added
	s.Updated += other.Updated
}

// Apply merges patch into doc as a superset merge and returns what changed.
//
// For every section in patch: an absent section is created empty first; an
// absent key is appended and counted as added; a key present with a different
// value is overwritten in place and counted as updated; a key present with an
// identical value is left untouched. Sections and keys the patch does not
// mention are never modified, and nothing is ever deleted.
//
// Apply mutates doc and is idempotent: a second application of the same patch
// reports zero added and zero updated.
func Apply(doc *Document, patch *Document) Stats {
	var stats Stats
	for _, psec := range patch.Sections() {
		sec := doc.EnsureSection(psec.Name())
		for _, key := range psec.Keys() {
			value, _ := psec.Get(key)
			existing, ok := sec.Get(key)
			switch {
			case !ok:
				sec.Set(key, value)
				stats.Added++
			case existing != value:
				sec.Set(key, value)
				stats.Updated++
			}
		}
	}
	return stats
}
