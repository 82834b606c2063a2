package locales

// PruneStats reports what a prune removed from a single document.
type PruneStats struct {
	RemovedKeys     int `json:"removed_keys"`
	RemovedSections int `json:"removed_sections"`
}

// Zero reports whether the prune was a no-op.
func (s PruneStats) Zero() bool {
	return s.RemovedKeys == 0 && s.RemovedSections == 0
}

// Prune removes keys from doc that the reference document does not contain.
// Sections absent from the reference are dropped entirely. Order of the
// surviving sections and keys is preserved. The reference itself is never
// modified.
func Prune(doc *Document, reference *Document) PruneStats {
	var stats PruneStats

	var staleSections []string
	for _, sec := range doc.Sections() {
		refSec, ok := reference.Section(sec.Name())
		if !ok {
			stats.RemovedKeys += sec.Len()
			stats.RemovedSections++
			staleSections = append(staleSections, sec.Name())
			continue
		}

		var stale []string
		for _, key := range sec.Keys() {
			if _, present := refSec.Get(key); !present {
				stale = append(stale, key)
			}
		}
		for _, key := range stale {
			sec.Delete(key)
			stats.RemovedKeys++
		}
	}
	for _, name := range staleSections {
		doc.DeleteSection(name)
	}

	return stats
}
