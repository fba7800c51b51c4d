package store

import (
	"encoding/json"

	"listora/models"
)

// RecomputeCounts rescans the three asset partitions, caches the
// snapshot under assetCounts and returns it. The cache is derived state:
// safe to rebuild at any time, never read as a source of truth here.
// Absent partitions count as zero.
func (s *Store) RecomputeCounts() (models.CountSnapshot, error) {
	var snap models.CountSnapshot
	for _, category := range models.Categories {
		snap.Set(category, len(s.LoadPartition(category)))
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return snap, err
	}
	version, err := s.SetRaw(models.CountsKey, string(raw))
	if err != nil {
		return snap, err
	}

	// OpCounts lets observers refresh badges while the count refresher
	// itself ignores it, so count writes never re-trigger a recompute.
	s.bc.Publish(Change{Key: models.CountsKey, Op: OpCounts, Version: version})
	return snap, nil
}

// CachedCounts returns the last written snapshot for callers that only
// want the badge cache. found is false when it was never computed or the
// cache is unreadable.
func (s *Store) CachedCounts() (models.CountSnapshot, bool) {
	raw, _, found := s.GetRaw(models.CountsKey)
	if !found {
		return models.CountSnapshot{}, false
	}
	var snap models.CountSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.log.Warn("corrupt count cache", "error", err)
		return models.CountSnapshot{}, false
	}
	return snap, true
}
