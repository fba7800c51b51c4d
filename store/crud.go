package store

import (
	"encoding/json"
	"time"

	"listora/models"

	"github.com/google/uuid"
)

// AddResult distinguishes a real append from the duplicate-prompt no-op.
type AddResult string

const (
	AddOK        AddResult = "added"
	AddDuplicate AddResult = "duplicate"
)

// AddAsset appends a record to a category's partition. A prompt whose
// exact title already exists in the target partition is a no-op and
// returns AddDuplicate; the guard is partition-scoped and prompt-only,
// so the same title is fine in another category or on another type.
func (s *Store) AddAsset(category models.Category, asset models.Asset) (models.Asset, AddResult, error) {
	assets := s.LoadPartition(category)

	if asset.Type == models.AssetTypePrompt {
		for _, existing := range assets {
			if existing.Type == models.AssetTypePrompt && existing.Title == asset.Title {
				return existing, AddDuplicate, nil
			}
		}
	}

	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}
	asset.Category = category
	if asset.Icon == "" {
		asset.Icon = models.DefaultIcon(asset.Type)
	}
	if asset.DateAdded.IsZero() {
		asset.DateAdded = time.Now().UTC()
	}

	assets = append(assets, asset)
	version, err := s.writePartition(category, assets)
	if err != nil {
		return models.Asset{}, "", err
	}

	s.bc.Publish(Change{Key: category.StorageKey(), Op: OpAdd, Version: version})
	s.log.Debug("asset added", "category", category, "id", asset.ID, "type", asset.Type)
	return asset, AddOK, nil
}

// AssetPatch is a partial update; nil fields are left untouched.
// ID, category and dateAdded are immutable.
type AssetPatch struct {
	Type       *models.AssetType `json:"type"`
	Title      *string           `json:"title"`
	Subtitle   *string           `json:"subtitle"`
	Icon       *string           `json:"icon"`
	Source     *models.Source    `json:"source"`
	Content    *string           `json:"content"`
	URL        *string           `json:"url"`
	FileName   *string           `json:"fileName"`
	Size       *string           `json:"size"`
	Pinned     *bool             `json:"pinned"`
	Hidden     *bool             `json:"hidden"`
	Processing *bool             `json:"processing"`
}

func (p AssetPatch) apply(a models.Asset) models.Asset {
	if p.Type != nil {
		a.Type = *p.Type
	}
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Subtitle != nil {
		a.Subtitle = *p.Subtitle
	}
	if p.Icon != nil {
		a.Icon = *p.Icon
	}
	if p.Source != nil {
		a.Source = *p.Source
	}
	if p.Content != nil {
		a.Content = *p.Content
	}
	if p.URL != nil {
		a.URL = *p.URL
	}
	if p.FileName != nil {
		a.FileName = *p.FileName
	}
	if p.Size != nil {
		a.Size = *p.Size
	}
	if p.Pinned != nil {
		a.Pinned = *p.Pinned
	}
	if p.Hidden != nil {
		a.Hidden = *p.Hidden
	}
	if p.Processing != nil {
		a.Processing = *p.Processing
	}
	return a
}

// UpdateAsset merges a patch into the record with the given id. A
// missing id is a silent no-op (changed=false, nothing written, nothing
// broadcast): late or duplicate UI events are tolerated, not reported.
func (s *Store) UpdateAsset(category models.Category, id string, patch AssetPatch) (models.Asset, bool, error) {
	assets := s.LoadPartition(category)

	for i, existing := range assets {
		if existing.ID != id {
			continue
		}
		assets[i] = patch.apply(existing)
		version, err := s.writePartition(category, assets)
		if err != nil {
			return models.Asset{}, false, err
		}
		s.bc.Publish(Change{Key: category.StorageKey(), Op: OpUpdate, Version: version})
		return assets[i], true, nil
	}
	return models.Asset{}, false, nil
}

// DeleteAsset removes the record with the given id. When the partition
// row is missing or its value unreadable the deletion is abandoned with
// ErrPartitionUnavailable; an absent id in a healthy partition is a
// silent no-op that leaves the stored bytes untouched.
func (s *Store) DeleteAsset(category models.Category, id string) error {
	raw, _, found := s.GetRaw(category.StorageKey())
	if !found {
		return ErrPartitionUnavailable
	}
	var assets []models.Asset
	if err := json.Unmarshal([]byte(raw), &assets); err != nil {
		s.log.Warn("delete abandoned, corrupt partition",
			"key", category.StorageKey(), "error", err)
		return ErrPartitionUnavailable
	}

	filtered := assets[:0]
	removed := false
	for _, a := range assets {
		if a.ID == id {
			removed = true
			continue
		}
		filtered = append(filtered, a)
	}
	if !removed {
		return nil
	}

	version, err := s.writePartition(category, filtered)
	if err != nil {
		return err
	}
	s.bc.Publish(Change{Key: category.StorageKey(), Op: OpDelete, Version: version})
	s.log.Debug("asset deleted", "category", category, "id", id)
	return nil
}

// TogglePinned flips the pinned flag. Missing id is a silent no-op.
func (s *Store) TogglePinned(category models.Category, id string) (models.Asset, bool, error) {
	return s.toggle(category, id, func(a models.Asset) AssetPatch {
		v := !a.Pinned
		return AssetPatch{Pinned: &v}
	})
}

// ToggleHidden flips the hidden flag. Hidden records stay in storage;
// they only drop out of the default view.
func (s *Store) ToggleHidden(category models.Category, id string) (models.Asset, bool, error) {
	return s.toggle(category, id, func(a models.Asset) AssetPatch {
		v := !a.Hidden
		return AssetPatch{Hidden: &v}
	})
}

func (s *Store) toggle(category models.Category, id string, flip func(models.Asset) AssetPatch) (models.Asset, bool, error) {
	for _, a := range s.LoadPartition(category) {
		if a.ID == id {
			return s.UpdateAsset(category, id, flip(a))
		}
	}
	return models.Asset{}, false, nil
}
