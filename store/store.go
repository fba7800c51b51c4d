package store

import (
	"encoding/json"
	"errors"

	"listora/logger"
	"listora/models"

	"github.com/jinzhu/gorm"
)

// ErrPartitionUnavailable reports that a partition's stored value is
// missing or unreadable at a point where the caller asked for a strict
// load (delete). It is recoverable: the caller abandons the operation.
var ErrPartitionUnavailable = errors.New("partition unavailable")

// Store is the partitioned key-value store. Each key holds a whole
// serialized list; every write replaces the value in full
// (last-writer-wins per key). All mutations funnel through here and end
// with a broadcast on success.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
	bc  *Broadcaster
}

func New(database *gorm.DB, log *logger.Logger) *Store {
	return &Store{
		db:  database,
		log: log.With("component", "Store"),
		bc:  NewBroadcaster(log),
	}
}

func (s *Store) Broadcaster() *Broadcaster {
	return s.bc
}

// GetRaw reads the raw serialized value for a key. found is false when
// the key has never been written.
func (s *Store) GetRaw(key string) (value string, version int64, found bool) {
	var entry models.StoreEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			s.log.Warn("store read failed", "key", key, "error", err)
		}
		return "", 0, false
	}
	return entry.Value, entry.Version, true
}

// SetRaw replaces the stored value for a key and bumps its version.
// It does not broadcast; callers notify after a successful write.
func (s *Store) SetRaw(key, value string) (int64, error) {
	var entry models.StoreEntry
	err := s.db.Where("key = ?", key).First(&entry).Error
	if gorm.IsRecordNotFoundError(err) {
		entry = models.StoreEntry{Key: key, Value: value, Version: 1}
		if err := s.db.Create(&entry).Error; err != nil {
			return 0, err
		}
		return entry.Version, nil
	}
	if err != nil {
		return 0, err
	}
	entry.Value = value
	entry.Version++
	if err := s.db.Save(&entry).Error; err != nil {
		return 0, err
	}
	return entry.Version, nil
}

// LoadPartition reads a category's asset list. An absent key yields an
// empty list; a corrupt value yields an empty list and a diagnostic,
// never an error to the caller.
func (s *Store) LoadPartition(category models.Category) []models.Asset {
	raw, _, found := s.GetRaw(category.StorageKey())
	if !found {
		return []models.Asset{}
	}
	var assets []models.Asset
	if err := json.Unmarshal([]byte(raw), &assets); err != nil {
		s.log.Warn("corrupt partition, treating as empty",
			"key", category.StorageKey(), "error", err)
		return []models.Asset{}
	}
	if assets == nil {
		assets = []models.Asset{}
	}
	return assets
}

// SavePartition serializes and replaces a category's asset list
// unconditionally, then broadcasts the change.
func (s *Store) SavePartition(category models.Category, assets []models.Asset) error {
	version, err := s.writePartition(category, assets)
	if err != nil {
		return err
	}
	s.bc.Publish(Change{Key: category.StorageKey(), Op: OpReplace, Version: version})
	return nil
}

func (s *Store) writePartition(category models.Category, assets []models.Asset) (int64, error) {
	if assets == nil {
		assets = []models.Asset{}
	}
	raw, err := json.Marshal(assets)
	if err != nil {
		return 0, err
	}
	return s.SetRaw(category.StorageKey(), string(raw))
}

/************************************************
/**** MARK: CHAT SESSIONS ****/
/************************************************/

// LoadChats reads a category's active chat-session list with the same
// lenient semantics as LoadPartition.
func (s *Store) LoadChats(category models.Category) []models.ChatSession {
	raw, _, found := s.GetRaw(category.ChatStorageKey())
	if !found {
		return []models.ChatSession{}
	}
	var sessions []models.ChatSession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		s.log.Warn("corrupt chat list, treating as empty",
			"key", category.ChatStorageKey(), "error", err)
		return []models.ChatSession{}
	}
	if sessions == nil {
		sessions = []models.ChatSession{}
	}
	return sessions
}

func (s *Store) SaveChats(category models.Category, sessions []models.ChatSession) error {
	if sessions == nil {
		sessions = []models.ChatSession{}
	}
	raw, err := json.Marshal(sessions)
	if err != nil {
		return err
	}
	version, err := s.SetRaw(category.ChatStorageKey(), string(raw))
	if err != nil {
		return err
	}
	s.bc.Publish(Change{Key: category.ChatStorageKey(), Op: OpReplace, Version: version})
	return nil
}

/************************************************
/**** MARK: SETTINGS ****/
/************************************************/

// GetSettings returns a section's raw JSON blob, or found=false when the
// section was never written or the stored value is not valid JSON.
func (s *Store) GetSettings(section models.SettingsSection) (json.RawMessage, bool) {
	raw, _, found := s.GetRaw(section.StorageKey())
	if !found {
		return nil, false
	}
	if !json.Valid([]byte(raw)) {
		s.log.Warn("corrupt settings blob", "key", section.StorageKey())
		return nil, false
	}
	return json.RawMessage(raw), true
}

func (s *Store) SaveSettings(section models.SettingsSection, blob json.RawMessage) error {
	version, err := s.SetRaw(section.StorageKey(), string(blob))
	if err != nil {
		return err
	}
	s.bc.Publish(Change{Key: section.StorageKey(), Op: OpReplace, Version: version})
	return nil
}
