package store

import (
	"path/filepath"
	"testing"
	"time"

	"listora/logger"
	"listora/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.AutoMigrate(&models.StoreEntry{}).Error)
	return New(database, logger.NewNop())
}

func testAsset(id, title string) models.Asset {
	return models.Asset{
		ID:        id,
		Type:      models.AssetTypePrompt,
		Title:     title,
		Source:    models.SourceCreated,
		Icon:      models.DefaultIcon(models.AssetTypePrompt),
		DateAdded: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestPartitionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []models.Asset{
		testAsset("a", "First"),
		testAsset("b", "Second"),
		testAsset("c", "Third"),
	}
	require.NoError(t, s.SavePartition(models.CategoryContent, want))

	got := s.LoadPartition(models.CategoryContent)
	require.Equal(t, want, got, "order must survive the round trip")
}

func TestLoadPartitionAbsent(t *testing.T) {
	s := newTestStore(t)

	got := s.LoadPartition(models.CategoryCoach)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestLoadPartitionCorrupt(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SetRaw(models.CategoryContent.StorageKey(), "{not valid json")
	require.NoError(t, err)

	got := s.LoadPartition(models.CategoryContent)
	require.NotNil(t, got)
	require.Empty(t, got, "corrupt value must read as an empty partition, not an error")
}

func TestVersionIncreasesOnEverySave(t *testing.T) {
	s := newTestStore(t)

	v1, err := s.SetRaw("contentAssets", "[]")
	require.NoError(t, err)
	v2, err := s.SetRaw("contentAssets", `[{"id":"a"}]`)
	require.NoError(t, err)
	v3, err := s.SetRaw("contentAssets", "[]")
	require.NoError(t, err)

	require.Equal(t, int64(1), v1)
	require.Equal(t, int64(2), v2)
	require.Equal(t, int64(3), v3)
}

func TestChatSessionsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	want := []models.ChatSession{
		{Title: "Buyer follow-up", Path: "/chats/1", Pinned: true},
		{Title: "Listing questions", Path: "/chats/2", SkipSuggestions: true},
	}
	require.NoError(t, s.SaveChats(models.CategoryCompliance, want))
	require.Equal(t, want, s.LoadChats(models.CategoryCompliance))

	require.Empty(t, s.LoadChats(models.CategoryContent))
}

func TestSettingsBlob(t *testing.T) {
	s := newTestStore(t)

	_, found := s.GetSettings(models.SettingsAccount)
	require.False(t, found)

	blob := []byte(`{"name":"Dana","emailDigest":true}`)
	require.NoError(t, s.SaveSettings(models.SettingsAccount, blob))

	got, found := s.GetSettings(models.SettingsAccount)
	require.True(t, found)
	require.JSONEq(t, string(blob), string(got))
}
