package store

import (
	"testing"

	"listora/models"

	"github.com/stretchr/testify/require"
)

func TestAddAssetDefaults(t *testing.T) {
	s := newTestStore(t)

	created, result, err := s.AddAsset(models.CategoryContent, models.Asset{
		Type:  models.AssetTypePrompt,
		Title: "Neighborhood Guide",
	})
	require.NoError(t, err)
	require.Equal(t, AddOK, result)

	require.NotEmpty(t, created.ID, "id must be generated when unset")
	require.Equal(t, models.CategoryContent, created.Category)
	require.Equal(t, models.DefaultIcon(models.AssetTypePrompt), created.Icon)
	require.False(t, created.DateAdded.IsZero())

	stored := s.LoadPartition(models.CategoryContent)
	require.Len(t, stored, 1)
	require.Equal(t, created.ID, stored[0].ID)
}

func TestAddAssetKeepsProvidedID(t *testing.T) {
	s := newTestStore(t)

	created, result, err := s.AddAsset(models.CategoryCoach, testAsset("fixed-id", "Script"))
	require.NoError(t, err)
	require.Equal(t, AddOK, result)
	require.Equal(t, "fixed-id", created.ID)
}

func TestDuplicatePromptGuardIsPartitionScoped(t *testing.T) {
	s := newTestStore(t)

	_, result, err := s.AddAsset(models.CategoryContent, testAsset("", "Foo"))
	require.NoError(t, err)
	require.Equal(t, AddOK, result)

	before, _, _ := s.GetRaw(models.CategoryContent.StorageKey())

	// same title, same partition, type prompt: no-op signal, bytes untouched
	_, result, err = s.AddAsset(models.CategoryContent, testAsset("", "Foo"))
	require.NoError(t, err)
	require.Equal(t, AddDuplicate, result)
	after, _, _ := s.GetRaw(models.CategoryContent.StorageKey())
	require.Equal(t, before, after)

	// same title in another partition succeeds
	_, result, err = s.AddAsset(models.CategoryCompliance, testAsset("", "Foo"))
	require.NoError(t, err)
	require.Equal(t, AddOK, result)

	// same title, same partition, but not a prompt: guard does not apply
	pdf := testAsset("", "Foo")
	pdf.Type = models.AssetTypePDF
	_, result, err = s.AddAsset(models.CategoryContent, pdf)
	require.NoError(t, err)
	require.Equal(t, AddOK, result)
	require.Len(t, s.LoadPartition(models.CategoryContent), 2)
}

func TestDuplicateGuardIsCaseSensitive(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.AddAsset(models.CategoryContent, testAsset("", "Foo"))
	require.NoError(t, err)

	_, result, err := s.AddAsset(models.CategoryContent, testAsset("", "foo"))
	require.NoError(t, err)
	require.Equal(t, AddOK, result)
}

func TestUpdateAsset(t *testing.T) {
	s := newTestStore(t)

	created, _, err := s.AddAsset(models.CategoryContent, testAsset("", "Draft"))
	require.NoError(t, err)

	title := "Final"
	pinned := true
	updated, changed, err := s.UpdateAsset(models.CategoryContent, created.ID, AssetPatch{
		Title:  &title,
		Pinned: &pinned,
	})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "Final", updated.Title)
	require.True(t, updated.Pinned)
	require.Equal(t, created.DateAdded, updated.DateAdded, "dateAdded is never mutated")

	stored := s.LoadPartition(models.CategoryContent)
	require.Equal(t, "Final", stored[0].Title)
}

func TestUpdateMissingIDIsSilentNoop(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.AddAsset(models.CategoryContent, testAsset("", "Keep"))
	require.NoError(t, err)
	before, _, _ := s.GetRaw(models.CategoryContent.StorageKey())

	title := "Ignored"
	_, changed, err := s.UpdateAsset(models.CategoryContent, "no-such-id", AssetPatch{Title: &title})
	require.NoError(t, err)
	require.False(t, changed)

	after, _, _ := s.GetRaw(models.CategoryContent.StorageKey())
	require.Equal(t, before, after)
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	created, _, err := s.AddAsset(models.CategoryCoach, testAsset("", "Script"))
	require.NoError(t, err)
	before, _, _ := s.GetRaw(models.CategoryCoach.StorageKey())

	// deleting a non-existent id leaves the partition byte-for-byte unchanged
	require.NoError(t, s.DeleteAsset(models.CategoryCoach, "no-such-id"))
	after, _, _ := s.GetRaw(models.CategoryCoach.StorageKey())
	require.Equal(t, before, after)

	require.NoError(t, s.DeleteAsset(models.CategoryCoach, created.ID))
	require.Empty(t, s.LoadPartition(models.CategoryCoach))

	// and deleting it again is still fine
	require.NoError(t, s.DeleteAsset(models.CategoryCoach, created.ID))
}

func TestDeleteOnUnavailablePartition(t *testing.T) {
	s := newTestStore(t)

	// never-written partition
	err := s.DeleteAsset(models.CategoryContent, "x")
	require.ErrorIs(t, err, ErrPartitionUnavailable)

	// corrupt partition: deletion abandoned, stored bytes untouched
	_, setErr := s.SetRaw(models.CategoryContent.StorageKey(), "garbage")
	require.NoError(t, setErr)
	err = s.DeleteAsset(models.CategoryContent, "x")
	require.ErrorIs(t, err, ErrPartitionUnavailable)

	raw, _, found := s.GetRaw(models.CategoryContent.StorageKey())
	require.True(t, found)
	require.Equal(t, "garbage", raw)
}

func TestToggleFlags(t *testing.T) {
	s := newTestStore(t)

	created, _, err := s.AddAsset(models.CategoryContent, testAsset("", "Pin me"))
	require.NoError(t, err)

	a, changed, err := s.TogglePinned(models.CategoryContent, created.ID)
	require.NoError(t, err)
	require.True(t, changed)
	require.True(t, a.Pinned)

	a, _, err = s.TogglePinned(models.CategoryContent, created.ID)
	require.NoError(t, err)
	require.False(t, a.Pinned)

	a, _, err = s.ToggleHidden(models.CategoryContent, created.ID)
	require.NoError(t, err)
	require.True(t, a.Hidden)
	// hidden records stay in storage
	require.Len(t, s.LoadPartition(models.CategoryContent), 1)

	_, changed, err = s.TogglePinned(models.CategoryContent, "no-such-id")
	require.NoError(t, err)
	require.False(t, changed)
}

func TestCountsMatchPartitionLengths(t *testing.T) {
	s := newTestStore(t)

	// never assumes the source partitions exist
	snap, err := s.RecomputeCounts()
	require.NoError(t, err)
	require.Equal(t, models.CountSnapshot{}, snap)

	var coachID string
	for i, category := range []models.Category{
		models.CategoryContent, models.CategoryContent, models.CategoryContent,
		models.CategoryCoach, models.CategoryCoach,
		models.CategoryCompliance,
	} {
		a := testAsset("", "Asset "+string(rune('A'+i)))
		created, _, err := s.AddAsset(category, a)
		require.NoError(t, err)
		if category == models.CategoryCoach {
			coachID = created.ID
		}
	}
	require.NoError(t, s.DeleteAsset(models.CategoryCoach, coachID))

	snap, err = s.RecomputeCounts()
	require.NoError(t, err)
	require.Equal(t, len(s.LoadPartition(models.CategoryContent)), snap.Content)
	require.Equal(t, len(s.LoadPartition(models.CategoryCoach)), snap.Coach)
	require.Equal(t, len(s.LoadPartition(models.CategoryCompliance)), snap.Compliance)
	require.Equal(t, models.CountSnapshot{Content: 3, Coach: 1, Compliance: 1}, snap)

	// the cache is rebuilt, not trusted
	cached, found := s.CachedCounts()
	require.True(t, found)
	require.Equal(t, snap, cached)
}

func TestCountsIncludeHiddenAndAllTypes(t *testing.T) {
	s := newTestStore(t)

	hidden := testAsset("", "Hidden one")
	hidden.Hidden = true
	_, _, err := s.AddAsset(models.CategoryContent, hidden)
	require.NoError(t, err)

	video := testAsset("", "Tour video")
	video.Type = models.AssetTypeVideo
	_, _, err = s.AddAsset(models.CategoryContent, video)
	require.NoError(t, err)

	snap, err := s.RecomputeCounts()
	require.NoError(t, err)
	require.Equal(t, 2, snap.Content, "hidden records and every type count equally")
}
