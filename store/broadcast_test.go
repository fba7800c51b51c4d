package store

import (
	"testing"
	"time"

	"listora/logger"
	"listora/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func waitForChange(t *testing.T, ch <-chan Change) Change {
	t.Helper()
	select {
	case change := <-ch:
		return change
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestBroadcastTriggersReload(t *testing.T) {
	s := newTestStore(t)

	// second independent observer, subscribed before the mutation
	changes, cancel := s.Broadcaster().Subscribe()
	defer cancel()

	created, _, err := s.AddAsset(models.CategoryContent, testAsset("", "Fresh"))
	require.NoError(t, err)

	change := waitForChange(t, changes)
	require.Equal(t, models.CategoryContent.StorageKey(), change.Key)
	require.Equal(t, OpAdd, change.Op)

	// the observer reloads on notification and sees the just-written value
	reloaded := s.LoadPartition(models.CategoryContent)
	require.Len(t, reloaded, 1)
	require.Equal(t, created.ID, reloaded[0].ID)
}

func TestEveryMutationKindBroadcasts(t *testing.T) {
	s := newTestStore(t)

	changes, cancel := s.Broadcaster().Subscribe()
	defer cancel()

	created, _, err := s.AddAsset(models.CategoryCoach, testAsset("", "One"))
	require.NoError(t, err)
	require.Equal(t, OpAdd, waitForChange(t, changes).Op)

	title := "Two"
	_, _, err = s.UpdateAsset(models.CategoryCoach, created.ID, AssetPatch{Title: &title})
	require.NoError(t, err)
	require.Equal(t, OpUpdate, waitForChange(t, changes).Op)

	require.NoError(t, s.DeleteAsset(models.CategoryCoach, created.ID))
	require.Equal(t, OpDelete, waitForChange(t, changes).Op)

	require.NoError(t, s.SavePartition(models.CategoryCoach, nil))
	require.Equal(t, OpReplace, waitForChange(t, changes).Op)
}

func TestNoopsDoNotBroadcast(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SavePartition(models.CategoryContent, []models.Asset{testAsset("a", "Foo")}))

	changes, cancel := s.Broadcaster().Subscribe()
	defer cancel()

	// duplicate add, missing-id update, missing-id delete, abandoned delete
	_, result, err := s.AddAsset(models.CategoryContent, testAsset("", "Foo"))
	require.NoError(t, err)
	require.Equal(t, AddDuplicate, result)

	title := "x"
	_, changed, err := s.UpdateAsset(models.CategoryContent, "nope", AssetPatch{Title: &title})
	require.NoError(t, err)
	require.False(t, changed)

	require.NoError(t, s.DeleteAsset(models.CategoryContent, "nope"))
	require.ErrorIs(t, s.DeleteAsset(models.CategoryCoach, "nope"), ErrPartitionUnavailable)

	select {
	case change := <-changes:
		t.Fatalf("unexpected broadcast: %+v", change)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscriptionsDoNotLeak(t *testing.T) {
	defer goleak.VerifyNone(t)

	b := NewBroadcaster(logger.NewNop())

	// repeated mount/unmount cycles must release everything
	for i := 0; i < 100; i++ {
		ch, cancel := b.Subscribe()
		b.Publish(Change{Key: "contentAssets", Op: OpAdd})
		<-ch
		cancel()
	}
	require.Equal(t, 0, b.subscriberCount())

	// cancelling twice is safe, and a stale cancel doesn't touch others
	ch1, cancel1 := b.Subscribe()
	cancel1()
	cancel1()
	_, open := <-ch1
	require.False(t, open)

	_, cancel2 := b.Subscribe()
	require.Equal(t, 1, b.subscriberCount())
	cancel2()
	require.Equal(t, 0, b.subscriberCount())
}

func TestSlowSubscriberDoesNotBlockPublisher(t *testing.T) {
	b := NewBroadcaster(logger.NewNop())

	ch, cancel := b.Subscribe()
	defer cancel()

	// fill the buffer and keep going; Publish must never block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			b.Publish(Change{Key: "contentAssets", Op: OpUpdate})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}
	require.NotEmpty(t, ch)
}
