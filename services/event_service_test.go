// file: services/event_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"GOTCTF/models"

	"github.com/stretchr/testify/require"
)

func recvEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestBrokerDeliversInOrder(t *testing.T) {
	b := NewBroker(context.Background())
	defer b.Shutdown()

	id, ch := b.Subscribe()
	defer b.Unsubscribe(id)

	b.Publish(Event{Type: EventGameState, Revision: 1})
	b.Publish(Event{Type: EventGameState, Revision: 2})

	ev1 := recvEvent(t, ch)
	ev2 := recvEvent(t, ch)
	require.Equal(t, uint64(1), ev1.Revision)
	require.Equal(t, uint64(2), ev2.Revision)
	require.Less(t, ev1.Revision, ev2.Revision, "revisions must be monotonic so clients can drop stale pushes")
}

func TestBrokerMultipleSubscribers(t *testing.T) {
	b := NewBroker(context.Background())
	defer b.Shutdown()

	idA, chA := b.Subscribe()
	idB, chB := b.Subscribe()
	defer b.Unsubscribe(idA)
	defer b.Unsubscribe(idB)

	b.Publish(Event{Type: EventSolve, Revision: 5})

	require.Equal(t, uint64(5), recvEvent(t, chA).Revision)
	require.Equal(t, uint64(5), recvEvent(t, chB).Revision)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := NewBroker(context.Background())
	defer b.Shutdown()

	id, ch := b.Subscribe()
	b.Unsubscribe(id)

	select {
	case _, ok := <-ch:
		require.False(t, ok, "channel must be closed after unsubscribe")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after unsubscribe")
	}
}

func TestPublishHelpersNoopWithoutBroker(t *testing.T) {
	Events = nil
	// 不得 panic
	PublishGameState(models.GameState{Revision: 1})
	PublishSolve(1, "House Stark", 1)
	PublishTeamStatus(models.Team{ID: 1})
}

func TestPublishGameStateCarriesRevision(t *testing.T) {
	InitEvents(context.Background())
	defer func() { Events.Shutdown(); Events = nil }()

	id, ch := Events.Subscribe()
	defer Events.Unsubscribe(id)

	PublishGameState(models.GameState{ID: 1, Round1Locked: false, Round2Locked: true, Revision: 9})

	ev := recvEvent(t, ch)
	require.Equal(t, EventGameState, ev.Type)
	require.Equal(t, uint64(9), ev.Revision)
}
