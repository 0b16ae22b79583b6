package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"trucktrack/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishDeliversInOrder(t *testing.T) {
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	b.Subscribe(EventNotification, func(e DomainEvent) {
		ev := e.(NotificationEvent)
		mu.Lock()
		got = append(got, ev.Notification.Message)
		n := len(got)
		mu.Unlock()
		if n == 3 {
			close(done)
		}
	})

	for _, msg := range []string{"one", "two", "three"} {
		b.Publish(NotificationEvent{Notification: domain.Notification{Message: msg}})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"one", "two", "three"}, got)
}

func TestSubscribeOnlyReceivesItsType(t *testing.T) {
	b := New()
	defer b.Close()

	filterSeen := make(chan FilterChangedEvent, 1)
	b.Subscribe(EventFilterChanged, func(e DomainEvent) {
		filterSeen <- e.(FilterChangedEvent)
	})
	b.Subscribe(EventNotification, func(e DomainEvent) {
		t.Errorf("unexpected notification %v", e)
	})

	b.Publish(FilterChangedEvent{Active: domain.CuisineBBQ, Label: "BBQ"})

	select {
	case ev := <-filterSeen:
		assert.Equal(t, domain.CuisineBBQ, ev.Active)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for filter event")
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	defer b.Close()

	var calls int
	var mu sync.Mutex
	unsub := b.Subscribe(EventConfigSaved, func(DomainEvent) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	marker := make(chan struct{})
	b.Subscribe(EventConfigLoaded, func(DomainEvent) { close(marker) })

	unsub()
	b.Publish(ConfigSavedEvent{Path: "x"})
	b.Publish(ConfigLoadedEvent{Path: "x"})

	select {
	case <-marker:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for marker event")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestHandlerPanicDoesNotStopDispatch(t *testing.T) {
	b := New()
	defer b.Close()

	received := make(chan struct{})
	b.Subscribe(EventSearchSubmitted, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventSearchSubmitted, func(DomainEvent) { close(received) })

	b.Publish(SearchSubmittedEvent{Query: "tacos", Accepted: true})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran")
	}
}

func TestPublishNeverBlocksWhenFull(t *testing.T) {
	b := New(WithBuffer(1))
	defer b.Close()

	block := make(chan struct{})
	defer close(block)
	b.Subscribe(EventNotification, func(DomainEvent) { <-block })

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 50; i++ {
			b.Publish(NotificationEvent{})
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}

func TestCloseIsIdempotentAndDropsLatePublishes(t *testing.T) {
	b := New()
	b.Close()
	b.Close()

	require.NotPanics(t, func() {
		b.Publish(NotificationEvent{})
	})
}
