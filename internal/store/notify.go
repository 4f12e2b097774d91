package store

import (
	"context"
	"strings"
	"sync"
)

// notifier fans committed writes out to in-process watchers. Watchers that
// fall behind are dropped rather than allowed to block writers.
type notifier struct {
	mu       sync.Mutex
	watchers map[*watcher]struct{}
}

type watcher struct {
	prefix string
	ch     chan Event
}

func newNotifier() *notifier {
	return &notifier{watchers: make(map[*watcher]struct{})}
}

func (n *notifier) watch(ctx context.Context, prefix string) <-chan Event {
	w := &watcher{prefix: prefix, ch: make(chan Event, 64)}

	n.mu.Lock()
	n.watchers[w] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.watchers, w)
		n.mu.Unlock()
		close(w.ch)
	}()

	return w.ch
}

func (n *notifier) publish(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for w := range n.watchers {
		if !strings.HasPrefix(ev.Path, w.prefix) {
			continue
		}
		select {
		case w.ch <- ev:
		default:
			// slow watcher, skip
		}
	}
}
