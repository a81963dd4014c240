package storage

import "sync"

// Entity names a watchable table group. Subscribers re-run their query on
// every signal to get a fresh, self-consistent snapshot; signals carry no
// delta.
type Entity string

const (
	EntityExercises Entity = "exercises"
	EntityTemplates Entity = "templates"
	EntityPrograms  Entity = "programs"
	EntityWorkouts  Entity = "workouts"
	EntityRecords   Entity = "records"
	EntityCycle     Entity = "cycle"
	EntityDraft     Entity = "draft"
	EntitySettings  Entity = "settings"
)

// watcher fans out change signals per entity. Signals are coalesced: a
// subscriber that has not drained its channel sees one pending signal, not a
// backlog.
type watcher struct {
	mu   sync.Mutex
	subs map[Entity]map[int]chan struct{}
	next int
}

func newWatcher() *watcher {
	return &watcher{subs: make(map[Entity]map[int]chan struct{})}
}

func (w *watcher) subscribe(e Entity) (<-chan struct{}, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++

	ch := make(chan struct{}, 1)
	if w.subs[e] == nil {
		w.subs[e] = make(map[int]chan struct{})
	}
	w.subs[e][id] = ch

	cancel := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.subs[e], id)
	}
	return ch, cancel
}

func (w *watcher) notify(entities ...Entity) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, e := range entities {
		for _, ch := range w.subs[e] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}

// Watch returns a channel that signals after every committed write to the
// given entity, plus a cancel func releasing the subscription. Combined with
// the query methods this forms the observable-query contract: read now,
// re-read on signal.
func (db *DB) Watch(e Entity) (<-chan struct{}, func()) {
	return db.watcher.subscribe(e)
}
