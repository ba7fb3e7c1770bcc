package editor

import "sync"

// overlayState holds the highlight snapshot: the debounced copy of the
// document the colorized overlay is computed from. It is shared across
// Model value copies and with the scheduler's timer goroutine, so access is
// mutex-guarded. The snapshot lags the authoritative document by at most
// the active debounce delay and converges once the document goes quiet.
type overlayState struct {
	mu       sync.Mutex
	snapshot string
	version  uint64
}

func newOverlayState(doc string) *overlayState {
	return &overlayState{snapshot: doc}
}

func (o *overlayState) set(doc string) {
	o.mu.Lock()
	o.snapshot = doc
	o.version++
	o.mu.Unlock()
}

func (o *overlayState) get() (string, uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snapshot, o.version
}
