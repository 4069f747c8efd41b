package feed

import "sync"

// Latest is a single-slot mailbox handing documents from a producer goroutine
// to the frame loop. Newer documents overwrite unread ones.
type Latest struct {
	mu      sync.Mutex
	doc     Document
	version uint64
	taken   uint64
}

// Publish stores doc as the newest document.
func (l *Latest) Publish(doc Document) {
	l.mu.Lock()
	l.doc = doc
	l.version++
	l.mu.Unlock()
}

// Take returns the newest document if it has not been taken yet.
func (l *Latest) Take() (Document, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.version == l.taken {
		return Document{}, false
	}
	l.taken = l.version
	return l.doc, true
}
