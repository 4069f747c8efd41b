package feed

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

// Subscriber streams agents documents from a websocket endpoint. Every text or
// binary message must hold one complete document. Invalid messages are logged
// and skipped; dropped connections are retried with capped exponential backoff.
type Subscriber struct {
	URL    string
	Logger *log.Logger
	Dialer *websocket.Dialer

	MinBackoff time.Duration
	MaxBackoff time.Duration
}

// Run publishes every valid document into out until ctx is cancelled.
func (s *Subscriber) Run(ctx context.Context, out *Latest) error {
	backoff := s.minBackoff()
	for {
		connected, err := s.session(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if connected {
			backoff = s.minBackoff()
		}
		s.logf("feed %s: %v (retrying in %s)", s.URL, err, backoff)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
		if max := s.maxBackoff(); backoff > max {
			backoff = max
		}
	}
}

// session handles one connection. It reports whether the dial succeeded.
func (s *Subscriber) session(ctx context.Context, out *Latest) (bool, error) {
	dialer := s.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}
	conn, _, err := dialer.DialContext(ctx, s.URL, nil)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	s.logf("feed %s: connected", s.URL)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return true, errors.New("closed by server")
			}
			return true, err
		}
		doc, err := Decode(msg)
		if err != nil {
			s.logf("feed %s: skipping message: %v", s.URL, err)
			continue
		}
		out.Publish(doc)
	}
}

func (s *Subscriber) minBackoff() time.Duration {
	if s.MinBackoff <= 0 {
		return 500 * time.Millisecond
	}
	return s.MinBackoff
}

func (s *Subscriber) maxBackoff() time.Duration {
	if s.MaxBackoff <= 0 {
		return 30 * time.Second
	}
	if s.MaxBackoff < s.minBackoff() {
		return s.minBackoff()
	}
	return s.MaxBackoff
}

func (s *Subscriber) logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
