package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// MirrorWriter forwards log lines to a TCP log collector without ever
// blocking the request path. It holds one connection open and drops lines
// while the collector is unreachable, retrying after a cool-down.
type MirrorWriter struct {
	addr          string
	dialTimeout   time.Duration
	writeTimeout  time.Duration
	retryInterval time.Duration

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

// Option configures a MirrorWriter.
type Option func(*MirrorWriter)

// WithDialTimeout overrides the TCP dial timeout. Defaults to 2 seconds.
func WithDialTimeout(d time.Duration) Option {
	return func(w *MirrorWriter) {
		w.dialTimeout = d
	}
}

// WithWriteTimeout overrides the TCP write timeout. Defaults to 1 second.
func WithWriteTimeout(d time.Duration) Option {
	return func(w *MirrorWriter) {
		w.writeTimeout = d
	}
}

// WithRetryInterval overrides the cool-down window after a failed connect or
// write. Defaults to 5 seconds.
func WithRetryInterval(d time.Duration) Option {
	return func(w *MirrorWriter) {
		w.retryInterval = d
	}
}

// NewMirrorWriter returns a writer that mirrors log output to a TCP
// collector. It is safe for concurrent use by multiple goroutines.
func NewMirrorWriter(addr string, opts ...Option) (*MirrorWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logging: empty mirror address")
	}

	w := &MirrorWriter{
		addr:          addr,
		dialTimeout:   2 * time.Second,
		writeTimeout:  time.Second,
		retryInterval: 5 * time.Second,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Write implements io.Writer. Delivery is best effort: when the collector is
// down the payload is dropped and the caller still sees a full write.
func (w *MirrorWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}

	if err := w.ensureConnLocked(); err != nil {
		return len(p), nil
	}

	if w.writeTimeout > 0 {
		_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeTimeout))
	}

	if _, err := w.conn.Write(data); err != nil {
		w.closeConnLocked()
		w.scheduleRetryLocked()
		return len(p), nil
	}

	return len(p), nil
}

// Close tears down the underlying TCP connection.
func (w *MirrorWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true
	return w.closeConnLocked()
}

func (w *MirrorWriter) ensureConnLocked() error {
	if w.conn != nil {
		return nil
	}

	now := time.Now()
	if !w.nextRetry.IsZero() && now.Before(w.nextRetry) {
		return errRetryCooldown
	}

	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.scheduleRetryLocked()
		return err
	}

	w.conn = conn
	w.nextRetry = time.Time{}
	return nil
}

func (w *MirrorWriter) closeConnLocked() error {
	if w.conn == nil {
		return nil
	}

	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *MirrorWriter) scheduleRetryLocked() {
	if w.retryInterval <= 0 {
		w.nextRetry = time.Time{}
		return
	}
	w.nextRetry = time.Now().Add(w.retryInterval)
}

var errRetryCooldown = errors.New("logging: retry cooldown in effect")
