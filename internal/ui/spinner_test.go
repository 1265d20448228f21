package ui

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// syncBuffer guards a bytes.Buffer written from the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinnerDrawsAndClears(t *testing.T) {
	var out syncBuffer
	s := NewSpinner(&out, "working")
	s.delay = 5 * time.Millisecond

	s.Start()
	s.Start() // second start is a no-op
	assert.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte("working"))
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop()
	assert.False(t, s.Active())
	assert.Contains(t, out.String(), "\r\033[K")
}
