// Package hostaudio is a host-side audio sink: paced sample blocks from the
// adapter go into a ring buffer, and the OS audio layer pulls from it.
package hostaudio

import (
	"io"
	"sync"
)

// RingBuffer is a fixed-capacity byte ring connecting the emulation thread
// (writer) to the audio device (reader). Writes never block: when full, the
// oldest bytes are dropped so playback stays near real time. Reads block
// until data arrives or the buffer is closed.
type RingBuffer struct {
	mu       sync.Mutex
	dataCond *sync.Cond

	buf      []byte
	readPos  int
	writePos int
	count    int
	closed   bool
}

// NewRingBuffer creates a ring buffer with the given capacity in bytes.
func NewRingBuffer(capacity int) *RingBuffer {
	rb := &RingBuffer{
		buf: make([]byte, capacity),
	}
	rb.dataCond = sync.NewCond(&rb.mu)
	return rb
}

// Write copies data into the ring, dropping the oldest buffered bytes on
// overflow. Writes to a closed buffer are ignored.
func (rb *RingBuffer) Write(data []byte) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	if rb.closed || len(rb.buf) == 0 {
		return
	}

	// If the chunk alone exceeds capacity, only its tail can survive.
	if len(data) > len(rb.buf) {
		data = data[len(data)-len(rb.buf):]
	}

	// Drop oldest bytes to make room.
	if overflow := rb.count + len(data) - len(rb.buf); overflow > 0 {
		rb.readPos = (rb.readPos + overflow) % len(rb.buf)
		rb.count -= overflow
	}

	n := copy(rb.buf[rb.writePos:], data)
	if n < len(data) {
		copy(rb.buf, data[n:])
	}
	rb.writePos = (rb.writePos + len(data)) % len(rb.buf)
	rb.count += len(data)

	rb.dataCond.Signal()
}

// Read blocks until buffered data is available, then copies up to len(p)
// bytes. After Close it drains remaining data, then returns io.EOF.
func (rb *RingBuffer) Read(p []byte) (int, error) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	for rb.count == 0 && !rb.closed {
		rb.dataCond.Wait()
	}
	if rb.count == 0 {
		return 0, io.EOF
	}

	n := len(p)
	if n > rb.count {
		n = rb.count
	}

	copied := copy(p[:n], rb.buf[rb.readPos:])
	if copied < n {
		copy(p[copied:n], rb.buf)
	}
	rb.readPos = (rb.readPos + n) % len(rb.buf)
	rb.count -= n

	return n, nil
}

// Buffered returns the number of bytes currently held.
func (rb *RingBuffer) Buffered() int {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	return rb.count
}

// Clear discards all buffered bytes.
func (rb *RingBuffer) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.readPos = 0
	rb.writePos = 0
	rb.count = 0
}

// Close marks the buffer closed and wakes any blocked reader. Remaining
// data stays readable until drained.
func (rb *RingBuffer) Close() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	rb.closed = true
	rb.dataCond.Broadcast()
}
