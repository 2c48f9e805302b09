/*
 * MIT License
 *
 * Copyright (c) 2022-2025 Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package port

import (
	"context"
	"errors"
	"sync"
	"time"
)

var (
	// ErrClosed is returned when sending through or receiving from a reply
	// port that has been closed without a value. A closed port means the
	// other side chose not to (or could no longer) answer.
	ErrClosed = errors.New("reply port is closed")

	// ErrTimeout is returned to the caller when no value arrived through the
	// reply port before the deadline elapsed.
	ErrTimeout = errors.New("reply port timed out")

	// ErrAlreadyReplied is returned when sending through a reply port that
	// has already carried its single value.
	ErrAlreadyReplied = errors.New("reply port has already been replied to")
)

// ReplyPort is a single-use reply channel carrying at most one value of type T.
//
// A ReplyPort is created by a caller performing a synchronous request against
// an actor and travels inside the request message. The receiving actor replies
// through Send, or closes the port to signal that no answer will come.
//
// Semantics
//   - At most one value is ever delivered through a given port.
//   - Close is irreversible; Send after Close fails with ErrClosed.
//   - The receiving side should check IsClosed before doing expensive work:
//     the caller may have timed out and dropped the port already.
//
// A ReplyPort must not be shared between multiple repliers expecting to each
// deliver a value; only the first Send wins.
type ReplyPort[T any] struct {
	mu      sync.Mutex
	values  chan T
	done    chan struct{}
	closed  bool
	replied bool
}

// NewReplyPort creates a fresh, open reply port.
func NewReplyPort[T any]() *ReplyPort[T] {
	return &ReplyPort[T]{
		values: make(chan T, 1),
		done:   make(chan struct{}),
	}
}

// Send delivers the given value to the awaiting caller.
// It fails with ErrClosed when the port has been closed and with
// ErrAlreadyReplied when a value has already been delivered. Send never
// blocks and never panics.
func (p *ReplyPort[T]) Send(value T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrClosed
	}
	if p.replied {
		return ErrAlreadyReplied
	}
	p.replied = true
	p.values <- value
	return nil
}

// Close closes the port without delivering a value. Closing an already
// closed or already replied-to port is a no-op.
func (p *ReplyPort[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
}

// IsClosed reports whether the port has been closed without a value.
func (p *ReplyPort[T]) IsClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Receive blocks until a value is delivered, the port is closed, the timeout
// elapses, or the context is canceled. A timeout of zero or less means no
// timeout. The closed-without-value and timed-out outcomes are reported as
// the distinct errors ErrClosed and ErrTimeout.
//
// On timeout or context cancellation the port is closed so that a late
// replier can observe the disconnection through IsClosed.
func (p *ReplyPort[T]) Receive(ctx context.Context, timeout time.Duration) (T, error) {
	var zero T
	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case value := <-p.values:
		return value, nil
	case <-p.done:
		// a value may have been delivered just before the close
		select {
		case value := <-p.values:
			return value, nil
		default:
		}
		return zero, ErrClosed
	case <-expired:
		p.Close()
		return zero, ErrTimeout
	case <-ctx.Done():
		p.Close()
		return zero, ctx.Err()
	}
}
