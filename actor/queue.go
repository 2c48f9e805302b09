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

package actor

import (
	gods "github.com/Workiva/go-datastructures/queue"
)

// messageQueue is the FIFO backing the Message class of a mailbox. The three
// control classes are always unbounded; only the user-message class is
// swappable so it can be bounded for backpressure.
//
// Implementations are NOT thread-safe on their own: the owning mailbox
// serializes access under its lock.
type messageQueue interface {
	// push appends a message at the tail.
	push(message any) error
	// pop removes and returns the head message. The boolean is false when
	// the queue is empty.
	pop() (any, bool)
	// size returns the number of queued messages.
	size() int
	// dispose releases any resources held by the queue.
	dispose()
}

// unboundedQueue is a grow-only slice ring. Popped slots are nilled out and
// the backing array is compacted once the dead prefix dominates.
type unboundedQueue struct {
	items []any
	head  int
}

// enforce compilation error
var _ messageQueue = (*unboundedQueue)(nil)

func newUnboundedQueue() *unboundedQueue {
	return &unboundedQueue{}
}

func (q *unboundedQueue) push(message any) error {
	q.items = append(q.items, message)
	return nil
}

func (q *unboundedQueue) pop() (any, bool) {
	if q.head >= len(q.items) {
		return nil, false
	}
	message := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return message, true
}

func (q *unboundedQueue) size() int {
	return len(q.items) - q.head
}

func (q *unboundedQueue) dispose() {
	q.items = nil
	q.head = 0
}

// boundedQueue caps the Message class at a fixed capacity using a ring
// buffer. Enqueueing into a full queue fails with ErrMailboxFull instead of
// blocking the producer.
type boundedQueue struct {
	ring *gods.RingBuffer
}

// enforce compilation error
var _ messageQueue = (*boundedQueue)(nil)

func newBoundedQueue(capacity int) *boundedQueue {
	return &boundedQueue{
		ring: gods.NewRingBuffer(uint64(capacity)),
	}
}

func (q *boundedQueue) push(message any) error {
	ok, err := q.ring.Offer(message)
	if err != nil {
		return ErrDead
	}
	if !ok {
		return ErrMailboxFull
	}
	return nil
}

func (q *boundedQueue) pop() (any, bool) {
	if q.ring.Len() == 0 {
		return nil, false
	}
	// the mailbox lock guarantees a single consumer, so Get returns
	// immediately when Len is non-zero
	message, err := q.ring.Get()
	if err != nil {
		return nil, false
	}
	return message, true
}

func (q *boundedQueue) size() int {
	return int(q.ring.Len())
}

func (q *boundedQueue) dispose() {
	q.ring.Dispose()
}
