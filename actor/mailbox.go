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
	"sync"
)

// messageClass identifies one of the four priority classes of a mailbox.
type messageClass int

const (
	classSignal messageClass = iota
	classStop
	classSupervision
	classMessage
)

// envelope is what the lifecycle driver dequeues: the class tag selects
// which of the payload fields is meaningful.
type envelope struct {
	class   messageClass
	signal  Signal
	stop    stopRequest
	event   SupervisionEvent
	message any
}

// mailbox is the per-actor four-class priority queue.
//
// Multiple producers may enqueue concurrently; exactly one consumer — the
// actor's own lifecycle driver — dequeues. dequeue always drains a non-empty
// higher class before inspecting a lower one (Signal > Stop > Supervision >
// Message), and preserves FIFO order within a class.
//
// The mailbox is a condition-variable-guarded set of four FIFO sequences
// rather than a single merged queue: strict class priority cannot be
// guaranteed cheaply by post-hoc filtering of one sequence.
type mailbox struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	closed   bool

	signals  []Signal
	stops    []stopRequest
	events   []SupervisionEvent
	messages messageQueue
}

// newMailbox creates a mailbox. A capacity of zero or less leaves the
// Message class unbounded; a positive capacity bounds it.
func newMailbox(capacity int) *mailbox {
	var messages messageQueue
	if capacity > 0 {
		messages = newBoundedQueue(capacity)
	} else {
		messages = newUnboundedQueue()
	}
	m := &mailbox{messages: messages}
	m.notEmpty = sync.NewCond(&m.mu)
	return m
}

// enqueueSignal appends a control signal. Signals outrank every other class.
func (m *mailbox) enqueueSignal(signal Signal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrDead
	}
	m.signals = append(m.signals, signal)
	m.notEmpty.Signal()
	return nil
}

// enqueueStop appends a cooperative stop request.
func (m *mailbox) enqueueStop(stop stopRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrDead
	}
	m.stops = append(m.stops, stop)
	m.notEmpty.Signal()
	return nil
}

// enqueueEvent appends a supervision event.
func (m *mailbox) enqueueEvent(event SupervisionEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrDead
	}
	m.events = append(m.events, event)
	m.notEmpty.Signal()
	return nil
}

// enqueueMessage appends a user message. It fails with ErrDead when the
// mailbox has been closed and with ErrMailboxFull when a bounded Message
// class is at capacity.
func (m *mailbox) enqueueMessage(message any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrDead
	}
	if err := m.messages.push(message); err != nil {
		return err
	}
	m.notEmpty.Signal()
	return nil
}

// dequeue blocks without busy-waiting until at least one class is non-empty,
// then returns the head of the highest-priority non-empty class. The boolean
// is false when the mailbox has been closed and fully drained.
//
// dequeue must only be called by the single consumer goroutine.
func (m *mailbox) dequeue() (envelope, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for {
		if len(m.signals) > 0 {
			signal := m.signals[0]
			m.signals = m.signals[1:]
			return envelope{class: classSignal, signal: signal}, true
		}
		if len(m.stops) > 0 {
			stop := m.stops[0]
			m.stops = m.stops[1:]
			return envelope{class: classStop, stop: stop}, true
		}
		if len(m.events) > 0 {
			event := m.events[0]
			m.events = m.events[1:]
			return envelope{class: classSupervision, event: event}, true
		}
		if message, ok := m.messages.pop(); ok {
			return envelope{class: classMessage, message: message}, true
		}
		if m.closed {
			return envelope{}, false
		}
		m.notEmpty.Wait()
	}
}

// close permanently closes the mailbox: every further enqueue fails and a
// blocked dequeue wakes up. Pending entries are discarded.
func (m *mailbox) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.signals = nil
	m.stops = nil
	m.events = nil
	m.messages.dispose()
	m.notEmpty.Broadcast()
}

// isClosed reports whether the mailbox has been closed.
func (m *mailbox) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// len returns a snapshot of the number of pending entries across all classes.
func (m *mailbox) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.signals) + len(m.stops) + len(m.events) + m.messages.size()
}
