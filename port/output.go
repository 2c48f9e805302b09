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
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// OutputPort is a typed broadcast channel an actor can publish values to.
//
// Unlike a ReplyPort, which carries a single value back to a single caller,
// an OutputPort fans every published value out to all current subscribers.
// Subscribers that fall behind have values dropped rather than blocking the
// publisher; an actor must never be stalled by a slow listener.
type OutputPort[T any] struct {
	mu          sync.RWMutex
	subscribers map[string]chan T
	closed      *atomic.Bool
}

// NewOutputPort creates an open output port with no subscribers.
func NewOutputPort[T any]() *OutputPort[T] {
	return &OutputPort[T]{
		subscribers: make(map[string]chan T),
		closed:      atomic.NewBool(false),
	}
}

// Subscribe registers a new subscriber with the given channel buffer size and
// returns its subscription. A closed port returns an inactive subscription
// whose channel is already closed.
func (p *OutputPort[T]) Subscribe(buffer int) *Subscription[T] {
	if buffer <= 0 {
		buffer = 1
	}

	messages := make(chan T, buffer)
	subscription := &Subscription[T]{
		id:       uuid.NewString(),
		messages: messages,
		port:     p,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed.Load() {
		close(messages)
		return subscription
	}
	p.subscribers[subscription.id] = messages
	return subscription
}

// Publish delivers the given value to every current subscriber.
// Subscribers whose buffers are full are skipped. Publishing to a closed
// port is a no-op.
func (p *OutputPort[T]) Publish(value T) {
	if p.closed.Load() {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, messages := range p.subscribers {
		select {
		case messages <- value:
		default:
		}
	}
}

// Close closes the port and every subscriber channel. Close is idempotent.
func (p *OutputPort[T]) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for id, messages := range p.subscribers {
		close(messages)
		delete(p.subscribers, id)
	}
}

// SubscribersCount returns the number of active subscribers.
func (p *OutputPort[T]) SubscribersCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.subscribers)
}

// unsubscribe detaches the given subscriber and closes its channel.
func (p *OutputPort[T]) unsubscribe(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if messages, ok := p.subscribers[id]; ok {
		close(messages)
		delete(p.subscribers, id)
	}
}

// Subscription is one subscriber's view of an OutputPort.
type Subscription[T any] struct {
	id       string
	messages chan T
	port     *OutputPort[T]
	canceled sync.Once
}

// ID returns the unique identifier of the subscription.
func (s *Subscription[T]) ID() string {
	return s.id
}

// Iterator returns the channel values are delivered on. The channel is
// closed when the subscription is canceled or the port is closed.
func (s *Subscription[T]) Iterator() <-chan T {
	return s.messages
}

// Cancel detaches the subscription from its port. Cancel is idempotent.
func (s *Subscription[T]) Cancel() {
	s.canceled.Do(func() {
		s.port.unsubscribe(s.id)
	})
}
