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
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tochemey/genactor/log"
	"github.com/tochemey/genactor/port"
)

// spawnTestActor spawns an actor with a discarding logger and fails the test
// when the spawn fails.
func spawnTestActor(t *testing.T, name string, behavior Actor, opts ...SpawnOption) *ActorRef {
	t.Helper()
	opts = append(opts, WithLogger(log.DiscardLogger))
	ref, err := Spawn(context.TODO(), name, behavior, opts...)
	require.NoError(t, err)
	require.NotNil(t, ref)
	return ref
}

// testSpawnOpts returns the spawn options shared by the tests.
func testSpawnOpts() []SpawnOption {
	return []SpawnOption{WithLogger(log.DiscardLogger)}
}

// waitRunning blocks until the actor reaches Running.
func waitRunning(t *testing.T, ref *ActorRef) {
	t.Helper()
	require.Eventually(t, ref.IsRunning, time.Second, 5*time.Millisecond)
}

// nextEvent returns the next supervision event or fails the test after a
// second.
func nextEvent(t *testing.T, events <-chan SupervisionEvent) SupervisionEvent {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a supervision event")
		return nil
	}
}

// requireNoEvent asserts that no supervision event arrives within the window.
func requireNoEvent(t *testing.T, events <-chan SupervisionEvent) {
	t.Helper()
	select {
	case event := <-events:
		t.Fatalf("unexpected supervision event %T", event)
	case <-time.After(100 * time.Millisecond):
	}
}

// addCount, subCount and getCount drive the testCounter behavior.
type addCount struct{ amount int64 }

type subCount struct{ amount int64 }

type getCount struct{ reply *port.ReplyPort[int64] }

// testCounter is the canonical counting behavior.
type testCounter struct {
	count int64
}

var _ Actor = (*testCounter)(nil)

func (c *testCounter) PreStart(*Context) error {
	c.count = 0
	return nil
}

func (c *testCounter) Receive(ctx *ReceiveContext) {
	switch message := ctx.Message().(type) {
	case *addCount:
		c.count += message.amount
	case *subCount:
		c.count -= message.amount
	case *getCount:
		if !message.reply.IsClosed() {
			_ = message.reply.Send(c.count)
		}
	}
}

func (c *testCounter) PostStop(*Context) error {
	return nil
}

// testForwarder pushes every received message into a channel.
type testForwarder struct {
	sink chan any
}

var _ Actor = (*testForwarder)(nil)

func newTestForwarder(buffer int) *testForwarder {
	return &testForwarder{sink: make(chan any, buffer)}
}

func (f *testForwarder) PreStart(*Context) error { return nil }

func (f *testForwarder) Receive(ctx *ReceiveContext) {
	f.sink <- ctx.Message()
}

func (f *testForwarder) PostStop(*Context) error { return nil }

// testSupervisor records every supervision event it is handed.
type testSupervisor struct {
	events chan SupervisionEvent
}

var (
	_ Actor              = (*testSupervisor)(nil)
	_ SupervisionHandler = (*testSupervisor)(nil)
)

func newTestSupervisor() *testSupervisor {
	return &testSupervisor{events: make(chan SupervisionEvent, 16)}
}

func (s *testSupervisor) PreStart(*Context) error { return nil }

func (s *testSupervisor) Receive(*ReceiveContext) {}

func (s *testSupervisor) PostStop(*Context) error { return nil }

func (s *testSupervisor) HandleSupervision(_ *Context, event SupervisionEvent) error {
	s.events <- event
	return nil
}

// panicOn makes testFailing panic; failOn makes it fail via the context.
type panicOn struct{}

type failOn struct{ err error }

type testFailing struct{}

var _ Actor = (*testFailing)(nil)

func (*testFailing) PreStart(*Context) error { return nil }

func (*testFailing) Receive(ctx *ReceiveContext) {
	switch message := ctx.Message().(type) {
	case *panicOn:
		panic("boom")
	case *failOn:
		ctx.Fail(message.err)
	}
}

func (*testFailing) PostStop(*Context) error { return nil }

// testLifecycle exposes injectable hook outcomes and observable flags for the
// lifecycle tests. A non-nil handlerGate parks Receive until the gate closes
// or the actor is killed.
type testLifecycle struct {
	preStartErr   error
	preStartPanic bool
	postStartErr  error
	postStopErr   error

	handlerGate    chan struct{}
	handlerStarted chan struct{}
	handlerRan     atomic.Bool
	postStopRan    atomic.Bool
}

var (
	_ Actor         = (*testLifecycle)(nil)
	_ PostStartHook = (*testLifecycle)(nil)
)

func (x *testLifecycle) PreStart(*Context) error {
	if x.preStartPanic {
		panic("preStart blew up")
	}
	return x.preStartErr
}

func (x *testLifecycle) PostStart(*Context) error {
	return x.postStartErr
}

func (x *testLifecycle) Receive(ctx *ReceiveContext) {
	if x.handlerStarted != nil {
		x.handlerStarted <- struct{}{}
	}
	if x.handlerGate != nil {
		select {
		case <-x.handlerGate:
		case <-ctx.Context().Done():
			return
		}
	}
	x.handlerRan.Store(true)
}

func (x *testLifecycle) PostStop(*Context) error {
	x.postStopRan.Store(true)
	return x.postStopErr
}

// testResponder exercises the reply-port outcomes of synchronous calls.
type replyNever struct{ reply *port.ReplyPort[string] }

type replyClose struct{ reply *port.ReplyPort[string] }

type replyLate struct {
	reply    *port.ReplyPort[string]
	delay    time.Duration
	observed chan error
}

type testResponder struct{}

var _ Actor = (*testResponder)(nil)

func (*testResponder) PreStart(*Context) error { return nil }

func (*testResponder) Receive(ctx *ReceiveContext) {
	switch message := ctx.Message().(type) {
	case *replyNever:
		// keep the caller waiting on purpose
	case *replyClose:
		message.reply.Close()
	case *replyLate:
		time.Sleep(message.delay)
		message.observed <- message.reply.Send("late")
	}
}

func (*testResponder) PostStop(*Context) error { return nil }
