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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tochemey/genactor/port"
)

func TestCounter(t *testing.T) {
	ctx := context.TODO()
	ref := spawnTestActor(t, "counter-test", new(testCounter))
	waitRunning(t, ref)

	// +5 +10 -5 per round leaves the count 10 higher every time
	expected := []int64{10, 20, 30, 40}
	for _, want := range expected {
		require.NoError(t, ref.Tell(ctx, &addCount{amount: 5}))
		require.NoError(t, ref.Tell(ctx, &addCount{amount: 10}))
		require.NoError(t, ref.Tell(ctx, &subCount{amount: 5}))

		count, err := Call(ctx, ref, func(reply *port.ReplyPort[int64]) any {
			return &getCount{reply: reply}
		}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}

	// three sends plus one call per round
	require.Eventually(t, func() bool {
		return ref.ProcessedCount() == 16
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, ref.Stop(""))
	require.NoError(t, ref.Join(ctx))
	assert.ErrorIs(t, ref.Tell(ctx, &addCount{amount: 1}), ErrDead)
}

func TestTell(t *testing.T) {
	ctx := context.TODO()

	t.Run("With messages processed in send order", func(t *testing.T) {
		behavior := newTestForwarder(256)
		ref := spawnTestActor(t, "", behavior)
		waitRunning(t, ref)

		const total = 100
		for i := 0; i < total; i++ {
			require.NoError(t, Tell(ctx, ref, i))
		}
		for i := 0; i < total; i++ {
			select {
			case message := <-behavior.sink:
				require.Equal(t, i, message)
			case <-time.After(time.Second):
				t.Fatalf("message %d never arrived", i)
			}
		}

		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))
	})

	t.Run("With a nil reference", func(t *testing.T) {
		assert.ErrorIs(t, Tell(ctx, nil, "nobody home"), ErrDead)
	})

	t.Run("With a canceled context", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testCounter))
		waitRunning(t, ref)

		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, ref.Tell(canceled, "too late"), context.Canceled)

		ref.Kill()
		require.NoError(t, ref.Join(ctx))
	})
}

func TestCall(t *testing.T) {
	ctx := context.TODO()

	t.Run("With a reply", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testCounter))
		waitRunning(t, ref)
		require.NoError(t, ref.Tell(ctx, &addCount{amount: 7}))

		count, err := Call(ctx, ref, func(reply *port.ReplyPort[int64]) any {
			return &getCount{reply: reply}
		}, time.Second)
		require.NoError(t, err)
		assert.Equal(t, int64(7), count)

		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))
	})

	t.Run("With a handler that never replies", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testResponder))
		waitRunning(t, ref)

		_, err := Call(ctx, ref, func(reply *port.ReplyPort[string]) any {
			return &replyNever{reply: reply}
		}, 50*time.Millisecond)
		assert.ErrorIs(t, err, port.ErrTimeout)

		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))
	})

	t.Run("With a handler that closes the port", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testResponder))
		waitRunning(t, ref)

		_, err := Call(ctx, ref, func(reply *port.ReplyPort[string]) any {
			return &replyClose{reply: reply}
		}, time.Second)
		assert.ErrorIs(t, err, port.ErrClosed)

		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))
	})

	t.Run("With a late reply after the caller timed out", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testResponder))
		waitRunning(t, ref)

		observed := make(chan error, 1)
		_, err := Call(ctx, ref, func(reply *port.ReplyPort[string]) any {
			return &replyLate{reply: reply, delay: 100 * time.Millisecond, observed: observed}
		}, 10*time.Millisecond)
		assert.ErrorIs(t, err, port.ErrTimeout)

		// the callee observes the disconnection instead of blocking
		select {
		case sendErr := <-observed:
			assert.ErrorIs(t, sendErr, port.ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("the late reply was never attempted")
		}

		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))
	})

	t.Run("With a pending call released when the actor terminates", func(t *testing.T) {
		behavior := &testLifecycle{
			handlerGate:    make(chan struct{}),
			handlerStarted: make(chan struct{}, 1),
		}
		ref := spawnTestActor(t, "", behavior)
		waitRunning(t, ref)

		// keep the driver busy so the call stays queued
		require.NoError(t, ref.Tell(ctx, "busy"))
		<-behavior.handlerStarted

		callErr := make(chan error, 1)
		go func() {
			_, err := Call(context.TODO(), ref, func(reply *port.ReplyPort[int64]) any {
				return &getCount{reply: reply}
			}, 0)
			callErr <- err
		}()
		require.Eventually(t, func() bool {
			return ref.MailboxSize() >= 1
		}, time.Second, 5*time.Millisecond)

		// the stop outranks the queued call, which is dropped unanswered
		require.NoError(t, ref.Stop(""))
		close(behavior.handlerGate)
		require.NoError(t, ref.Join(ctx))

		select {
		case err := <-callErr:
			assert.ErrorIs(t, err, port.ErrClosed)
		case <-time.After(time.Second):
			t.Fatal("the pending caller was never released")
		}
	})

	t.Run("With a terminated actor", func(t *testing.T) {
		ref := spawnTestActor(t, "", new(testCounter))
		waitRunning(t, ref)
		require.NoError(t, ref.Stop(""))
		require.NoError(t, ref.Join(ctx))

		_, err := Call(ctx, ref, func(reply *port.ReplyPort[int64]) any {
			return &getCount{reply: reply}
		}, time.Second)
		assert.ErrorIs(t, err, ErrDead)
	})

	t.Run("With a nil reference", func(t *testing.T) {
		_, err := Call(ctx, nil, func(reply *port.ReplyPort[int64]) any {
			return &getCount{reply: reply}
		}, time.Second)
		assert.ErrorIs(t, err, ErrDead)
	})
}
