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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyPort(t *testing.T) {
	ctx := context.TODO()

	t.Run("With a value delivered", func(t *testing.T) {
		reply := NewReplyPort[int]()
		require.NoError(t, reply.Send(42))

		value, err := reply.Receive(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, 42, value)
	})

	t.Run("With at most one value", func(t *testing.T) {
		reply := NewReplyPort[string]()
		require.NoError(t, reply.Send("first"))
		assert.ErrorIs(t, reply.Send("second"), ErrAlreadyReplied)

		value, err := reply.Receive(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "first", value)
	})

	t.Run("With a closed port", func(t *testing.T) {
		reply := NewReplyPort[int]()
		reply.Close()

		assert.True(t, reply.IsClosed())
		assert.ErrorIs(t, reply.Send(1), ErrClosed)

		_, err := reply.Receive(ctx, time.Second)
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("With close being idempotent", func(t *testing.T) {
		reply := NewReplyPort[int]()
		reply.Close()
		reply.Close()
		assert.True(t, reply.IsClosed())
	})

	t.Run("With a value sent just before the close", func(t *testing.T) {
		reply := NewReplyPort[int]()
		require.NoError(t, reply.Send(7))
		reply.Close()

		value, err := reply.Receive(ctx, time.Second)
		require.NoError(t, err)
		assert.Equal(t, 7, value)
	})

	t.Run("With a receive timeout closing the port", func(t *testing.T) {
		reply := NewReplyPort[int]()

		start := time.Now()
		_, err := reply.Receive(ctx, 20*time.Millisecond)
		assert.ErrorIs(t, err, ErrTimeout)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

		// the late replier can observe the disconnection
		assert.True(t, reply.IsClosed())
		assert.ErrorIs(t, reply.Send(1), ErrClosed)
	})

	t.Run("With a canceled context closing the port", func(t *testing.T) {
		reply := NewReplyPort[int]()
		canceled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := reply.Receive(canceled, time.Second)
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, reply.IsClosed())
	})

	t.Run("With no timeout when the duration is not positive", func(t *testing.T) {
		reply := NewReplyPort[int]()
		go func() {
			time.Sleep(30 * time.Millisecond)
			_ = reply.Send(9)
		}()

		value, err := reply.Receive(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 9, value)
	})
}
