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
	"time"

	"github.com/tochemey/genactor/port"
)

// Tell sends an asynchronous fire-and-forget message to an actor.
func Tell(ctx context.Context, to *ActorRef, message any) error {
	if to == nil {
		return ErrDead
	}
	return to.Tell(ctx, message)
}

// Call performs a synchronous request against an actor.
//
// Call creates a fresh reply port, hands it to build to produce the request
// message, and sends that message through the ordinary Message class — a
// call never jumps the mailbox queue. The caller then blocks until the
// handler sends a value through the port, the handler closes the port
// without a value (port.ErrClosed), the optional timeout elapses
// (port.ErrTimeout), or the context is canceled. A timeout of zero or less
// means no timeout.
//
// A timeout cancels only the caller's wait: the callee still processes the
// already-sent message, and its late reply is dropped. Calling a terminated
// actor fails immediately with ErrDead instead of hanging, and a request
// still queued when the actor terminates fails with port.ErrClosed: the
// actor dropped the request without answering.
//
// Example:
//
//	value, err := actor.Call(ctx, counter, func(reply *port.ReplyPort[int64]) any {
//	    return &Retrieve{Reply: reply}
//	}, 10*time.Millisecond)
func Call[R any](ctx context.Context, to *ActorRef, build func(reply *port.ReplyPort[R]) any, timeout time.Duration) (R, error) {
	var zero R
	if to == nil {
		return zero, ErrDead
	}

	reply := port.NewReplyPort[R]()
	message := build(reply)
	if err := to.Tell(ctx, message); err != nil {
		return zero, err
	}

	// an actor terminating with the request still queued discards it without
	// replying; closing the port releases the caller. A reply that won the
	// race is still honored: Receive re-checks for a value on close.
	released := make(chan struct{})
	defer close(released)
	go func() {
		select {
		case <-to.Done():
			reply.Close()
		case <-released:
		}
	}()

	return reply.Receive(ctx, timeout)
}
