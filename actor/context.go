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
	"sync"

	"github.com/tochemey/genactor/log"
)

// Context is handed to the lifecycle hooks (PreStart, PostStart, PostStop,
// HandleSupervision). It carries the actor's own reference and a
// context.Context that is canceled when the actor is killed or terminates,
// so long-running hook work can observe the abort cooperatively.
type Context struct {
	ctx  context.Context
	self *ActorRef
}

// Context returns the underlying context.Context.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Self returns the reference of the actor the hook runs in.
func (c *Context) Self() *ActorRef {
	return c.self
}

// Logger returns the actor's logger.
func (c *Context) Logger() log.Logger {
	return c.self.Logger()
}

// ReceiveContext is handed to Receive for every user message.
type ReceiveContext struct {
	ctx     context.Context
	self    *ActorRef
	message any
	failure error
}

// Context returns the underlying context.Context. It is canceled when the
// actor is killed, so handlers doing long work should watch it.
func (rctx *ReceiveContext) Context() context.Context {
	return rctx.ctx
}

// Self returns the reference of the actor processing the message.
func (rctx *ReceiveContext) Self() *ActorRef {
	return rctx.self
}

// Message returns the message being processed.
func (rctx *ReceiveContext) Message() any {
	return rctx.message
}

// Logger returns the actor's logger.
func (rctx *ReceiveContext) Logger() log.Logger {
	return rctx.self.Logger()
}

// Fail marks the current message handling as failed without panicking. The
// actor terminates with the given error, which is delivered to every linked
// supervisor as an ActorFailed event. A nil error is ignored.
func (rctx *ReceiveContext) Fail(err error) {
	if err != nil {
		rctx.failure = err
	}
}

// receiveContextPool recycles ReceiveContext values on the hot path.
var receiveContextPool = sync.Pool{
	New: func() any { return new(ReceiveContext) },
}

// acquireReceiveContext borrows a reset ReceiveContext from the pool.
func acquireReceiveContext(ctx context.Context, self *ActorRef, message any) *ReceiveContext {
	rctx := receiveContextPool.Get().(*ReceiveContext)
	rctx.ctx = ctx
	rctx.self = self
	rctx.message = message
	rctx.failure = nil
	return rctx
}

// releaseReceiveContext returns a ReceiveContext to the pool. It must only
// be called when the handler completed: a context abandoned to a killed
// handler goroutine is never recycled.
func releaseReceiveContext(rctx *ReceiveContext) {
	rctx.ctx = nil
	rctx.self = nil
	rctx.message = nil
	rctx.failure = nil
	receiveContextPool.Put(rctx)
}
