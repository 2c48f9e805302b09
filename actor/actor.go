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

// Actor defines the behavior of an actor in the runtime.
//
// Actors are lightweight, isolated units of computation that communicate
// exclusively via message passing. Each actor owns a mailbox and processes
// messages sequentially, so the state held in the implementing struct's fields
// never needs explicit synchronization: it is read and mutated only by the
// actor's own processing goroutine.
//
// The lifecycle of an actor follows three main phases:
//  1. PreStart – set up the initial state before any message is handled
//  2. Receive  – the message handling loop
//  3. PostStop – clean up after the actor has been asked to stop
//
// Two optional hooks can be added by implementing PostStartHook and
// SupervisionHandler.
type Actor interface {
	// PreStart is invoked once, synchronously, before the actor begins
	// processing messages. Use it to build the initial state: open
	// connections, allocate caches, prime counters.
	//
	// A failure here fails the spawn itself and is returned to the caller of
	// Spawn. No supervision event is emitted because the actor has no linked
	// supervisor yet.
	PreStart(ctx *Context) error

	// Receive handles a single message from the actor's mailbox. It is
	// invoked sequentially, one message at a time, in mailbox order.
	//
	// A panic inside Receive, or a call to ReceiveContext.Fail, terminates
	// the actor with a failure that is delivered to every linked supervisor.
	Receive(ctx *ReceiveContext)

	// PostStop is invoked after the actor has processed its final message
	// during a graceful stop. It does NOT run when the actor is killed: a
	// kill is an abrupt abort with no cleanup guarantee.
	PostStop(ctx *Context) error
}

// PostStartHook is an optional extension of Actor. When implemented,
// PostStart runs after PreStart has succeeded and before the first message is
// processed. By that time the actor may already be linked to a supervisor
// (see SpawnLinked), so a failure here is surfaced as a supervision event in
// addition to terminating the actor.
type PostStartHook interface {
	PostStart(ctx *Context) error
}

// SupervisionHandler is an optional extension of Actor implemented by
// supervisors. HandleSupervision is invoked for every SupervisionEvent
// delivered by a linked child: start, termination, or failure.
//
// The runtime ships no restart policy. Whatever reaction is appropriate —
// ignore, log, respawn a replacement, escalate, stop siblings — is decided
// here. Actors that do not implement this interface have incoming
// supervision events logged and discarded.
type SupervisionHandler interface {
	HandleSupervision(ctx *Context, event SupervisionEvent) error
}
