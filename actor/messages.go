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

// Signal is the highest-priority control message class. A signal interrupts
// whatever the actor is doing, including in-flight hook work.
type Signal int

const (
	// SignalKill terminates the actor immediately. No cleanup hook runs and
	// no guarantee is made about in-progress work.
	SignalKill Signal = iota
)

// String returns the string representation of the signal.
func (s Signal) String() string {
	if s == SignalKill {
		return "Kill"
	}
	return "Unknown"
}

// killedReason is the termination reason reported to supervisors when an
// actor is killed.
const killedReason = "killed"

// stopRequest is the cooperative termination request carried in the Stop
// class of the mailbox.
type stopRequest struct {
	reason string
}

// SupervisionEvent is the structured notification delivered to every linked
// supervisor when a child starts, terminates, or fails. Exactly one event is
// enqueued per linked supervisor per transition.
type SupervisionEvent interface {
	// Ref returns the child the event is about.
	Ref() *ActorRef

	supervision()
}

// ActorStarted notifies a supervisor that a linked child reached Running.
type ActorStarted struct {
	ref *ActorRef
}

// enforce compilation error
var _ SupervisionEvent = (*ActorStarted)(nil)

// Ref returns the child the event is about.
func (e *ActorStarted) Ref() *ActorRef { return e.ref }

func (*ActorStarted) supervision() {}

// ActorTerminated notifies a supervisor that a linked child stopped, either
// gracefully or through a kill. Reason carries the optional stop reason; a
// killed child reports the reason "killed".
type ActorTerminated struct {
	ref    *ActorRef
	reason string
}

// enforce compilation error
var _ SupervisionEvent = (*ActorTerminated)(nil)

// Ref returns the child the event is about.
func (e *ActorTerminated) Ref() *ActorRef { return e.ref }

// Reason returns the optional stop reason.
func (e *ActorTerminated) Reason() string { return e.reason }

func (*ActorTerminated) supervision() {}

// ActorFailed notifies a supervisor that a linked child terminated because a
// lifecycle hook failed or panicked.
type ActorFailed struct {
	ref *ActorRef
	err error
}

// enforce compilation error
var _ SupervisionEvent = (*ActorFailed)(nil)

// Ref returns the child the event is about.
func (e *ActorFailed) Ref() *ActorRef { return e.ref }

// Err returns the captured failure. Panics are wrapped in *PanicError.
func (e *ActorFailed) Err() error { return e.err }

func (*ActorFailed) supervision() {}
