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
	"fmt"
	"sync"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tochemey/genactor/log"
	"github.com/tochemey/genactor/registry"
)

// ActorRef is the shared handle to one actor instance. Every holder of the
// same ActorRef shares one mailbox and one status cell; the ref is never
// duplicated, only the pointer is copied around.
//
// An ActorRef is safe for concurrent use: any number of goroutines may Tell,
// Stop, Kill, or inspect the actor through it.
type ActorRef struct {
	id    ActorID
	name  string
	actor Actor

	mailbox *mailbox
	status  atomic.Int32

	// ctx is canceled when the actor is killed or terminates, so hooks can
	// observe the abort cooperatively
	ctx    context.Context
	cancel context.CancelFunc

	// killed is closed exactly once by Kill and raced against in-flight
	// hook invocations by the driver
	killed   chan struct{}
	killOnce sync.Once

	// done is closed when the actor reaches a terminal status; joinErr is
	// written before the close
	done    chan struct{}
	joinErr error

	// supervision edges: supervisors is the weak child-to-parent relation,
	// children the parent-to-child enumeration edge
	supervisors mapset.Set[*ActorRef]
	children    mapset.Set[*ActorRef]

	registry  *registry.Registry[*ActorRef]
	logger    log.Logger
	processed atomic.Uint64
}

// newActorRef allocates the cell for a fresh actor in Unstarted status.
func newActorRef(ctx context.Context, name string, actor Actor, config *spawnConfig) *ActorRef {
	hookCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	ref := &ActorRef{
		id:          nextActorID(),
		name:        name,
		actor:       actor,
		mailbox:     newMailbox(config.mailboxCapacity),
		ctx:         hookCtx,
		cancel:      cancel,
		killed:      make(chan struct{}),
		done:        make(chan struct{}),
		supervisors: mapset.NewSet[*ActorRef](),
		children:    mapset.NewSet[*ActorRef](),
		registry:    config.registry,
		logger:      config.logger,
	}
	ref.status.Store(int32(Unstarted))
	return ref
}

// ID returns the process-unique identifier of the actor.
func (ref *ActorRef) ID() ActorID {
	return ref.id
}

// Name returns the registered name of the actor, or the empty string for an
// anonymous actor.
func (ref *ActorRef) Name() string {
	return ref.name
}

// Status returns the current lifecycle status.
func (ref *ActorRef) Status() Status {
	return Status(ref.status.Load())
}

// IsRunning reports whether the actor is processing messages.
func (ref *ActorRef) IsRunning() bool {
	return ref.Status() == Running
}

// Equals reports whether both references point at the same actor instance.
func (ref *ActorRef) Equals(other *ActorRef) bool {
	return other != nil && ref.id == other.id
}

// Logger returns the actor's logger.
func (ref *ActorRef) Logger() log.Logger {
	return ref.logger
}

// ProcessedCount returns the number of user messages the actor has handled.
func (ref *ActorRef) ProcessedCount() uint64 {
	return ref.processed.Load()
}

// String implements fmt.Stringer.
func (ref *ActorRef) String() string {
	if ref.name != "" {
		return fmt.Sprintf("Actor[%s#%d]", ref.name, ref.id)
	}
	return fmt.Sprintf("Actor[#%d]", ref.id)
}

// Tell sends a fire-and-forget message to the actor. It fails with ErrDead
// when the actor has terminated and its mailbox is closed, and with
// ErrMailboxFull when a bounded mailbox is at capacity. The sender may
// safely ignore the error.
func (ref *ActorRef) Tell(ctx context.Context, message any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return ref.mailbox.enqueueMessage(message)
}

// Stop requests a graceful stop with an optional reason. The request is
// honored at the actor's next scheduling decision: the in-flight handler, if
// any, runs to completion, then PostStop runs, then the actor reports its
// termination to every linked supervisor.
//
// Stopping an already terminated actor returns ErrDead.
func (ref *ActorRef) Stop(reason string) error {
	return ref.mailbox.enqueueStop(stopRequest{reason: reason})
}

// Kill terminates the actor immediately. Whatever the driver is doing —
// including in-flight hook work — is abandoned, PostStop does not run, and
// supervision events still queued for delivery are dropped best-effort. Kill
// is idempotent.
func (ref *ActorRef) Kill() {
	ref.killOnce.Do(func() {
		close(ref.killed)
		ref.cancel()
		// wake the driver if it is blocked on an empty mailbox
		_ = ref.mailbox.enqueueSignal(SignalKill)
	})
}

// Join blocks until the actor reaches a terminal status or the context is
// canceled. It returns the actor's failure when the actor Failed and nil
// when it Stopped. Join is the spawn-time join handle: an unsupervised
// actor's failure is observable only here.
func (ref *ActorRef) Join(ctx context.Context) error {
	select {
	case <-ref.done:
		return ref.joinErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done returns a channel that is closed when the actor reaches a terminal
// status.
func (ref *ActorRef) Done() <-chan struct{} {
	return ref.done
}

// Link adds the given supervisor to the actor's supervision links: the
// supervisor will receive a SupervisionEvent for this actor's start,
// termination, and failure. Linking is a monitoring relation only; it does
// not transfer ownership of the actor's lifetime.
func (ref *ActorRef) Link(supervisor *ActorRef) {
	if supervisor == nil || supervisor.Equals(ref) {
		return
	}
	ref.supervisors.Add(supervisor)
	supervisor.children.Add(ref)
}

// Unlink removes the supervision link with the given supervisor, if any.
// Unlinking also happens implicitly when either party terminates.
func (ref *ActorRef) Unlink(supervisor *ActorRef) {
	if supervisor == nil {
		return
	}
	ref.supervisors.Remove(supervisor)
	supervisor.children.Remove(ref)
}

// Children returns the actors currently linked to this actor as children.
func (ref *ActorRef) Children() []*ActorRef {
	return ref.children.ToSlice()
}

// Supervisors returns the supervisors currently linked to this actor.
func (ref *ActorRef) Supervisors() []*ActorRef {
	return ref.supervisors.ToSlice()
}

// MailboxSize returns a snapshot of the number of pending mailbox entries.
func (ref *ActorRef) MailboxSize() int {
	return ref.mailbox.len()
}

// transition moves the status forward monotonically. It refuses to leave a
// terminal status and to move backwards.
func (ref *ActorRef) transition(to Status) bool {
	for {
		current := Status(ref.status.Load())
		if current.Terminal() || to <= current {
			return false
		}
		if ref.status.CompareAndSwap(int32(current), int32(to)) {
			return true
		}
	}
}
