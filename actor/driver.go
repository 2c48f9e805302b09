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
	"errors"
	"runtime/debug"
)

// run is the lifecycle driver: the single goroutine that owns the actor's
// mailbox consumption. It drives PostStart, the Running dequeue loop, and
// the terminal transition. There is exactly one run goroutine per actor, so
// no two hooks of the same actor ever execute in parallel.
func (ref *ActorRef) run() {
	if hook, ok := ref.actor.(PostStartHook); ok {
		err := ref.invoke(func() error {
			return hook.PostStart(&Context{ctx: ref.ctx, self: ref})
		})
		switch {
		case errors.Is(err, errAborted):
			ref.terminateKilled()
			return
		case err != nil:
			ref.fail(err)
			return
		}
	}

	ref.transition(Running)
	ref.logger.Debugf("%s started", ref)
	ref.notifySupervisors(&ActorStarted{ref: ref})

	for {
		select {
		case <-ref.killed:
			ref.terminateKilled()
			return
		default:
		}

		received, ok := ref.mailbox.dequeue()
		if !ok {
			// mailbox closed underneath the driver; only a kill does that
			ref.terminateKilled()
			return
		}

		switch received.class {
		case classSignal:
			ref.terminateKilled()
			return

		case classStop:
			ref.finishStop(received.stop.reason)
			return

		case classSupervision:
			if err := ref.handleSupervision(received.event); err != nil {
				if errors.Is(err, errAborted) {
					ref.terminateKilled()
				} else {
					ref.fail(err)
				}
				return
			}

		case classMessage:
			if err := ref.handleMessage(received.message); err != nil {
				if errors.Is(err, errAborted) {
					ref.terminateKilled()
				} else {
					ref.fail(err)
				}
				return
			}
		}
	}
}

// handleMessage runs the behavior's Receive for one user message.
func (ref *ActorRef) handleMessage(message any) error {
	rctx := acquireReceiveContext(ref.ctx, ref, message)
	err := ref.invoke(func() error {
		ref.actor.Receive(rctx)
		return rctx.failure
	})
	if !errors.Is(err, errAborted) {
		// an aborted handler goroutine may still hold the context; it is
		// recycled only after a completed invocation
		releaseReceiveContext(rctx)
	}
	if err == nil {
		ref.processed.Add(1)
	}
	return err
}

// handleSupervision dispatches one supervision event to the behavior, or
// logs it when the behavior does not implement SupervisionHandler.
func (ref *ActorRef) handleSupervision(event SupervisionEvent) error {
	handler, ok := ref.actor.(SupervisionHandler)
	if !ok {
		ref.logger.Warnf("%s received unhandled supervision event %T from %s", ref, event, event.Ref())
		return nil
	}
	return ref.invoke(func() error {
		return handler.HandleSupervision(&Context{ctx: ref.ctx, self: ref}, event)
	})
}

// invoke runs one hook, racing it against the kill signal. The hook executes
// in its own goroutine so that a kill can abandon it mid-flight; a recovered
// panic is converted into a *PanicError. When the race is lost to the kill
// signal, invoke returns errAborted and the hook goroutine is left to finish
// on its own against a canceled context.
func (ref *ActorRef) invoke(hook func() error) error {
	outcome := make(chan error, 1)
	go func() {
		defer func() {
			if recovered := recover(); recovered != nil {
				outcome <- NewPanicError(recovered, debug.Stack())
			}
		}()
		outcome <- hook()
	}()

	select {
	case err := <-outcome:
		return err
	case <-ref.killed:
		return errAborted
	}
}

// finishStop performs the cooperative stop: PostStop runs, then the actor
// reports a normal termination with the given reason. A kill arriving while
// PostStop runs degrades the stop into an abrupt termination; a PostStop
// failure turns it into a failure.
func (ref *ActorRef) finishStop(reason string) {
	ref.transition(Stopping)
	err := ref.invoke(func() error {
		return ref.actor.PostStop(&Context{ctx: ref.ctx, self: ref})
	})
	switch {
	case errors.Is(err, errAborted):
		ref.terminateKilled()
	case err != nil:
		ref.fail(err)
	default:
		ref.transition(Stopped)
		ref.logger.Debugf("%s stopped, reason=%q", ref, reason)
		ref.finalize(&ActorTerminated{ref: ref, reason: reason}, nil)
	}
}

// terminateKilled performs the abrupt termination triggered by SignalKill:
// no cleanup hook, status Stopped, a "killed" termination event to the
// supervisors.
func (ref *ActorRef) terminateKilled() {
	ref.transition(Stopped)
	ref.logger.Debugf("%s killed", ref)
	ref.finalize(&ActorTerminated{ref: ref, reason: killedReason}, nil)
}

// fail terminates the actor on a hook failure. The failure is surfaced to
// the supervisors as an ActorFailed event and to the join handle.
func (ref *ActorRef) fail(err error) {
	ref.transition(Failed)
	ref.logger.Errorf("%s failed: %v", ref, err)
	ref.finalize(&ActorFailed{ref: ref, err: err}, err)
}

// finalize is the single exit path of the driver: it closes the mailbox,
// cancels the hook context, notifies and unlinks the supervision edges,
// releases the registered name, and completes the join handle.
func (ref *ActorRef) finalize(event SupervisionEvent, joinErr error) {
	ref.mailbox.close()
	ref.cancel()

	ref.notifySupervisors(event)
	for _, supervisor := range ref.supervisors.ToSlice() {
		supervisor.children.Remove(ref)
	}
	ref.supervisors.Clear()
	for _, child := range ref.children.ToSlice() {
		child.supervisors.Remove(ref)
	}
	ref.children.Clear()

	if ref.name != "" && ref.registry != nil {
		ref.registry.Unregister(ref.name)
	}

	ref.joinErr = joinErr
	close(ref.done)
}

// notifySupervisors enqueues the given event into the Supervision class of
// every currently linked supervisor. Delivery to a supervisor that has
// itself terminated is dropped.
func (ref *ActorRef) notifySupervisors(event SupervisionEvent) {
	for _, supervisor := range ref.supervisors.ToSlice() {
		if err := supervisor.mailbox.enqueueEvent(event); err != nil {
			ref.logger.Debugf("%s could not notify %s: %v", ref, supervisor, err)
		}
	}
}
