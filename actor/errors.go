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
	"fmt"
)

var (
	// ErrDead indicates that the actor is no longer alive: its mailbox has
	// been closed because the actor reached a terminal status. Sending to a
	// dead actor is reportable but never fatal for the sender.
	ErrDead = errors.New("actor is not alive")

	// ErrMailboxFull is returned when enqueueing a user message into a
	// bounded mailbox that has reached its capacity.
	ErrMailboxFull = errors.New("mailbox is full")

	// ErrNameConflict is returned when spawning an actor with a name that is
	// already registered.
	ErrNameConflict = errors.New("actor name already taken")

	// ErrPreStartFailure is returned by Spawn when the actor's PreStart hook
	// fails. The spawn itself fails; no supervision event is emitted.
	ErrPreStartFailure = errors.New("preStart failed")
)

// NewErrNameConflict formats an ErrNameConflict with the given name.
func NewErrNameConflict(name string) error {
	return fmt.Errorf("name=(%s) %w", name, ErrNameConflict)
}

// NewErrPreStartFailure wraps a base error with ErrPreStartFailure to
// indicate a startup failure.
func NewErrPreStartFailure(err error) error {
	return errors.Join(ErrPreStartFailure, err)
}

// PanicError wraps a recovered panic value together with the stack captured
// at recovery time. Panics raised inside lifecycle hooks surface to
// supervisors as a PanicError.
type PanicError struct {
	value any
	stack []byte
}

// enforce compilation error
var _ error = (*PanicError)(nil)

// NewPanicError creates an instance of PanicError.
func NewPanicError(value any, stack []byte) *PanicError {
	return &PanicError{value: value, stack: stack}
}

// Error implements the standard error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the recovered panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the goroutine stack captured when the panic was recovered.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// errAborted is an internal sentinel marking a hook invocation cut short by
// a kill signal. It never escapes the driver.
var errAborted = errors.New("aborted by kill signal")
