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

// Status represents where an actor currently is in its lifecycle.
//
// Transitions are monotonic: an actor only ever moves forward through
// Unstarted → Starting → Running → Stopping → Stopped, with Failed reachable
// from Starting, Running, or Stopping. Stopped and Failed are absorbing.
type Status int32

const (
	// Unstarted means the actor has been allocated but PreStart has not run.
	Unstarted Status = iota
	// Starting means the actor is executing its start hooks.
	Starting
	// Running means the actor is processing messages.
	Running
	// Stopping means a graceful stop was dequeued and PostStop is running.
	Stopping
	// Stopped means the actor terminated normally (or was killed). Terminal.
	Stopped
	// Failed means the actor terminated because a lifecycle hook failed. Terminal.
	Failed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Starting:
		return "Starting"
	case Running:
		return "Running"
	case Stopping:
		return "Stopping"
	case Stopped:
		return "Stopped"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the status is absorbing.
func (s Status) Terminal() bool {
	return s == Stopped || s == Failed
}
