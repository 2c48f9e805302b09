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
	"github.com/tochemey/genactor/log"
	"github.com/tochemey/genactor/registry"
)

// spawnConfig defines the configuration to apply when creating an actor
type spawnConfig struct {
	// supervisor, when set, is linked to the actor between PreStart and
	// PostStart
	supervisor *ActorRef
	// mailboxCapacity bounds the Message class of the mailbox when positive
	mailboxCapacity int
	// registry enforces name uniqueness for named actors
	registry *registry.Registry[*ActorRef]
	// logger used by the actor runtime and exposed to the behavior
	logger log.Logger
}

// newSpawnConfig creates an instance of spawnConfig
func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{
		registry: defaultRegistry,
		logger:   log.DefaultLogger,
	}
	for _, opt := range opts {
		opt.Apply(config)
	}
	return config
}

// SpawnOption is the interface that applies a spawn-time setting.
type SpawnOption interface {
	// Apply sets the Option value of a config.
	Apply(config *spawnConfig)
}

// enforce compilation error
var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

// Apply sets the Option value of a config.
func (f spawnOption) Apply(c *spawnConfig) {
	f(c)
}

// WithSupervisor links the spawned actor to the given supervisor before
// PostStart runs, so even a PostStart failure is already observable as a
// supervision event.
func WithSupervisor(supervisor *ActorRef) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.supervisor = supervisor
	})
}

// WithMailboxCapacity bounds the Message class of the actor's mailbox.
// Sending into a full mailbox fails with ErrMailboxFull instead of blocking.
// The control classes (Signal, Stop, Supervision) are never bounded.
func WithMailboxCapacity(capacity int) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.mailboxCapacity = capacity
	})
}

// WithLogger sets the logger the actor runtime uses for this actor.
func WithLogger(logger log.Logger) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.logger = logger
	})
}

// WithRegistry sets the name registry used to reserve the actor's name,
// overriding the process-wide default.
func WithRegistry(reg *registry.Registry[*ActorRef]) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.registry = reg
	})
}
