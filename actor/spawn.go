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
	"runtime/debug"

	"github.com/tochemey/genactor/registry"
)

// defaultRegistry backs named spawns that do not bring their own registry.
var defaultRegistry = registry.New[*ActorRef]()

// DefaultRegistry returns the process-wide name registry used by Spawn when
// no WithRegistry option is given.
func DefaultRegistry() *registry.Registry[*ActorRef] {
	return defaultRegistry
}

// Lookup returns the running actor registered under the given name in the
// process-wide registry.
func Lookup(name string) (*ActorRef, bool) {
	return defaultRegistry.Lookup(name)
}

// Spawn creates and starts a new actor.
//
// An empty name spawns an anonymous actor; a non-empty name is reserved in
// the registry and the spawn fails with ErrNameConflict when it is taken.
// PreStart runs synchronously before Spawn returns: a PreStart failure fails
// the spawn itself (wrapped in ErrPreStartFailure) and no supervision event
// is emitted, because nothing can be linked to the actor yet.
//
// The returned ActorRef doubles as the join handle: ActorRef.Join blocks
// until the actor terminates and reports its failure, if any.
func Spawn(ctx context.Context, name string, actor Actor, opts ...SpawnOption) (*ActorRef, error) {
	config := newSpawnConfig(opts...)
	ref := newActorRef(ctx, name, actor, config)

	if name != "" {
		if err := config.registry.Register(name, ref); err != nil {
			spawnErr := NewErrNameConflict(name)
			ref.abortSpawn(spawnErr)
			return nil, spawnErr
		}
	}

	ref.transition(Starting)
	if err := ref.invokePreStart(); err != nil {
		if name != "" {
			config.registry.Unregister(name)
		}
		spawnErr := NewErrPreStartFailure(err)
		ref.abortSpawn(spawnErr)
		return nil, spawnErr
	}

	// the actor can link to a supervisor between PreStart and PostStart, so
	// a PostStart failure is already supervised
	if config.supervisor != nil {
		ref.Link(config.supervisor)
	}

	go ref.run()
	return ref, nil
}

// SpawnLinked spawns an actor that is linked to the given supervisor before
// its PostStart hook runs.
func SpawnLinked(ctx context.Context, name string, actor Actor, supervisor *ActorRef, opts ...SpawnOption) (*ActorRef, error) {
	opts = append(opts, WithSupervisor(supervisor))
	return Spawn(ctx, name, actor, opts...)
}

// invokePreStart runs PreStart synchronously with panic recovery. It is not
// raced against the kill signal: nobody holds the reference yet.
func (ref *ActorRef) invokePreStart() (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = NewPanicError(recovered, debug.Stack())
		}
	}()
	return ref.actor.PreStart(&Context{ctx: ref.ctx, self: ref})
}

// abortSpawn finalizes a cell whose spawn failed before the driver started.
func (ref *ActorRef) abortSpawn(err error) {
	ref.status.Store(int32(Failed))
	ref.mailbox.close()
	ref.cancel()
	ref.joinErr = err
	close(ref.done)
}
