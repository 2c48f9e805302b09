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

// Package pg implements named process groups: a group name maps to a set of
// member actors, used for fan-out messaging. Membership is explicit — actors
// join and leave; the actor core does not manage groups.
package pg

import (
	"context"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/sync/errgroup"
)

// Member is what can join a group: anything that can receive an
// asynchronous message. *actor.ActorRef satisfies it. Member values must be
// comparable so they can be held in sets.
type Member interface {
	Tell(ctx context.Context, message any) error
}

// Groups maintains the group-name to member-set mapping. All methods are
// safe for concurrent use. The zero value is not usable; create instances
// with New.
type Groups struct {
	mu     sync.RWMutex
	groups map[string]mapset.Set[Member]
}

// New creates an empty Groups.
func New() *Groups {
	return &Groups{
		groups: make(map[string]mapset.Set[Member]),
	}
}

// Join adds the given members to the group, creating the group when it does
// not exist. Joining a group twice is a no-op for the duplicate member.
func (g *Groups) Join(group string, members ...Member) {
	g.mu.Lock()
	defer g.mu.Unlock()
	set, ok := g.groups[group]
	if !ok {
		set = mapset.NewSet[Member]()
		g.groups[group] = set
	}
	for _, member := range members {
		set.Add(member)
	}
}

// Leave removes the given members from the group. The group disappears when
// its last member leaves.
func (g *Groups) Leave(group string, members ...Member) {
	g.mu.Lock()
	defer g.mu.Unlock()
	set, ok := g.groups[group]
	if !ok {
		return
	}
	for _, member := range members {
		set.Remove(member)
	}
	if set.Cardinality() == 0 {
		delete(g.groups, group)
	}
}

// Members returns a snapshot of the members of the given group.
func (g *Groups) Members(group string) []Member {
	g.mu.RLock()
	defer g.mu.RUnlock()
	set, ok := g.groups[group]
	if !ok {
		return nil
	}
	return set.ToSlice()
}

// WhichGroups returns a snapshot of all group names with at least one member.
func (g *Groups) WhichGroups() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.groups))
	for name := range g.groups {
		names = append(names, name)
	}
	return names
}

// Broadcast sends the given message to every member of the group
// concurrently and waits for all sends to finish. It returns the first send
// error encountered; members that have terminated simply report their error
// without affecting delivery to the others.
func (g *Groups) Broadcast(ctx context.Context, group string, message any) error {
	members := g.Members(group)
	var eg errgroup.Group
	for _, member := range members {
		member := member
		eg.Go(func() error {
			return member.Tell(ctx, message)
		})
	}
	return eg.Wait()
}

// defaultGroups backs the package-level helpers.
var defaultGroups = New()

// Join adds members to a group in the process-wide default Groups.
func Join(group string, members ...Member) {
	defaultGroups.Join(group, members...)
}

// Leave removes members from a group in the process-wide default Groups.
func Leave(group string, members ...Member) {
	defaultGroups.Leave(group, members...)
}

// Members returns the members of a group in the process-wide default Groups.
func Members(group string) []Member {
	return defaultGroups.Members(group)
}

// WhichGroups returns all group names in the process-wide default Groups.
func WhichGroups() []string {
	return defaultGroups.WhichGroups()
}

// Broadcast fans a message out to a group in the process-wide default Groups.
func Broadcast(ctx context.Context, group string, message any) error {
	return defaultGroups.Broadcast(ctx, group, message)
}
