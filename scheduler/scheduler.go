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

// Package scheduler delivers messages to actors in the future: once after a
// delay, or repeatedly on an interval. It is a convenience collaborator of
// the actor core, not part of it.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"

	"github.com/tochemey/genactor/log"
)

var (
	// ErrNotStarted is returned when scheduling before Start.
	ErrNotStarted = errors.New("scheduler has not started")

	// ErrInvalidDelay is returned when the delay or interval is not
	// strictly positive.
	ErrInvalidDelay = errors.New("delay must be greater than zero")
)

// Sender is the destination of a scheduled message. *actor.ActorRef
// satisfies it.
type Sender interface {
	Tell(ctx context.Context, message any) error
}

// Scheduler stacks messages that will be delivered in the future to actors.
type Scheduler struct {
	mu              sync.Mutex
	quartzScheduler quartz.Scheduler
	started         *atomic.Bool
	logger          log.Logger
	stopTimeout     time.Duration
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithStopTimeout caps how long Stop waits for in-flight jobs.
func WithStopTimeout(timeout time.Duration) Option {
	return func(s *Scheduler) {
		s.stopTimeout = timeout
	}
}

// New creates a Scheduler. It must be started with Start before use.
func New(opts ...Option) *Scheduler {
	quartzScheduler, _ := quartz.NewStdScheduler(
		quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))

	scheduler := &Scheduler{
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		logger:          log.DefaultLogger,
		stopTimeout:     time.Second,
	}
	for _, opt := range opts {
		opt(scheduler)
	}
	return scheduler
}

// Start starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quartzScheduler.Start(ctx)
	s.started.Store(s.quartzScheduler.IsStarted())
	s.logger.Debug("messages scheduler started")
}

// Stop stops the scheduler and waits up to the stop timeout for in-flight
// jobs to finish. Pending jobs are cleared.
func (s *Scheduler) Stop(ctx context.Context) {
	if !s.started.Load() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.quartzScheduler.Clear()
	s.quartzScheduler.Stop()
	s.started.Store(s.quartzScheduler.IsStarted())

	ctx, cancel := context.WithTimeout(ctx, s.stopTimeout)
	defer cancel()
	s.quartzScheduler.Wait(ctx)
	s.logger.Debug("messages scheduler stopped")
}

// SendAfter schedules a one-shot delivery of the given message to the given
// destination after the given delay. It returns a job reference that can be
// passed to Cancel.
func (s *Scheduler) SendAfter(message any, to Sender, delay time.Duration) (string, error) {
	if delay <= 0 {
		return "", ErrInvalidDelay
	}
	return s.schedule(message, to, quartz.NewRunOnceTrigger(delay))
}

// SendInterval schedules a repeated delivery of the given message to the
// given destination every interval, until the job is canceled or the
// destination terminates.
func (s *Scheduler) SendInterval(message any, to Sender, interval time.Duration) (string, error) {
	if interval <= 0 {
		return "", ErrInvalidDelay
	}
	return s.schedule(message, to, quartz.NewSimpleTrigger(interval))
}

// Cancel deletes the scheduled job with the given reference.
func (s *Scheduler) Cancel(reference string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started.Load() {
		return ErrNotStarted
	}
	return s.quartzScheduler.DeleteJob(quartz.NewJobKey(reference))
}

// schedule registers a function job delivering the message under a fresh key.
func (s *Scheduler) schedule(message any, to Sender, trigger quartz.Trigger) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started.Load() {
		return "", ErrNotStarted
	}

	deliver := job.NewFunctionJob(func(jobCtx context.Context) (bool, error) {
		if err := to.Tell(jobCtx, message); err != nil {
			s.logger.Warnf("scheduled delivery failed: %v", err)
			return false, err
		}
		return true, nil
	})

	reference := uuid.NewString()
	detail := quartz.NewJobDetail(deliver, quartz.NewJobKey(reference))
	if err := s.quartzScheduler.ScheduleJob(detail, trigger); err != nil {
		return "", err
	}
	return reference, nil
}
