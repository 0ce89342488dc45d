// Package coop implements the cooperative scheduler that serialises every
// long-running list operation.
//
// # Model
//
// There is exactly one logical thread of control. A single run token (the
// baton) is held by whichever task is currently executing; all other tasks
// block waiting for it. Calling the yield function a task receives is the
// only suspension point: a channel send delivers the baton directly to a
// waiting task if one exists, otherwise the yielding task reacquires it
// immediately and continues. Work between two yields is therefore atomic
// with respect to every other cooperative task.
//
// This mirrors the host application's contract: render ticks, searches and
// bulk pool releases all run as cooperative tasks, so a search that scans a
// large collection cannot starve the render tick for longer than one chunk.
//
// # Usage
//
//	sched := coop.NewScheduler()
//	sched.Run(func(yield func()) {
//		for i, rec := range records {
//			examine(rec)
//			if (i+1)%50 == 0 {
//				yield()
//			}
//		}
//	})
//
// There is no cancellation: a task runs to completion across yields. Callers
// that start overlapping work must discard stale results themselves.
package coop

// Scheduler owns the run token. The zero value is not usable; construct with
// NewScheduler.
type Scheduler struct {
	baton chan struct{}
}

// NewScheduler returns a scheduler with the run token available.
func NewScheduler() *Scheduler {
	s := &Scheduler{baton: make(chan struct{}, 1)}
	s.baton <- struct{}{}
	return s
}

// Go starts fn as a cooperative task and returns a channel closed when it
// finishes. fn does not begin until the run token is acquired; the yield
// function passed to fn is its only suspension point.
func (s *Scheduler) Go(fn func(yield func())) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		<-s.baton
		defer func() { s.baton <- struct{}{} }()
		fn(s.yield)
	}()
	return done
}

// Run executes fn as a cooperative task and blocks until it completes.
func (s *Scheduler) Run(fn func(yield func())) {
	<-s.Go(fn)
}

func (s *Scheduler) yield() {
	// Send hands the baton straight to a waiting task when one exists;
	// otherwise it parks in the buffer and the receive takes it back.
	s.baton <- struct{}{}
	<-s.baton
}

// Every returns a step function that calls yield once per n invocations.
// Chunked loops call the step function after each unit of work. A nil yield
// or non-positive n yields never.
func Every(n int, yield func()) func() {
	if n <= 0 || yield == nil {
		return func() {}
	}
	count := 0
	return func() {
		count++
		if count%n == 0 {
			yield()
		}
	}
}
