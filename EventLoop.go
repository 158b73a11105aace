package main

import (
	"gridCore/contracts"
	"sync"
)

type loopEvent struct {
	handler func()
	done    chan struct{}
}

// EventLoop is the single logical UI thread. Each submitted event runs to completion,
// then the tasks it deferred run as the next tick, before the following event starts.
type EventLoop struct {
	events    chan loopEvent
	closed    chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	deferredMu sync.Mutex
	deferred   []func()
}

func NewEventLoop() *EventLoop {
	return &EventLoop{
		events: make(chan loopEvent),
		closed: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (loop *EventLoop) Start() {
	go loop.run()
}

func (loop *EventLoop) Close() {
	loop.closeOnce.Do(func() {
		close(loop.closed)
	})
	<-loop.done
}

// Submit runs handler on the loop and waits until it and its deferred tasks finished.
// It returns false when the loop is closed.
func (loop *EventLoop) Submit(handler func()) bool {
	event := loopEvent{handler: handler, done: make(chan struct{})}

	select {
	case loop.events <- event:
	case <-loop.closed:
		return false
	}

	<-event.done
	return true
}

func (loop *EventLoop) Defer(task func()) {
	loop.deferredMu.Lock()
	defer loop.deferredMu.Unlock()

	loop.deferred = append(loop.deferred, task)
}

func (loop *EventLoop) run() {
	defer close(loop.done)

	for {
		select {
		case event := <-loop.events:
			event.handler()
			loop.drain()
			close(event.done)

		case <-loop.closed:
			return
		}
	}
}

// drain runs deferred tasks in order, including the ones they defer themselves
func (loop *EventLoop) drain() {
	for {
		loop.deferredMu.Lock()
		tasks := loop.deferred
		loop.deferred = nil
		loop.deferredMu.Unlock()

		if len(tasks) == 0 {
			return
		}

		for _, task := range tasks {
			task()
		}
	}
}

var _ contracts.EventLoop = (*EventLoop)(nil)
