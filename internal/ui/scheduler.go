package ui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Scheduler delays engine callbacks and delivers them through the Bubble
// Tea program, so they run on the same goroutine as Update.
type Scheduler struct {
	mu      sync.Mutex
	program *tea.Program
}

// NewScheduler creates a scheduler with no program attached yet.
// Callbacks that come due before SetProgram are dropped.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// SetProgram attaches the program callbacks are sent to
func (s *Scheduler) SetProgram(p *tea.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

// AfterFunc implements virtual.Scheduler
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) func() {
	task := &deferredTask{fn: fn}
	timer := time.AfterFunc(d, func() {
		s.mu.Lock()
		p := s.program
		s.mu.Unlock()
		if p == nil || task.cancelled.Load() {
			return
		}
		p.Send(deferredMsg{task: task})
	})

	return func() {
		task.cancelled.Store(true)
		timer.Stop()
	}
}
