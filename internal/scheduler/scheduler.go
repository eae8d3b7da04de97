// Package scheduler runs named tasks one after another, each after its own delay.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// TimeFormat is the timestamp layout written before each task name
const TimeFormat = "2006-01-02 15:04:05"

// ErrInvalidDelay is returned for negative delays
var ErrInvalidDelay = errors.New("invalid delay")

// Task is a named step that fires after Delay
type Task struct {
	Name  string
	Delay time.Duration
	// Run is optional and is called after the task is announced.
	Run func(ctx context.Context) error
}

// Scheduler executes tasks sequentially on a blocking timer
type Scheduler struct {
	clock  quartz.Clock
	out    io.Writer
	logger *log.Logger
	tasks  []Task
}

// New creates a scheduler that announces tasks on out
func New(clock quartz.Clock, out io.Writer, logger *log.Logger) *Scheduler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Scheduler{
		clock:  clock,
		out:    out,
		logger: logger.WithPrefix("scheduler"),
	}
}

// Add queues a task announcement after delay
func (s *Scheduler) Add(name string, delay time.Duration) error {
	return s.AddTask(Task{Name: name, Delay: delay})
}

// AddTask queues a task
func (s *Scheduler) AddTask(task Task) error {
	if task.Delay < 0 {
		return fmt.Errorf("task %q delay %s: %w", task.Name, task.Delay, ErrInvalidDelay)
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Len returns the number of queued tasks
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// Run executes every task in the order added. Each delay starts when the
// previous task has finished. Cancelling ctx stops the wait in progress.
func (s *Scheduler) Run(ctx context.Context) error {
	for i, task := range s.tasks {
		s.logger.Debug("Waiting for task", "task", task.Name, "delay", task.Delay, "index", i)
		if err := s.wait(ctx, task.Delay); err != nil {
			s.logger.Warn("Schedule interrupted", "task", task.Name, "error", err)
			return err
		}

		if _, err := fmt.Fprintf(s.out, "%s: %s\n", s.clock.Now().Format(TimeFormat), task.Name); err != nil {
			return fmt.Errorf("announcing task %q: %w", task.Name, err)
		}
		if task.Run != nil {
			if err := task.Run(ctx); err != nil {
				return fmt.Errorf("task %q: %w", task.Name, err)
			}
		}
	}
	return nil
}

func (s *Scheduler) wait(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d == 0 {
		return nil
	}

	timer := s.clock.NewTimer(d, "scheduler", "wait")
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
