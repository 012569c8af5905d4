// Package core holds the process records the scheduling simulators operate
// on. A simulator owns one ProcessSet for the duration of a run, writes the
// start and completion instants in place, and leaves the derived timing
// fields to the analytics layer.
package core

import (
	"errors"
	"fmt"
	"sort"
)

// State tracks where a process is in its lifecycle. A process becomes Ready
// once the clock reaches its arrival time, Running while it holds the CPU,
// and Completed when its burst has been fully served. Completed is terminal;
// preemptive scheduling moves a process between Running and Ready until then.
type State int

const (
	StatePending State = iota
	StateReady
	StateRunning
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Process is a single schedulable unit of work. ID, ArrivalTime and
// BurstTime come from the caller; StartTime and CompletionTime are written
// exactly once by the simulator that runs the process, and TurnaroundTime
// and WaitingTime are derived afterwards from CompletionTime.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int

	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int

	State State
}

// NewProcess returns a process with the computed instants cleared. StartTime
// and CompletionTime stay -1 until a simulator assigns them.
func NewProcess(id, arrivalTime, burstTime int) Process {
	return Process{
		ID:             id,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		StartTime:      -1,
		CompletionTime: -1,
	}
}

// ProcessSet is an ordered collection of processes. The slice order is the
// submission order and is never rearranged by a simulator; arrival-order or
// remaining-time-order iteration happens over derived views.
type ProcessSet []Process

var (
	ErrNoProcesses        = errors.New("process set is empty")
	ErrInvalidArrivalTime = errors.New("arrival time must be >= 0")
	ErrInvalidBurstTime   = errors.New("burst time must be > 0")
	ErrDuplicateProcessID = errors.New("duplicate process id")
)

// Validate rejects inputs the simulators are not defined over: an empty set,
// a negative arrival time, a non-positive burst time or a reused id. A zero
// or negative burst would break the completion-time arithmetic, so it is
// refused here instead of surfacing mid-simulation.
func (s ProcessSet) Validate() error {
	if len(s) == 0 {
		return ErrNoProcesses
	}
	seen := make(map[int]struct{}, len(s))
	for i := range s {
		p := &s[i]
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process %d: %w", p.ID, ErrInvalidArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("process %d: %w", p.ID, ErrInvalidBurstTime)
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("process %d: %w", p.ID, ErrDuplicateProcessID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Clone returns an independent copy of the set. Simulators mutate records in
// place, so a caller comparing algorithms runs each one on its own clone.
func (s ProcessSet) Clone() ProcessSet {
	out := make(ProcessSet, len(s))
	copy(out, s)
	return out
}

// ByArrival returns pointers to the records ordered by arrival time. The
// sort is stable: processes arriving at the same instant keep their
// submission order.
func (s ProcessSet) ByArrival() []*Process {
	ordered := make([]*Process, len(s))
	for i := range s {
		ordered[i] = &s[i]
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ArrivalTime < ordered[j].ArrivalTime
	})
	return ordered
}

// NextArrivalAfter returns the earliest arrival strictly after the given
// instant among unfinished processes, and false when none remains. The
// simulators use it to jump over idle gaps instead of stepping the clock one
// unit at a time.
func (s ProcessSet) NextArrivalAfter(clock int) (int, bool) {
	next, ok := 0, false
	for i := range s {
		p := &s[i]
		if p.State == StateCompleted || p.ArrivalTime <= clock {
			continue
		}
		if !ok || p.ArrivalTime < next {
			next, ok = p.ArrivalTime, true
		}
	}
	return next, ok
}

// Completed counts the records that have finished execution.
func (s ProcessSet) Completed() int {
	n := 0
	for i := range s {
		if s[i].State == StateCompleted {
			n++
		}
	}
	return n
}

// TotalBurst returns the sum of all burst times: the CPU time the set
// consumes in any complete schedule.
func (s ProcessSet) TotalBurst() int {
	total := 0
	for i := range s {
		total += s[i].BurstTime
	}
	return total
}
