// Package schedulers implements deterministic single-CPU scheduling
// algorithms over an in-memory process set. Each algorithm populates the
// set's completion instants and returns the execution timeline; the
// request-level Schedule functions wrap a simulator together with input
// validation and analytics generation.
package schedulers

import (
	"errors"
	"fmt"
	"schedsim/internal/core"
	"schedsim/internal/requests"
)

// Algorithm labels reported in responses and used as keys when several
// algorithms run over the same input.
const (
	AlgorithmFCFS = "fcfs"
	AlgorithmSJF  = "sjf"
	AlgorithmSRTF = "srtf"
)

// Shortest-job-first modes accepted by ScheduleShortestJobFirst.
const (
	SJFModeNonPreemptive = 1
	SJFModePreemptive    = 2
)

var ErrInvalidMode = errors.New("invalid sjf mode")

// buildProcessSet converts a request payload into the core representation,
// assigning 1-based ids in submission order where the caller left them
// unset, and rejects invalid records before any simulation starts.
func buildProcessSet(request *requests.ScheduleRequest) (core.ProcessSet, error) {
	if request == nil {
		return nil, core.ErrNoProcesses
	}
	set := make(core.ProcessSet, 0, len(request.Processes))
	for i, p := range request.Processes {
		id := p.ProcessId
		if id == 0 {
			id = i + 1
		}
		set = append(set, core.NewProcess(id, p.ArrivalTime, p.BurstTime))
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// lessByBurst orders two processes by burst time, breaking ties by the
// earlier arrival and then the lower id so equal-burst schedules stay
// deterministic regardless of submission order.
func lessByBurst(a, b *core.Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ID < b.ID
}

func modeError(mode int) error {
	return fmt.Errorf("%w: %d (want %d non-preemptive or %d preemptive)",
		ErrInvalidMode, mode, SJFModeNonPreemptive, SJFModePreemptive)
}
