package schedulers

import (
	"context"
	"schedsim/internal/core"
)

// ShortestRemainingTimeFirst advances the clock one unit at a time and at
// every tick runs the arrived process with the least remaining work,
// preempting the current one whenever a newcomer undercuts it. A process
// finishes at the exact tick its remaining work reaches zero. Ties fall back
// to arrival time and then process id, so a running process keeps the CPU
// against an equal newcomer.
func ShortestRemainingTimeFirst(ctx context.Context, set core.ProcessSet) (core.Timeline, error) {
	if len(set) == 0 {
		return nil, core.ErrNoProcesses
	}
	remaining := make([]int, len(set))
	for i := range set {
		remaining[i] = set[i].BurstTime
	}
	var timeline core.Timeline
	clock := 0
	running := -1
	for set.Completed() < len(set) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next := selectShortestRemaining(set, remaining, clock)
		if next == -1 {
			arrival, ok := set.NextArrivalAfter(clock)
			if !ok {
				return nil, core.ErrNoProcesses
			}
			clock = arrival
			continue
		}
		if running != -1 && running != next {
			set[running].State = core.StateReady
		}
		p := &set[next]
		if p.StartTime < 0 {
			p.StartTime = clock
		}
		p.State = core.StateRunning
		running = next
		remaining[next]--
		clock++
		timeline = timeline.Append(p.ID, clock-1, clock)
		if remaining[next] == 0 {
			p.CompletionTime = clock
			p.State = core.StateCompleted
			running = -1
		}
	}
	return timeline, nil
}

// selectShortestRemaining returns the index of the arrived, unfinished
// process with the least remaining work, or -1 when nothing has arrived by
// the given clock.
func selectShortestRemaining(set core.ProcessSet, remaining []int, clock int) int {
	shortest := -1
	for i := range set {
		p := &set[i]
		if p.State == core.StateCompleted || p.ArrivalTime > clock {
			continue
		}
		if p.State == core.StatePending {
			p.State = core.StateReady
		}
		if shortest == -1 || lessByRemaining(set, remaining, i, shortest) {
			shortest = i
		}
	}
	return shortest
}

func lessByRemaining(set core.ProcessSet, remaining []int, i, j int) bool {
	if remaining[i] != remaining[j] {
		return remaining[i] < remaining[j]
	}
	if set[i].ArrivalTime != set[j].ArrivalTime {
		return set[i].ArrivalTime < set[j].ArrivalTime
	}
	return set[i].ID < set[j].ID
}
