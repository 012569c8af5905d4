package schedulers

import (
	"context"
	"log"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// ShortestJobFirst picks, at every dispatch point, the arrived process with
// the smallest burst and runs it to completion without preemption. Burst
// ties fall back to arrival time and then process id. When no process has
// arrived yet the clock jumps to the next arrival instead of stepping.
func ShortestJobFirst(ctx context.Context, set core.ProcessSet) (core.Timeline, error) {
	if len(set) == 0 {
		return nil, core.ErrNoProcesses
	}
	var timeline core.Timeline
	clock := 0
	for set.Completed() < len(set) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := selectShortest(set, clock)
		if p == nil {
			next, ok := set.NextArrivalAfter(clock)
			if !ok {
				return nil, core.ErrNoProcesses
			}
			clock = next
			continue
		}
		p.State = core.StateRunning
		p.StartTime = clock
		p.CompletionTime = clock + p.BurstTime
		timeline = timeline.Append(p.ID, clock, p.CompletionTime)
		clock = p.CompletionTime
		p.State = core.StateCompleted
	}
	return timeline, nil
}

// selectShortest returns the arrived, not yet finished process with the
// smallest burst, or nil when nothing has arrived by the given clock.
func selectShortest(set core.ProcessSet, clock int) *core.Process {
	var shortest *core.Process
	for i := range set {
		p := &set[i]
		if p.State == core.StateCompleted || p.ArrivalTime > clock {
			continue
		}
		if p.State == core.StatePending {
			p.State = core.StateReady
		}
		if shortest == nil || lessByBurst(p, shortest) {
			shortest = p
		}
	}
	return shortest
}

// ScheduleShortestJobFirst dispatches on the request mode: mode 1 runs the
// non-preemptive variant, mode 2 the preemptive shortest-remaining-time
// variant. Any other mode is rejected.
func ScheduleShortestJobFirst(ctx context.Context, request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	if request == nil {
		return nil, core.ErrNoProcesses
	}
	switch request.Mode {
	case SJFModeNonPreemptive:
		log.Println("running sjf algorithm (non-preemptive) ...")
		set, err := buildProcessSet(request)
		if err != nil {
			return nil, err
		}
		timeline, err := ShortestJobFirst(ctx, set)
		if err != nil {
			return nil, err
		}
		response, err := generateResponse(AlgorithmSJF, set, timeline)
		if err != nil {
			return nil, err
		}
		log.Printf("sjf schedule complete: %d processes, makespan %d", len(set), response.TotalTime)
		return response, nil
	case SJFModePreemptive:
		log.Println("running sjf algorithm (preemptive) ...")
		set, err := buildProcessSet(request)
		if err != nil {
			return nil, err
		}
		timeline, err := ShortestRemainingTimeFirst(ctx, set)
		if err != nil {
			return nil, err
		}
		response, err := generateResponse(AlgorithmSRTF, set, timeline)
		if err != nil {
			return nil, err
		}
		log.Printf("srtf schedule complete: %d processes, makespan %d", len(set), response.TotalTime)
		return response, nil
	default:
		return nil, modeError(request.Mode)
	}
}
