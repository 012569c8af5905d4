package schedulers

import (
	"context"
	"log"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

// FirstComeFirstServe runs every process to completion in arrival order,
// serving records that arrive at the same instant in submission order. The
// clock starts at zero and jumps forward over any gap before the next
// arrival. Completion and start instants are written into the set in place;
// the returned timeline lists the execution order.
func FirstComeFirstServe(ctx context.Context, set core.ProcessSet) (core.Timeline, error) {
	if len(set) == 0 {
		return nil, core.ErrNoProcesses
	}
	var timeline core.Timeline
	clock := 0
	for _, p := range set.ByArrival() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if clock < p.ArrivalTime {
			clock = p.ArrivalTime
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

// ScheduleFirstComeFirstServe is the request-level entry point used by the
// API and CLI callers.
func ScheduleFirstComeFirstServe(ctx context.Context, request *requests.ScheduleRequest) (*responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	set, err := buildProcessSet(request)
	if err != nil {
		return nil, err
	}
	timeline, err := FirstComeFirstServe(ctx, set)
	if err != nil {
		return nil, err
	}
	response, err := generateResponse(AlgorithmFCFS, set, timeline)
	if err != nil {
		return nil, err
	}
	log.Printf("fcfs schedule complete: %d processes, makespan %d", len(set), response.TotalTime)
	return response, nil
}
