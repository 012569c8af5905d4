package schedulers

import (
	"errors"
	"fmt"

	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// ErrIncompleteSchedule reports a process that never received a completion
// instant, which would poison every derived metric.
var ErrIncompleteSchedule = errors.New("schedule incomplete")

// DeriveTimings fills the turnaround and waiting fields of every process
// from the instants a simulator wrote: turnaround is completion minus
// arrival, waiting is turnaround minus burst.
func DeriveTimings(set core.ProcessSet) error {
	if len(set) == 0 {
		return core.ErrNoProcesses
	}
	for i := range set {
		p := &set[i]
		if p.CompletionTime < 0 {
			return fmt.Errorf("process %d: %w", p.ID, ErrIncompleteSchedule)
		}
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
	return nil
}

func generateResponse(algorithm string, set core.ProcessSet, timeline core.Timeline) (*responses.ScheduleResponse, error) {
	if err := DeriveTimings(set); err != nil {
		return nil, err
	}
	proccessDetails := generateProcessDetails(set)
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(proccessDetails)

	totalTime := 0
	for i := range set {
		if set[i].CompletionTime > totalTime {
			totalTime = set[i].CompletionTime
		}
	}
	busyTime := timeline.BusyTime()
	var response = responses.ScheduleResponse{
		Algorithm:             algorithm,
		TotalTime:             totalTime,
		BusyTime:              busyTime,
		IdleTime:              totalTime - busyTime,
		CpuUtilization:        float64(busyTime) / float64(totalTime),
		CpuThroughput:         float64(len(set)) / float64(totalTime),
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Timeline:              generateTimeline(timeline),
		Details:               proccessDetails,
	}
	return &response, nil
}

// generateProcessDetails keeps the submission order of the set so callers
// can line responses up with their request.
func generateProcessDetails(set core.ProcessSet) []responses.ProcessMetrics {
	details := make([]responses.ProcessMetrics, 0, len(set))
	for i := range set {
		p := &set[i]
		details = append(details, responses.ProcessMetrics{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.StartTime - p.ArrivalTime,
		})
	}
	return details
}

func generateTimeline(timeline core.Timeline) []responses.TimeSlice {
	slices := make([]responses.TimeSlice, 0, len(timeline))
	for _, s := range timeline {
		slices = append(slices, responses.TimeSlice{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			Stop:      s.Stop,
		})
	}
	return slices
}
