package schedulers

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedsim/internal/core"
	"schedsim/internal/requests"
)

func TestBuildProcessSetAssignsMissingIds(t *testing.T) {
	set, err := buildProcessSet(&requests.ScheduleRequest{
		Processes: []requests.Process{
			{ArrivalTime: 0, BurstTime: 2},
			{ProcessId: 7, ArrivalTime: 1, BurstTime: 3},
			{ArrivalTime: 2, BurstTime: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, set[0].ID)
	assert.Equal(t, 7, set[1].ID)
	assert.Equal(t, 3, set[2].ID)
	assert.Equal(t, -1, set[0].StartTime)
	assert.Equal(t, -1, set[0].CompletionTime)
}

func TestBuildProcessSetRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name    string
		request *requests.ScheduleRequest
		wantErr error
	}{
		{"nil request", nil, core.ErrNoProcesses},
		{"no processes", &requests.ScheduleRequest{}, core.ErrNoProcesses},
		{
			"negative arrival",
			&requests.ScheduleRequest{Processes: []requests.Process{
				{ProcessId: 1, ArrivalTime: -2, BurstTime: 1},
			}},
			core.ErrInvalidArrivalTime,
		},
		{
			"zero burst",
			&requests.ScheduleRequest{Processes: []requests.Process{
				{ProcessId: 1, ArrivalTime: 0, BurstTime: 0},
			}},
			core.ErrInvalidBurstTime,
		},
		{
			"duplicate ids",
			&requests.ScheduleRequest{Processes: []requests.Process{
				{ProcessId: 4, ArrivalTime: 0, BurstTime: 1},
				{ProcessId: 4, ArrivalTime: 1, BurstTime: 1},
			}},
			core.ErrDuplicateProcessID,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildProcessSet(tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestSchedulingInvariants checks the properties every complete schedule must
// satisfy, for each algorithm over each workload: nobody waits a negative
// amount, turnaround covers at least the burst, nothing starts before it
// arrives, the CPU is busy exactly the total burst time, and rerunning the
// same input reproduces the same timeline.
func TestSchedulingInvariants(t *testing.T) {
	simulators := map[string]func(context.Context, core.ProcessSet) (core.Timeline, error){
		AlgorithmFCFS: FirstComeFirstServe,
		AlgorithmSJF:  ShortestJobFirst,
		AlgorithmSRTF: ShortestRemainingTimeFirst,
	}
	workloads := map[string]core.ProcessSet{
		"staggered arrivals": {
			core.NewProcess(1, 0, 8),
			core.NewProcess(2, 1, 4),
			core.NewProcess(3, 2, 2),
		},
		"idle gaps": {
			core.NewProcess(1, 3, 2),
			core.NewProcess(2, 9, 4),
			core.NewProcess(3, 9, 1),
		},
		"simultaneous arrivals": {
			core.NewProcess(1, 0, 3),
			core.NewProcess(2, 0, 3),
			core.NewProcess(3, 0, 3),
		},
	}

	for simName, simulate := range simulators {
		for loadName, workload := range workloads {
			t.Run(simName+"/"+loadName, func(t *testing.T) {
				set := workload.Clone()
				timeline, err := simulate(context.Background(), set)
				require.NoError(t, err)
				require.NoError(t, DeriveTimings(set))

				assert.Equal(t, set.TotalBurst(), timeline.BusyTime())
				for i := 1; i < len(timeline); i++ {
					assert.GreaterOrEqual(t, timeline[i].Start, timeline[i-1].Stop,
						"slice %d overlaps its predecessor", i)
				}
				for i := range set {
					p := &set[i]
					assert.GreaterOrEqual(t, p.WaitingTime, 0, "process %d waiting time", p.ID)
					assert.GreaterOrEqual(t, p.TurnaroundTime, p.BurstTime, "process %d turnaround", p.ID)
					assert.GreaterOrEqual(t, p.StartTime, p.ArrivalTime, "process %d start", p.ID)
					assert.Equal(t, core.StateCompleted, p.State, "process %d state", p.ID)
				}

				rerun := workload.Clone()
				second, err := simulate(context.Background(), rerun)
				require.NoError(t, err)
				if diff := cmp.Diff(timeline, second); diff != "" {
					t.Errorf("timeline not deterministic (-first +second):\n%s", diff)
				}
			})
		}
	}
}
