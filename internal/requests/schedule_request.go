package requests

type Process struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
}

type ScheduleRequest struct {
	Processes []Process `json:"processes"`
	// Mode selects the shortest-job-first variant: 1 runs each picked job to
	// completion, 2 re-evaluates the shortest remaining time every time unit.
	Mode int `json:"mode,omitempty"`
}
