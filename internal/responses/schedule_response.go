package responses

type ProcessMetrics struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	StartTime      int `json:"start_time"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

type TimeSlice struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type ScheduleResponse struct {
	Algorithm             string           `json:"algorithm"`
	TotalTime             int              `json:"total_time"`
	BusyTime              int              `json:"busy_time"`
	IdleTime              int              `json:"idle_time"`
	CpuUtilization        float64          `json:"cpu_utilization"`
	CpuThroughput         float64          `json:"cpu_throughput"`
	AverageWaitingTime    float64          `json:"average_waiting_time"`
	AverageResponseTime   float64          `json:"average_response_time"`
	AverageTurnAroundTime float64          `json:"average_turn_around_time"`
	Timeline              []TimeSlice      `json:"timeline"`
	Details               []ProcessMetrics `json:"details"`
}
