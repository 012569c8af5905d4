package core

// TimeSlice records one contiguous span of CPU time granted to a process.
type TimeSlice struct {
	ProcessID int
	Start     int
	Stop      int
}

// Timeline is the execution order of a simulation run, earliest slice first.
type Timeline []TimeSlice

// Append adds a span to the timeline, extending the last slice when the same
// process keeps the CPU across adjacent spans. Preemptive runs therefore
// produce one slice per uninterrupted stretch rather than one per tick.
func (t Timeline) Append(processID, start, stop int) Timeline {
	if n := len(t); n > 0 && t[n-1].ProcessID == processID && t[n-1].Stop == start {
		t[n-1].Stop = stop
		return t
	}
	return append(t, TimeSlice{ProcessID: processID, Start: start, Stop: stop})
}

// BusyTime is the total CPU time consumed across the run. For a complete
// schedule it equals the sum of the burst times.
func (t Timeline) BusyTime() int {
	busy := 0
	for _, slice := range t {
		busy += slice.Stop - slice.Start
	}
	return busy
}
