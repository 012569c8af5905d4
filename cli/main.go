package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	algorithm := flag.String("algorithm", "all", `algorithm to run: "fcfs", "sjf" or "all"`)
	mode := flag.Int("mode", schedulers.SJFModeNonPreemptive, "sjf mode: 1 non-preemptive, 2 preemptive")
	flag.Parse()

	f, closeFile, err := openProcessingFile(flag.Args()...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	processes, err := loadProcesses(f)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	switch *algorithm {
	case schedulers.AlgorithmFCFS:
		err = fcfsSchedule(ctx, os.Stdout, processes)
	case schedulers.AlgorithmSJF:
		err = sjfSchedule(ctx, os.Stdout, processes, *mode)
	case "all":
		err = allSchedules(ctx, os.Stdout, processes)
	default:
		err = fmt.Errorf("%w: unknown algorithm %q", ErrInvalidArgs, *algorithm)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}

//region Schedulers

func fcfsSchedule(ctx context.Context, w io.Writer, processes []requests.Process) error {
	request := requests.ScheduleRequest{Processes: processes}
	response, err := schedulers.ScheduleFirstComeFirstServe(ctx, &request)
	if err != nil {
		return err
	}
	outputReport(w, "First-come, first-serve", response)
	return nil
}

func sjfSchedule(ctx context.Context, w io.Writer, processes []requests.Process, mode int) error {
	request := requests.ScheduleRequest{Processes: processes, Mode: mode}
	response, err := schedulers.ScheduleShortestJobFirst(ctx, &request)
	if err != nil {
		return err
	}
	title := "Shortest-job-first"
	if response.Algorithm == schedulers.AlgorithmSRTF {
		title = "Shortest-remaining-time-first"
	}
	outputReport(w, title, response)
	return nil
}

func allSchedules(ctx context.Context, w io.Writer, processes []requests.Process) error {
	if err := fcfsSchedule(ctx, w, processes); err != nil {
		return err
	}
	if err := sjfSchedule(ctx, w, processes, schedulers.SJFModeNonPreemptive); err != nil {
		return err
	}
	return sjfSchedule(ctx, w, processes, schedulers.SJFModePreemptive)
}

//endregion

//region Output helpers

func outputReport(w io.Writer, title string, response *responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].ProcessId)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response *responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		})
	}
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Completion", "Turnaround", "Wait"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime)})
	table.Render()
}

//endregion

//region Loading processes.

func loadProcesses(r io.Reader) ([]requests.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]requests.Process, len(rows))
	for i := range rows {
		if len(rows[i]) != 3 {
			return nil, fmt.Errorf("%w: row %d must be id,burst,arrival", ErrInvalidArgs, i+1)
		}
		processes[i].ProcessId = mustStrToInt(rows[i][0])
		processes[i].BurstTime = mustStrToInt(rows[i][1])
		processes[i].ArrivalTime = mustStrToInt(rows[i][2])
	}

	return processes, nil
}

func mustStrToInt(s string) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return i
}

//endregion
