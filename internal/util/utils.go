package util

import "schedsim/internal/responses"

func CalculateAverage(proccessDetails []responses.ProcessMetrics) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}
