package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(ctx.UserContext(), &request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	response, err := schedulers.ScheduleShortestJobFirst(ctx.UserContext(), &request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

// AllAlgorithms runs every scheduler on the same input and keys the
// responses by algorithm name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	results := make(map[string]*responses.ScheduleResponse, 3)
	fcfs, err := schedulers.ScheduleFirstComeFirstServe(ctx.UserContext(), &request)
	if err != nil {
		return scheduleError(ctx, err)
	}
	results[fcfs.Algorithm] = fcfs
	for _, mode := range []int{schedulers.SJFModeNonPreemptive, schedulers.SJFModePreemptive} {
		run := request
		run.Mode = mode
		response, err := schedulers.ScheduleShortestJobFirst(ctx.UserContext(), &run)
		if err != nil {
			return scheduleError(ctx, err)
		}
		results[response.Algorithm] = response
	}
	return ctx.JSON(results)
}

// scheduleError maps input rejections to 400 and everything else to 500.
func scheduleError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedulers.ErrInvalidMode),
		errors.Is(err, core.ErrNoProcesses),
		errors.Is(err, core.ErrInvalidArrivalTime),
		errors.Is(err, core.ErrInvalidBurstTime),
		errors.Is(err, core.ErrDuplicateProcessID):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "can not proccess request",
		})
	}
}
