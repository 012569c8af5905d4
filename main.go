package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
)

func main() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	root := app.Group("/api")

	v1 := root.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
