package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"oh-server/config"
	"oh-server/di"
	"oh-server/util"
)

func seedDemoSchedule(container *di.Container) {
	path := config.GetResourcePath(config.SAMPLE_SCHEDULE_RESOURCE)
	if _, err := os.Stat(path); err != nil {
		log.Printf("No sample schedule at %s, skipping seed", path)
		return
	}

	cfg, err := util.ReadScheduleConfigFromJSON(path)
	if err != nil {
		log.Printf("Failed to load sample schedule: %v", err)
		return
	}
	if err := container.ScheduleService.SaveSchedule(config.DEMO_VENUE_ID, cfg); err != nil {
		log.Printf("Failed to seed demo schedule: %v", err)
		return
	}

	result, _, err := container.ScheduleService.EvaluateVenueNow(config.DEMO_VENUE_ID)
	if err != nil {
		log.Printf("Failed to evaluate demo schedule: %v", err)
		return
	}
	util.PrintEvaluationResultPartially(result)
	util.PlotWeeklyHours(config.DEMO_VENUE_ID, result.OpeningHours)
}

func main() {
	env := os.Getenv("OH_ENV")
	if env == "" {
		env = "prod"
	}
	container := di.NewContainer(env)

	fmt.Println("seeding demo schedule!")
	seedDemoSchedule(container)

	fmt.Println("starting periodic status refresher!")
	container.StatusRefresherService.StartPeriodicJob(config.STATUS_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.OpeningHoursHttpServer.Start()
}
