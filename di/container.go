package di

import (
	"context"
	"fmt"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"oh-server/config"
	"oh-server/dao/redis"
	"oh-server/db"
	"oh-server/holiday"
	"oh-server/server"
	"oh-server/server/handlers"
	services "oh-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient            db.RedisClient
	ScheduleDao            *redis.RedisScheduleDAO
	HolidayCalculator      *holiday.Calculator
	ScheduleService        *services.ScheduleService
	StatusRefresherService *services.StatusRefresherService
	ScheduleHandler        *handlers.ScheduleHandler
	MuxRouter              *mux.Router
	Router                 *server.Router
	OpeningHoursHttpServer *server.OpeningHoursHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Initialize Redis client - in-memory mock outside prod
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using mock redis client")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, redisInternalClient)
		if err := redisClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
	}

	// Initialize Redis Schedule DAO
	scheduleDao := redis.NewRedisScheduleDAO(redisClient)

	// Initialize holiday calculator
	holidayCalculator := holiday.NewCalculator()

	// Initialize service layer
	scheduleService := services.NewScheduleService(scheduleDao, holidayCalculator)

	// Initialize schedule handler
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(scheduleHandler, muxRouter)

	// Initialize opening hours server
	openingHoursHttpServer := server.NewOpeningHoursHttpServer(router, muxRouter)

	statusRefresherService := services.NewStatusRefresherService(scheduleDao, scheduleService)

	return &Container{
		RedisClient:            redisClient,
		ScheduleDao:            scheduleDao,
		HolidayCalculator:      holidayCalculator,
		ScheduleService:        scheduleService,
		StatusRefresherService: statusRefresherService,
		ScheduleHandler:        scheduleHandler,
		MuxRouter:              muxRouter,
		Router:                 router,
		OpeningHoursHttpServer: openingHoursHttpServer,
	}
}
