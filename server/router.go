package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// ScheduleHandler is the handler surface the router wires up.
type ScheduleHandler interface {
	PutSchedule(w http.ResponseWriter, r *http.Request)
	GetSchedule(w http.ResponseWriter, r *http.Request)
	DeleteSchedule(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetHolidays(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	scheduleHandler ScheduleHandler
	router          *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	scheduleHandler ScheduleHandler,
	router *mux.Router) *Router {
	return &Router{
		scheduleHandler: scheduleHandler,
		router:          router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/venues/{venueId}/schedule", r.scheduleHandler.PutSchedule).Methods("PUT")
	r.router.HandleFunc("/v1/venues/{venueId}/schedule", r.scheduleHandler.GetSchedule).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venueId}/schedule", r.scheduleHandler.DeleteSchedule).Methods("DELETE")

	// expects optional ?at={RFC3339 timestamp}
	r.router.HandleFunc("/v1/venues/{venueId}/status", r.scheduleHandler.GetStatus).Methods("GET")

	r.router.HandleFunc("/v1/holidays/{year}", r.scheduleHandler.GetHolidays).Methods("GET")

	r.router.HandleFunc("/ping", r.scheduleHandler.Ping).Methods("GET")
}
