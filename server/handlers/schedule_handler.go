package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"oh-server/engine"
	"oh-server/models/schedule"
	services "oh-server/service"
)

const (
	AT_QUERY_ARG      = "at"
	VENUE_ID_PATH_ARG = "venueId"
	YEAR_PATH_ARG     = "year"
)

// StatusResponse is the view model handed to external renderers: the
// evaluation result plus the display flags from the venue's config.
type StatusResponse struct {
	VenueID     string    `json:"venue_id"`
	EvaluatedAt time.Time `json:"evaluated_at"`
	*engine.EvaluationResult
	DisplaySimpleTime  bool   `json:"displaySimpleTime"`
	GroupedDays        bool   `json:"groupedDays"`
	ShortenGroupedDays bool   `json:"shortenGroupedDays"`
	AdditionalMessage  string `json:"additionalMessage,omitempty"`
}

// HolidayResponse is one holiday resolved to a concrete date.
type HolidayResponse struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

type ScheduleHandler struct {
	scheduleService *services.ScheduleService
}

func NewScheduleHandler(scheduleService *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// PutSchedule stores a venue's schedule config after validation.
func (h *ScheduleHandler) PutSchedule(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	var cfg schedule.ScheduleConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid schedule config: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.scheduleService.SaveSchedule(venueID, &cfg); err != nil {
		var validationErr *schedule.ValidationError
		if errors.As(err, &validationErr) {
			http.Error(w, validationErr.Error(), http.StatusBadRequest)
			return
		}
		log.Println("Error saving schedule:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "venue_id": venueID})
}

// GetSchedule returns the stored schedule config for a venue.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	cfg, err := h.scheduleService.GetSchedule(venueID)
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			http.Error(w, "Schedule not found", http.StatusNotFound)
			return
		}
		log.Println("Error loading schedule:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// DeleteSchedule removes a venue's schedule and cached status.
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	if err := h.scheduleService.DeleteSchedule(venueID); err != nil {
		log.Println("Error deleting schedule:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "venue_id": venueID})
}

// GetStatus evaluates a venue's opening status. The optional "at" query
// arg (RFC3339) evaluates at a different instant than now.
func (h *ScheduleHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	at := h.scheduleService.Now()
	if v := r.URL.Query().Get(AT_QUERY_ARG); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			http.Error(w, "Invalid argument "+AT_QUERY_ARG, http.StatusBadRequest)
			return
		}
		at = parsed
	}

	result, cfg, err := h.scheduleService.EvaluateVenue(venueID, at)
	if err != nil {
		if errors.Is(err, services.ErrScheduleNotFound) {
			http.Error(w, "Schedule not found", http.StatusNotFound)
			return
		}
		log.Println("Error evaluating venue:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, StatusResponse{
		VenueID:            venueID,
		EvaluatedAt:        at,
		EvaluationResult:   result,
		DisplaySimpleTime:  cfg.SimpleTime,
		GroupedDays:        cfg.GroupedDays,
		ShortenGroupedDays: cfg.ShortenGroupedDays,
		AdditionalMessage:  cfg.AdditionalMessage,
	})
}

// GetHolidays lists the public holidays of a year.
func (h *ScheduleHandler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(mux.Vars(r)[YEAR_PATH_ARG])
	if err != nil {
		http.Error(w, "Invalid argument "+YEAR_PATH_ARG, http.StatusBadRequest)
		return
	}

	holidays := h.scheduleService.HolidaysForYear(year)
	out := make([]HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		out = append(out, HolidayResponse{
			Date: fmt.Sprintf("%04d-%02d-%02d", year, int(hol.Month), hol.Day),
			Name: hol.Name,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Ping handles GET /ping
func (h *ScheduleHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("Error encoding response:", err)
	}
}
