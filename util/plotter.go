package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"oh-server/models/schedule"
)

// PlotWeeklyHours generates an HTML file rendering a bar chart of the
// venue's open minutes per weekday.
func PlotWeeklyHours(venueID string, openingHours map[schedule.Weekday]*schedule.HoursSpec) {
	days := make([]string, 0, 7)
	values := make([]opts.BarData, 0, 7)
	for _, day := range schedule.Weekdays() {
		days = append(days, day.String())
		total := 0
		if hours, ok := openingHours[day]; ok && hours != nil {
			for _, slot := range hours.SlotList() {
				total += slot.Close.Minutes() - slot.Open.Minutes()
			}
		}
		values = append(values, opts.BarData{Value: total})
	}

	// Create a new Bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Opening Hours",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Open minutes per weekday (%s)", venueID),
		}),
	)
	bar.SetXAxis(days)
	bar.AddSeries("OpenMinutes", values)

	// Create an HTML file to render the chart.
	fileName := fmt.Sprintf("weekly_hours_%s.html", venueID)
	f, err := os.Create(fileName)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Weekly hours chart generated: " + fileName)
}
