package weather

import (
	"sort"
	"time"

	"geoweather.app/internal/ports"
	"geoweather.app/pkg/validation"
)

// planFill returns the ranges that must be fetched so the ledger covers req.
// found is ordered by date descending. Fills are widened to whole months and
// never extend past limit.
func planFill(req DateRange, found []ports.HistoricalRecord, limit time.Time) []DateRange {
	var fills []DateRange
	add := func(r DateRange) {
		if !r.End.Before(r.Start) {
			fills = append(fills, r)
		}
	}

	if len(found) == 0 {
		add(DateRange{Start: monthStart(req.Start), End: minDay(monthEnd(req.End), limit)})
		return fills
	}

	foundEnd := truncateDay(found[0].Date)
	foundStart := truncateDay(found[len(found)-1].Date)

	if req.Start.Before(foundStart) {
		add(DateRange{Start: monthStart(req.Start), End: addDays(foundStart, -1)})
	}
	if req.End.After(foundEnd) {
		add(DateRange{Start: addDays(foundEnd, 1), End: minDay(monthEnd(req.End), limit)})
	}
	return fills
}

// fetchChunks splits every fill into calendar-month requests
func fetchChunks(fills []DateRange) []DateRange {
	var chunks []DateRange
	for _, fill := range fills {
		chunks = append(chunks, splitByMonth(fill)...)
	}
	return chunks
}

func recordsFromDaily(locationID string, daily []ports.DailyWeather) []ports.HistoricalRecord {
	records := make([]ports.HistoricalRecord, 0, len(daily))
	for _, day := range daily {
		date, err := validation.ParseISODate(day.Time)
		if err != nil {
			continue
		}
		records = append(records, ports.HistoricalRecord{
			LocationID: locationID,
			Date:       date,
			Weather:    day,
		})
	}
	return records
}

// mergeRecords keeps one entry per day inside req, newest first
func mergeRecords(req DateRange, sets ...[]ports.HistoricalRecord) []ports.DailyWeather {
	byDay := make(map[time.Time]ports.DailyWeather)
	for _, set := range sets {
		for _, record := range set {
			day := truncateDay(record.Date)
			if !req.Contains(day) {
				continue
			}
			if _, seen := byDay[day]; !seen {
				byDay[day] = record.Weather
			}
		}
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	daily := make([]ports.DailyWeather, 0, len(days))
	for _, day := range days {
		daily = append(daily, byDay[day])
	}
	return daily
}
