package external

import "geoweather.app/internal/ports"

const hoursPerDay = 24

// MergeBundle combines the numeric forecast with the enrichment data into one bundle.
// conditions may be nil, in which case the bundle carries no Location and the
// current reading has only the numeric fields.
func MergeBundle(forecast *ports.ForecastData, conditions *ports.ConditionsData, catalog ports.ConditionCatalog, days int) *ports.WeatherBundle {
	bundle := &ports.WeatherBundle{
		Daily:  buildDaily(forecast.Daily, catalog, days),
		Hourly: buildHourly(forecast.Hourly, catalog, days),
	}
	if conditions != nil {
		location := buildLocation(forecast, conditions)
		bundle.Location = &location
	}
	if forecast.Current != nil {
		bundle.Current = buildCurrent(forecast.Current, conditions, catalog)
	}
	return bundle
}

func buildLocation(forecast *ports.ForecastData, conditions *ports.ConditionsData) ports.Location {
	return ports.Location{
		Name:                 conditions.Location.Name,
		Region:               conditions.Location.Region,
		Country:              conditions.Location.Country,
		Latitude:             conditions.Location.Latitude,
		Longitude:            conditions.Location.Longitude,
		Elevation:            forecast.Elevation,
		Timezone:             forecast.Timezone,
		TimezoneAbbreviation: forecast.TimezoneAbbreviation,
		UTCOffsetSeconds:     forecast.UTCOffsetSeconds,
	}
}

func buildCurrent(current *ports.ForecastCurrent, conditions *ports.ConditionsData, catalog ports.ConditionCatalog) *ports.CurrentWeather {
	isDay := true
	out := &ports.CurrentWeather{
		Time:          current.Time,
		Temperature:   current.Temperature,
		WindSpeed:     current.WindSpeed,
		WindDirection: current.WindDirection,
	}
	if conditions != nil {
		isDay = conditions.IsDay
		out.ApparentTemperature = conditions.ApparentTemperature
		out.Precipitation = conditions.Precipitation
		out.Humidity = conditions.Humidity
		out.UV = conditions.UV
	}

	condition := catalog.Lookup(current.WeatherCode)
	out.IsDay = isDay
	out.ConditionText = conditionText(condition, isDay)
	out.ConditionIcon = condition.Icon
	return out
}

// buildDaily stops at the first day without a condition code; archive tails are often incomplete
func buildDaily(daily ports.ForecastDaily, catalog ports.ConditionCatalog, days int) []ports.DailyWeather {
	out := make([]ports.DailyWeather, 0, min(days, len(daily.Time)))
	for i := 0; i < days && i < len(daily.Time); i++ {
		if i >= len(daily.WeatherCode) || daily.WeatherCode[i] == nil {
			break
		}

		condition := catalog.Lookup(*daily.WeatherCode[i])
		out = append(out, ports.DailyWeather{
			Time:                   daily.Time[i],
			TemperatureMax:         floatAt(daily.TemperatureMax, i),
			TemperatureMin:         floatAt(daily.TemperatureMin, i),
			ApparentTemperatureMax: floatAt(daily.ApparentTemperatureMax, i),
			ApparentTemperatureMin: floatAt(daily.ApparentTemperatureMin, i),
			Sunrise:                stringAt(daily.Sunrise, i),
			Sunset:                 stringAt(daily.Sunset, i),
			PrecipitationSum:       floatAt(daily.PrecipitationSum, i),
			PrecipitationHours:     floatAt(daily.PrecipitationHours, i),
			WindSpeedMax:           floatAt(daily.WindSpeedMax, i),
			WindGustsMax:           floatAt(daily.WindGustsMax, i),
			WindDirection:          floatAt(daily.WindDirection, i),
			ConditionText:          condition.Day,
			ConditionIcon:          condition.Icon,
		})
	}
	return out
}

// buildHourly cuts the hourly series into one 24-entry bucket per day
func buildHourly(hourly ports.ForecastHourly, catalog ports.ConditionCatalog, days int) []ports.HourlyWeather {
	var out []ports.HourlyWeather
	for day := 0; day < days; day++ {
		start := day * hoursPerDay
		if start >= len(hourly.Time) {
			break
		}
		end := min(start+hoursPerDay, len(hourly.Time))

		bucket := ports.HourlyWeather{
			Time:                append([]string(nil), hourly.Time[start:end]...),
			Temperature:         floatsIn(hourly.Temperature, start, end),
			ApparentTemperature: floatsIn(hourly.ApparentTemperature, start, end),
			Precipitation:       floatsIn(hourly.Precipitation, start, end),
			RelativeHumidity:    floatsIn(hourly.RelativeHumidity, start, end),
			DewPoint:            floatsIn(hourly.DewPoint, start, end),
			CloudCover:          floatsIn(hourly.CloudCover, start, end),
			SurfacePressure:     floatsIn(hourly.SurfacePressure, start, end),
			WindSpeed:           floatsIn(hourly.WindSpeed, start, end),
			WindDirection:       floatsIn(hourly.WindDirection, start, end),
			WindGusts:           floatsIn(hourly.WindGusts, start, end),
			ConditionText:       make([]string, 0, end-start),
			ConditionIcon:       make([]int, 0, end-start),
		}
		for i := start; i < end; i++ {
			code := FallbackConditionCode
			if i < len(hourly.WeatherCode) && hourly.WeatherCode[i] != nil {
				code = *hourly.WeatherCode[i]
			}
			condition := catalog.Lookup(code)
			bucket.ConditionText = append(bucket.ConditionText, condition.Day)
			bucket.ConditionIcon = append(bucket.ConditionIcon, condition.Icon)
		}
		out = append(out, bucket)
	}
	return out
}

func floatAt(values []*float64, i int) float64 {
	if i < len(values) && values[i] != nil {
		return *values[i]
	}
	return 0
}

func stringAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

func floatsIn(values []*float64, start, end int) []float64 {
	out := make([]float64, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, floatAt(values, i))
	}
	return out
}
