package api

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"geoweather.app/internal/core/weather"
	"geoweather.app/pkg/errors"
	"geoweather.app/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// PointRequest is the coordinate pair shared by every weather endpoint.
// Pointers keep a missing parameter distinct from zero.
type PointRequest struct {
	Latitude  *float64 `form:"lat" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"lon" binding:"required,min=-180,max=180"`
}

// HourlyRequest selects one day of hourly readings
type HourlyRequest struct {
	PointRequest
	Date string `form:"date" binding:"required,isodate"`
}

// HistoryRequest selects a range of archived days around date
type HistoryRequest struct {
	PointRequest
	Date         string `form:"date" binding:"required,isodate"`
	Days         int    `form:"days" binding:"required"`
	WithLocation bool   `form:"withLocation"`
}

func (r PointRequest) query() weather.Query {
	return weather.Query{Latitude: *r.Latitude, Longitude: *r.Longitude}
}

// getCurrent handles GET /api/weather/current requests
func (s *HTTPServerAdapter) getCurrent(c *gin.Context) {
	var req PointRequest
	if !s.bindQuery(c, &req) {
		return
	}

	result, err := s.weatherUseCase.Current(c.Request.Context(), req.query())
	s.respond(c, "current", result, err)
}

// getDaily handles GET /api/weather/daily requests
func (s *HTTPServerAdapter) getDaily(c *gin.Context) {
	var req PointRequest
	if !s.bindQuery(c, &req) {
		return
	}

	result, err := s.weatherUseCase.Daily(c.Request.Context(), req.query())
	s.respond(c, "daily", result, err)
}

// getHourly handles GET /api/weather/hourly requests
func (s *HTTPServerAdapter) getHourly(c *gin.Context) {
	var req HourlyRequest
	if !s.bindQuery(c, &req) {
		return
	}

	date, err := validation.ParseISODate(req.Date)
	if err != nil {
		s.handleError(c, errors.NewValidationError("invalid date"))
		return
	}

	q := req.query()
	q.Date = &date
	result, err := s.weatherUseCase.Hourly(c.Request.Context(), q)
	s.respond(c, "hourly", result, err)
}

// getHistory handles GET /api/weather/history requests
func (s *HTTPServerAdapter) getHistory(c *gin.Context) {
	var req HistoryRequest
	if !s.bindQuery(c, &req) {
		return
	}

	date, err := validation.ParseISODate(req.Date)
	if err != nil {
		s.handleError(c, errors.NewValidationError("invalid date"))
		return
	}

	q := req.query()
	q.Date = &date
	q.Days = req.Days
	q.WithLocation = req.WithLocation
	result, err := s.weatherUseCase.History(c.Request.Context(), q)
	s.respond(c, "history", result, err)
}

// getConditions handles GET /api/weather/conditions requests
func (s *HTTPServerAdapter) getConditions(c *gin.Context) {
	c.JSON(http.StatusOK, s.weatherUseCase.Conditions(c.Request.Context()))
}

func (s *HTTPServerAdapter) bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		slog.Debug("Request binding error", "path", c.Request.URL.Path, "error", err)
		s.handleError(c, errors.NewValidationError(bindingMessage(err)))
		return false
	}
	return true
}

func (s *HTTPServerAdapter) respond(c *gin.Context, kind string, result *weather.Weather, err error) {
	if err != nil {
		slog.Error("Weather use case error", "kind", kind, "error", err)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func bindingMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !stderrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "Invalid request format"
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is required", fe.Field())
	case "isodate":
		return fmt.Sprintf("%s must be a YYYY-MM-DD date", fe.Field())
	case "min", "max":
		return fmt.Sprintf("%s is out of bounds", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
