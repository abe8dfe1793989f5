package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/openwindow/advisor/internal/report"
	"github.com/openwindow/advisor/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app. refs is the
// candidate indoor temperature set shared by both endpoints.
func RegisterRoutes(app *fiber.App, service *weather.Service, refs []float64) {
	v1 := app.Group("/api/v1")

	v1.Get("/advice/hourly", func(c *fiber.Ctx) error {
		var req adviceQuery
		if err := req.bind(c, "hours", 10); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		samples, err := service.HourlyOutlook(c.Context(), req.toLocation(), weather.Civil(time.Now()), req.Count)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
		}

		return c.JSON(report.AssembleHourly(samples, refs))
	})

	v1.Get("/advice/daily", func(c *fiber.Ctx) error {
		var req adviceQuery
		if err := req.bind(c, "days", 7); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Count > 7 {
			return fiber.NewError(fiber.StatusBadRequest, "days must be between 1 and 7")
		}

		days, err := service.DailyOutlook(c.Context(), req.toLocation(), weather.Civil(time.Now()), req.Count)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "failed to fetch forecast data")
		}

		return c.JSON(report.AssembleDaily(days, refs))
	})
}

// adviceQuery holds the validated query parameters for both advice
// endpoints. Count is "hours" on the hourly route and "days" on the daily
// one.
type adviceQuery struct {
	Lat   float64 `validate:"gte=-90,lte=90"`
	Lng   float64 `validate:"gte=-180,lte=180"`
	Count int     `validate:"gte=1,lte=168"`
}

func (q adviceQuery) toLocation() weather.Location {
	lat, lng := q.Lat, q.Lng
	return weather.Location{Lat: &lat, Lon: &lng}
}

func (q *adviceQuery) bind(c *fiber.Ctx, countParam string, countDefault int) error {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")
	if latStr == "" || lngStr == "" {
		return errors.New("lat and lng query parameters are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return errors.New("lat must be a number")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return errors.New("lng must be a number")
	}
	q.Lat = lat
	q.Lng = lng

	q.Count = countDefault
	if v := c.Query(countParam); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(countParam + " must be an integer")
		}
		q.Count = n
	}

	return nil
}
