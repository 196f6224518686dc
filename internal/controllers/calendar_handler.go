package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"content-planner/dto"
	"content-planner/internal/apperrors"
	"content-planner/internal/services"
)

// CurrentMonthHandler godoc
// @Summary Month view for the current month
// @Tags calendar
// @Produce json
// @Success 200 {object} services.MonthView
// @Security BearerAuth
// @Router /calendar/current [get]
func CurrentMonthHandler(cal *services.CalendarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := cal.CurrentMonth()
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(view)
	}
}

// MonthHandler godoc
// @Summary Month view
// @Description Every day of the month with the posts that occur on it.
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} services.MonthView
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /calendar/{year}/{month} [get]
func MonthHandler(cal *services.CalendarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return respondError(c, err)
		}
		view, err := cal.Month(year, month)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(view)
	}
}

// PostDaysHandler godoc
// @Summary Days of a month on which a post is shown
// @Tags calendar
// @Produce json
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param id path string true "Post ID"
// @Success 200 {object} dto.PostDaysResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /calendar/{year}/{month}/posts/{id} [get]
func PostDaysHandler(cal *services.CalendarService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return respondError(c, err)
		}
		id := c.Params("id")
		days, err := cal.PostDays(id, year, month)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(dto.PostDaysResponse{PostID: id, Year: year, Month: int(month), Days: days})
	}
}

func monthParams(c *fiber.Ctx) (int, time.Month, error) {
	year, err := c.ParamsInt("year")
	if err != nil {
		return 0, 0, apperrors.Invalid("year", "year must be a number")
	}
	month, err := c.ParamsInt("month")
	if err != nil {
		return 0, 0, apperrors.Invalid("month", "month must be a number")
	}
	return year, time.Month(month), nil
}
