package controller

import "github.com/labstack/echo/v4"

type ScheduleController interface {
	List(c echo.Context) error
	Upcoming(c echo.Context) error
	Details(c echo.Context) error
	Toggle(c echo.Context) error
	Regenerate(c echo.Context) error
}
