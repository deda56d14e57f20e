package controller

import "github.com/labstack/echo/v4"

type ExpenseController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	CreateLabor(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Summary(c echo.Context) error
	Export(c echo.Context) error
}
