package controller

import "github.com/labstack/echo/v4"

type ProfileController interface {
	GetProfile(c echo.Context) error
	PatchProfile(c echo.Context) error
	ListFertilizers(c echo.Context) error
	UpdateFertilizer(c echo.Context) error
	GetWages(c echo.Context) error
	UpdateWages(c echo.Context) error
}
