package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	expenseCtrl "lawncare/pkg/expense/controller"
	healthCtrl "lawncare/pkg/health/controller"
	inventoryCtrl "lawncare/pkg/inventory/controller"
	mediaCtrl "lawncare/pkg/media/controller"
	"lawncare/pkg/middleware"
	profileCtrl "lawncare/pkg/profile/controller"
	schedCtrl "lawncare/pkg/schedule/controller"
	"lawncare/pkg/validation"
)

type Controllers struct {
	Profile   profileCtrl.ProfileController
	Schedule  schedCtrl.ScheduleController
	Inventory inventoryCtrl.InventoryController
	Expense   expenseCtrl.ExpenseController
	Media     mediaCtrl.MediaController
	Health    healthCtrl.HealthController
}

// New registers middleware and every route on e. /metrics is served only
// when withMetrics is set.
func New(e *echo.Echo, ctl Controllers, withMetrics bool) *echo.Echo {
	e.HideBanner = true
	e.Validator = validation.New()

	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.AccessLog(withMetrics))

	e.GET("/health", ctl.Health.Health)
	if withMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api/v1")

	api.GET("/profile", ctl.Profile.GetProfile)
	api.PATCH("/profile", ctl.Profile.PatchProfile)
	api.GET("/fertilizers", ctl.Profile.ListFertilizers)
	api.PUT("/fertilizers/:id", ctl.Profile.UpdateFertilizer)
	api.GET("/wages", ctl.Profile.GetWages)
	api.PUT("/wages", ctl.Profile.UpdateWages)

	api.GET("/tasks", ctl.Schedule.List)
	api.GET("/tasks/upcoming", ctl.Schedule.Upcoming)
	api.GET("/tasks/:id/details", ctl.Schedule.Details)
	api.POST("/tasks/:id/toggle", ctl.Schedule.Toggle)
	api.POST("/tasks/regenerate", ctl.Schedule.Regenerate)

	api.GET("/inventory", ctl.Inventory.List)
	api.POST("/inventory", ctl.Inventory.Create)
	api.PUT("/inventory/:id", ctl.Inventory.Update)
	api.DELETE("/inventory/:id", ctl.Inventory.Delete)

	api.GET("/expenses", ctl.Expense.List)
	api.POST("/expenses", ctl.Expense.Create)
	api.POST("/expenses/labor", ctl.Expense.CreateLabor)
	api.GET("/expenses/summary", ctl.Expense.Summary)
	api.GET("/expenses/export.xlsx", ctl.Expense.Export)
	api.PUT("/expenses/:id", ctl.Expense.Update)
	api.DELETE("/expenses/:id", ctl.Expense.Delete)

	api.GET("/media", ctl.Media.List)
	api.POST("/media", ctl.Media.Create)
	api.PUT("/media/:id", ctl.Media.Update)
	api.DELETE("/media/:id", ctl.Media.Delete)
	api.POST("/media/:id/like", ctl.Media.ToggleLike)

	return e
}
