// Package httpx holds the request/response plumbing shared by controllers.
package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"lawncare/pkg/logger"
	"lawncare/pkg/store/service"
	"lawncare/pkg/validation"
)

// BindValid binds the body into dst and runs the echo validator on it.
// On failure it has already written the 400 response; callers return it.
func BindValid(c echo.Context, dst any) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	if err := c.Validate(dst); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return false, c.JSON(http.StatusBadRequest, echo.Map{
				"error":  "validation failed",
				"fields": validation.FormatValidationError(err),
			})
		}
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return true, nil
}

// StoreError maps a store error to its status code.
func StoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrExpenseLinked):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidLabor):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	logger.FromContext(c.Request().Context()).Error("store failure",
		"path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
}

func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func Created(c echo.Context, id string) error {
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}
