package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteSuccess(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func WriteError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}
