package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Response is the envelope of every JSON body the API writes.
type Response struct {
	Status  string `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// Ack is the payload of acknowledgements that carry no record.
type Ack struct {
	Text string `json:"text"`
}

func success(c echo.Context, code int, data any) error {
	return c.JSON(code, Response{
		Status: statusSuccess,
		Data:   data,
	})
}

func respond(c echo.Context, data any) error {
	return success(c, http.StatusOK, data)
}

func failure(message string) Response {
	return Response{
		Status:  statusError,
		Message: message,
	}
}
