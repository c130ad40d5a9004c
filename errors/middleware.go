package errors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// JSONHTTPErrorHandler renders errors in the `{"error": "..."}` shape the patients API uses.
func JSONHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	e := HttpError{}
	he := &echo.HTTPError{}
	if errors.As(err, &e) {
		code = e.Code
	} else if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
