package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Failure(CodeInvalidRequest, message))
}

// NotFound writes a 404 Not Found response for an unknown view name.
func NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, Failure(CodeNotFound, message))
}

// FailedPrecondition writes a 412 Precondition Failed response.
// Used when a view depends on an artifact the pipeline has not produced.
func FailedPrecondition(c echo.Context) error {
	return c.JSON(http.StatusPreconditionFailed, Failure(CodeFailedPrecondition, MsgMissingArtifact))
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, Failure(CodeInternalError, MsgInternalError))
}
