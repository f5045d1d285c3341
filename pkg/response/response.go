package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Body is the standard API response envelope. Status tags the outcome kind
// ("success", "Bad request", "Not Found", "Internal Server Error"); Errors
// carries per-field validation detail when applicable.
type Body struct {
	Status     string       `json:"status"`
	Message    string       `json:"message,omitempty"`
	StatusCode int          `json:"statusCode,omitempty"`
	Data       interface{}  `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// FieldError is a single per-field validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK sends a 200 JSON response with message and data.
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Body{Status: "success", Message: message, Data: data})
}

// Created sends a 201 JSON response with message and data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Body{Status: "success", Message: message, Data: data})
}

// BadRequest sends 400 with error message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Body{Status: "Bad Request", Message: message, StatusCode: http.StatusBadRequest})
}

// ValidationFailed sends 422 with one entry per failed field.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, Body{Status: "Bad request", Message: "Validation failed", StatusCode: http.StatusUnprocessableEntity, Errors: errs})
}

// Conflict sends 422 with a duplicate-key style message.
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, Body{Status: "Bad request", Message: message, StatusCode: http.StatusUnprocessableEntity})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Body{Status: "Bad request", Message: message, StatusCode: http.StatusUnauthorized})
}

// NotFound sends 404. Callers use the same message for missing and forbidden
// resources so the response does not reveal which it was.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Body{Status: "Not Found", Message: message, StatusCode: http.StatusNotFound})
}

// Internal sends 500 with a generic message; detail belongs in the logs.
func Internal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Body{Status: "Internal Server Error", Message: message, StatusCode: http.StatusInternalServerError})
}
