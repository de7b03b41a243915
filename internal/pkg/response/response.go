package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every payload carries a `success` boolean so clients can branch without
// inspecting status codes.

// OK sends a 200 response with success=true merged into the payload.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, withSuccess(payload))
}

// Created sends a 201 response with success=true merged into the payload.
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, withSuccess(payload))
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	abortWith(c, http.StatusBadRequest, gin.H{"message": message})
}

// BadRequestH sends a 400 error response with extra payload fields.
func BadRequestH(c *gin.Context, payload gin.H) {
	abortWith(c, http.StatusBadRequest, payload)
}

// Unauthorized sends a 401 error response.
func Unauthorized(c *gin.Context, message string) {
	abortWith(c, http.StatusUnauthorized, gin.H{"message": message})
}

// Forbidden sends a 403 error response.
func Forbidden(c *gin.Context, message string) {
	abortWith(c, http.StatusForbidden, gin.H{"message": message})
}

// NotFound sends a 404 error response.
func NotFound(c *gin.Context, message string) {
	abortWith(c, http.StatusNotFound, gin.H{"message": message})
}

// Conflict sends a 409 error response.
func Conflict(c *gin.Context, message string) {
	abortWith(c, http.StatusConflict, gin.H{"message": message})
}

// InternalError sends a 500 error response with the given message.
// Callers decide whether to surface the underlying error text.
func InternalError(c *gin.Context, message string) {
	abortWith(c, http.StatusInternalServerError, gin.H{"message": message})
}

// InternalErrorWithError sends a 500 carrying a generic message plus the raw
// error text under `error`.
func InternalErrorWithError(c *gin.Context, message string, err error) {
	payload := gin.H{"message": message}
	if err != nil {
		payload["error"] = err.Error()
	}
	abortWith(c, http.StatusInternalServerError, payload)
}

func withSuccess(payload gin.H) gin.H {
	if payload == nil {
		payload = gin.H{}
	}
	if _, ok := payload["success"]; !ok {
		payload["success"] = true
	}
	return payload
}

func abortWith(c *gin.Context, status int, payload gin.H) {
	if payload == nil {
		payload = gin.H{}
	}
	payload["success"] = false
	c.AbortWithStatusJSON(status, payload)
}
