package utils

import (
	"github.com/gin-gonic/gin"
)

// Envelope is the body of every API response. Data and Error may both be set
// when an operation partially succeeded.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func errorEnvelope(status int, err error, message string) Envelope {
	env := Envelope{Status: status, Message: message}
	if err != nil {
		env.Error = err.Error()
	}
	return env
}

// JSONResponse sends a structured JSON response
func JSONResponse(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

// JSONError sends a structured error response
func JSONError(c *gin.Context, status int, err error, message string) {
	c.JSON(status, errorEnvelope(status, err, message))
}

// JSONPartial reports an error together with the part of the work that was done
func JSONPartial(c *gin.Context, status int, err error, message string, data any) {
	env := errorEnvelope(status, err, message)
	env.Data = data
	c.JSON(status, env)
}

// JSONAbort sends a structured error response and stops the middleware chain
func JSONAbort(c *gin.Context, status int, err error, message string) {
	c.AbortWithStatusJSON(status, errorEnvelope(status, err, message))
}
