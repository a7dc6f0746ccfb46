package response

import "github.com/gin-gonic/gin"

// Envelope is the body shape of every route. Status mirrors the HTTP
// status code; the other fields are optional.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Status: status, Message: message, Data: data})
}

func Fail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Envelope{Status: status, Message: message, Error: detail})
}

// AbortFail is Fail for middleware: it short-circuits the handler chain.
func AbortFail(c *gin.Context, status int, message, detail string) {
	c.AbortWithStatusJSON(status, Envelope{Status: status, Message: message, Error: detail})
}
