// Package docs serves the API reference. The route sits outside the auth
// gate so clients can read the contract without a token.
package docs

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var spec []byte

// GET /api-doc
func Spec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", spec)
}
