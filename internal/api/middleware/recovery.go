package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery catches panics at the boundary and reports a generic server
// error. Panic detail is included in the response outside production only.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"path":       c.Request.URL.Path,
		}).Errorf("panic recovered: %v", recovered)

		body := gin.H{"error": "internal server error"}
		if !production {
			body["detail"] = recovered
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
