package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pos-gateway/internal/infra"
)

// respondUpstream maps a store API failure to the terminal's response. The
// backend's own validation text is surfaced verbatim so the cashier sees the
// same wording the store system produced.
func respondUpstream(c *gin.Context, err error) {
	switch {
	case infra.IsKind(err, infra.KindUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Store authentication rejected",
		})
	case infra.IsKind(err, infra.KindNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": infra.UserMessage(err, "Not found"),
		})
	case infra.IsKind(err, infra.KindRejected):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": infra.UserMessage(err, "Request rejected by store"),
		})
	case infra.IsKind(err, infra.KindUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Store service unavailable",
		})
	case infra.IsKind(err, infra.KindBadResponse):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Store service returned an unexpected response",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
