package kpis

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/auth"
	"github.com/teg-hub/fair-chance-workforce-platform/workflow"
)

func RegisterKPIRoutes(rg *gin.RouterGroup, engine *workflow.Engine) {
	rg.GET("/kpis", getKPIs(engine))
}

func getKPIs(engine *workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid bearer token"})
			return
		}

		report, err := engine.KPIs(id)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, report)
	}
}
