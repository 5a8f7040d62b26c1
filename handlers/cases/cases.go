package cases

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/auth"
	"github.com/teg-hub/fair-chance-workforce-platform/models"
	"github.com/teg-hub/fair-chance-workforce-platform/workflow"
)

func RegisterCaseRoutes(rg *gin.RouterGroup, engine *workflow.Engine) {
	rg.POST("/cases", openCase(engine))
}

func openCase(engine *workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid bearer token"})
			return
		}

		var in models.CaseInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
			return
		}

		res, err := engine.OpenCase(id, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": res.ID, "case_status": res.Status})
	}
}
