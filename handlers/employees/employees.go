package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teg-hub/fair-chance-workforce-platform/apperr"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/auth"
	"github.com/teg-hub/fair-chance-workforce-platform/models"
	"github.com/teg-hub/fair-chance-workforce-platform/workflow"
)

// Employees are reference data imported out-of-band; these routes are the
// import surface, not part of the case workflow.
func RegisterEmployeeRoutes(rg *gin.RouterGroup, engine *workflow.Engine) {
	rg.POST("/employees", importEmployee(engine))
	rg.GET("/employees", listEmployees(engine))
}

func importEmployee(engine *workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid bearer token"})
			return
		}

		var in models.EmployeeInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid JSON body"})
			return
		}

		res, err := engine.RegisterEmployee(id, in)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": res.ID})
	}
}

func listEmployees(engine *workflow.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := auth.CurrentIdentity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Missing or invalid bearer token"})
			return
		}

		out, err := engine.ListEmployees(id)
		if err != nil {
			c.JSON(apperr.HTTPStatus(err), gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"employees": out})
	}
}
