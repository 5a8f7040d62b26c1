package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/teg-hub/fair-chance-workforce-platform/handlers/auth"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/cases"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/employees"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/kpis"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/progressnotes"
	"github.com/teg-hub/fair-chance-workforce-platform/handlers/referrals"
	"github.com/teg-hub/fair-chance-workforce-platform/migrations"
	"github.com/teg-hub/fair-chance-workforce-platform/store"
	"github.com/teg-hub/fair-chance-workforce-platform/utils"
	"github.com/teg-hub/fair-chance-workforce-platform/workflow"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func setupRouter(engine *workflow.Engine) *gin.Engine {
	r := gin.Default()

	allowOrigin := os.Getenv("CORS_ALLOW_ORIGIN")
	if allowOrigin == "" {
		allowOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{allowOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.AuthMiddleware(), auth.Logout)

	protected := r.Group("/api/v1")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/me", auth.Me)
		employees.RegisterEmployeeRoutes(protected, engine)
		referrals.RegisterReferralRoutes(protected, engine)
		cases.RegisterCaseRoutes(protected, engine)
		progressnotes.RegisterProgressNoteRoutes(protected, engine)
		kpis.RegisterKPIRoutes(protected, engine)
	}

	return r
}

func main() {
	utils.ConnectDatabase()

	if err := migrations.Migrate(utils.DB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	engine := workflow.New(store.NewGormStore(utils.DB))
	r := setupRouter(engine)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
