// main.go
package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hamyaran/hamyar-api/config"
	"github.com/hamyaran/hamyar-api/endpoint"
	"github.com/hamyaran/hamyar-api/middleware"
	"github.com/hamyaran/hamyar-api/model"
	"github.com/hamyaran/hamyar-api/util"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectMySQL()
	if err != nil {
		util.Log().WithError(err).Fatal("error connecting to MySQL")
	}
	if err := db.AutoMigrate(model.Migrations()...); err != nil {
		util.Log().WithError(err).Fatal("error running migrations")
	}
	util.SetAuditLoggerDB(db)

	// Redis backs the sign-in rate limiter. The limiter fails open, so a
	// missing Redis only loses throttling, never availability.
	if _, err := config.ConnectRedis(); err != nil {
		util.Log().WithError(err).Warn("redis unavailable, rate limiting disabled")
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Internal server error",
			Err: fmt.Errorf("panic recovered: %v", recovered),
		})
	}))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))
	router.Use(middleware.EndpointCallLogger())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	api := router.Group("/api")

	// Only the token endpoints are public; everything else needs a bearer
	// access token.
	api.POST("/sign-in", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.SignIn)
	api.POST("/token/refresh", middleware.RateLimiter(middleware.RateLimitConfig{}), endpoint.RefreshToken)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth())
	authed.GET("/hello", endpoint.Hello)

	registerResource(authed, "/patients", endpoint.Patients)
	registerResource(authed, "/benefactors", endpoint.Benefactors)
	registerResource(authed, "/doctors", endpoint.Doctors)
	registerResource(authed, "/health-assists", endpoint.HealthAssists)
	registerResource(authed, "/private-companies", endpoint.PrivateCompanies)
	registerResource(authed, "/service-centers", endpoint.ServiceCenters)
	registerResource(authed, "/medical-centers", endpoint.MedicalCenters)
	registerResource(authed, "/charity-centers", endpoint.CharityCenters)
	registerResource(authed, "/government-organizations", endpoint.GovernmentOrganizations)
	registerResource(authed, "/charity-associations", endpoint.Associations)
	registerResource(authed, "/service-requests", endpoint.ServiceRequests)
	registerResource(authed, "/consultation-requests", endpoint.ConsultationRequests)

	authed.GET("/patient-by-national-code/:national_code", endpoint.GetPatientByNationalCode)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		util.Log().WithError(err).Fatal("error starting server")
	}
}

type resourceRoutes interface {
	List(c *gin.Context)
	Retrieve(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func registerResource(group *gin.RouterGroup, path string, r resourceRoutes) {
	group.GET(path, r.List)
	group.POST(path, r.Create)
	group.GET(path+"/:id", r.Retrieve)
	group.PATCH(path+"/:id", r.Update)
	group.DELETE(path+"/:id", r.Delete)
}
