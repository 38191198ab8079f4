// Package router wires the HTTP surface of the service.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	patienthandler "patient_backend/internal/feature/patients/transport/handler"
	"patient_backend/internal/platform/accesskey"
	"patient_backend/internal/platform/http/handler"
	"patient_backend/internal/platform/requestid"
)

// NewRouter builds the gin engine: request-ID tagging, CORS, the open
// /healthz probe and the access-key-gated /patients routes.
func NewRouter(patients *patienthandler.PatientHandler, accessKeySecret string) *gin.Engine {
	r := gin.Default()

	r.Use(requestid.New())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", accesskey.HeaderName, requestid.HeaderName},
	}))

	// No authentication required; liveness probe
	r.GET("/healthz", handler.Health)

	// Every patient route sits behind the access-key gate
	gated := r.Group("/")
	gated.Use(accesskey.Required(accessKeySecret))
	{
		gated.GET("/patients", patients.List)
		gated.POST("/patients", patients.Create)
		gated.GET("/patients/:id", patients.Show)
		gated.PUT("/patients/:id", patients.Update)
		gated.DELETE("/patients/:id", patients.Delete)
	}

	return r
}
