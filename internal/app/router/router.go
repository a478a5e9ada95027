// Package router assembles the gin engine and its routes.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	employeehandler "employee_service/internal/feature/employee/transport/handler"
	"employee_service/internal/platform/http/handler"
	"employee_service/internal/platform/logger"
	"employee_service/internal/platform/metrics"
)

// NewRouter builds the HTTP engine.
// m may be nil, in which case no metrics are recorded or exposed.
func NewRouter(log *slog.Logger, employee *employeehandler.EmployeeHandler, health *handler.HealthHandler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logger.GinLogger(log))
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// API description
	r.GET("/", handler.Info)

	// liveness and database reachability
	r.GET("/healthz", health.Health)
	r.HEAD("/healthz", health.Health)

	employee.RegisterRoutes(r.Group("/api/employees"))

	return r
}
