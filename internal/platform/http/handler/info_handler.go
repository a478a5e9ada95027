package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	apiMessage = "Employee Management REST API"
	apiVersion = "1.0.0"
	apiBaseURL = "/api/employees"
)

// Info handles GET /. It describes the API and lists its endpoints.
func Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": apiMessage,
		"version": apiVersion,
		"status":  "Running",
		"baseUrl": apiBaseURL,
		"endpoints": gin.H{
			"getAllEmployees":     "GET /api/employees",
			"createEmployee":      "POST /api/employees",
			"getEmployeeByEmail":  "GET /api/employees/email/{email}/{strategy}",
			"getEmployeeByName":   "GET /api/employees/name/{name}/{strategy}",
			"updateEmployee":      "PUT /api/employees/{email}",
			"updateEmployeePhone": "PATCH /api/employees/{email}/phone",
			"deleteEmployee":      "DELETE /api/employees/{email}",
			"lookupStrategies":    "specifications | hql | native",
			"health":              "GET /healthz",
			"metrics":             "GET /metrics",
		},
	})
}
