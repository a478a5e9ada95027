// Package handler provides the HTTP handlers for the employee feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"employee_service/internal/feature/employee/domain"
	"employee_service/internal/feature/employee/domain/entity"
	"employee_service/internal/feature/employee/transport/http/dto"
	"employee_service/internal/feature/employee/usecase"
)

// EmployeeUsecase defines the employee operations exposed over HTTP.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type EmployeeUsecase interface {
	GetByEmail(ctx context.Context, strategy domain.Strategy, email string) (*entity.Employee, error)
	GetByName(ctx context.Context, strategy domain.Strategy, name string) (*entity.Employee, error)
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Employee, error)
	Update(ctx context.Context, email string, in usecase.UpdateInput) (*entity.Employee, error)
	UpdatePhone(ctx context.Context, email, phone string) (*entity.Employee, error)
	DeleteByEmail(ctx context.Context, email string) error
	ListAll(ctx context.Context) ([]entity.Employee, error)
}

// EmployeeHandler handles HTTP requests for employee records.
type EmployeeHandler struct {
	uc EmployeeUsecase
}

// NewEmployeeHandler creates a new EmployeeHandler.
// It also registers the custom binding rules its request DTOs rely on.
func NewEmployeeHandler(uc EmployeeUsecase) *EmployeeHandler {
	registerValidators()
	return &EmployeeHandler{uc: uc}
}

// RegisterRoutes mounts every employee route on g.
func (h *EmployeeHandler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/email/:email/:strategy", h.GetByEmail)
	g.GET("/name/:name/:strategy", h.GetByName)
	g.PUT("/:email", h.Update)
	g.PATCH("/:email/phone", h.UpdatePhone)
	g.DELETE("/:email", h.Delete)
}

// GetByEmail handles GET /email/:email/:strategy.
// strategy is one of specifications, hql or native.
func (h *EmployeeHandler) GetByEmail(c *gin.Context) {
	strategy, ok := h.strategy(c)
	if !ok {
		return
	}
	e, err := h.uc.GetByEmail(c.Request.Context(), strategy, c.Param("email"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEmployeeRes(e))
}

// GetByName handles GET /name/:name/:strategy.
func (h *EmployeeHandler) GetByName(c *gin.Context) {
	strategy, ok := h.strategy(c)
	if !ok {
		return
	}
	e, err := h.uc.GetByName(c.Request.Context(), strategy, c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewEmployeeRes(e))
}

// List returns every employee. An empty table yields [].
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.uc.ListAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	out := make([]dto.EmployeeRes, 0, len(employees))
	for i := range employees {
		out = append(out, dto.NewEmployeeRes(&employees[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/employees.
// - 400 when name or email is missing, blank or malformed
// - 409 when the email is already registered
// - 201 with the created employee on success
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create employee validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	e, err := h.uc.Create(c.Request.Context(), usecase.CreateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("employee created", "id", e.ID, "email", e.Email)
	c.JSON(http.StatusCreated, dto.NewEmployeeRes(e))
}

// Update handles PUT /api/employees/:email.
// Only lastName, phone and address present in the body are changed.
func (h *EmployeeHandler) Update(c *gin.Context) {
	var req dto.UpdateEmployeeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update employee validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	e, err := h.uc.Update(c.Request.Context(), c.Param("email"), usecase.UpdateInput{
		LastName: req.LastName,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("employee updated", "id", e.ID, "email", e.Email)
	c.JSON(http.StatusOK, dto.NewEmployeeRes(e))
}

// UpdatePhone handles PATCH /api/employees/:email/phone.
func (h *EmployeeHandler) UpdatePhone(c *gin.Context) {
	var req dto.UpdatePhoneReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update phone validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorRes{Error: err.Error()})
		return
	}

	e, err := h.uc.UpdatePhone(c.Request.Context(), c.Param("email"), req.Phone)
	if err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("employee phone updated", "id", e.ID, "email", e.Email)
	c.JSON(http.StatusOK, dto.NewEmployeeRes(e))
}

// Delete handles DELETE /api/employees/:email and replies 204 with no body.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	email := c.Param("email")
	if err := h.uc.DeleteByEmail(c.Request.Context(), email); err != nil {
		h.writeError(c, err)
		return
	}
	slog.Info("employee deleted", "email", email)
	c.Status(http.StatusNoContent)
}

// strategy parses the :strategy segment, replying 404 for an unknown label.
func (h *EmployeeHandler) strategy(c *gin.Context) (domain.Strategy, bool) {
	s, err := domain.ParseStrategy(c.Param("strategy"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: err.Error()})
		return "", false
	}
	return s, true
}

// writeError maps usecase errors to status codes.
// Storage faults are logged and hidden behind a generic 500.
func (h *EmployeeHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorRes{Error: err.Error()})
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		slog.Warn("employee email conflict", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusConflict, dto.ErrorRes{Error: err.Error()})
	default:
		slog.Error("employee request failed", "error", err, "method", c.Request.Method, "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, dto.ErrorRes{Error: "internal server error"})
	}
}
