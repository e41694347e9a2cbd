package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adminpanel/admin-system/internal/core/ports"
)

type DepartmentHandler struct {
	departmentService ports.DepartmentService
}

func NewDepartmentHandler(departmentService ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// Create adds a department, optionally under a parent.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDepartmentRequest  true  "Department details"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	department, err := h.departmentService.Create(c.Request().Context(), req.Name, req.ParentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// List returns every department.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Success      200  {array}  domain.Department
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	departments, err := h.departmentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}
