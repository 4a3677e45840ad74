// api/controller/department_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/middleware"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

type DepartmentController struct {
	departmentService service.IDepartmentService
}

func NewDepartmentController(departmentService service.IDepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// RegisterRoutes registers the API routes
func (dc *DepartmentController) RegisterRoutes(r *gin.Engine) {
	departments := r.Group("/departments", middleware.RequireAuth())
	{
		departments.POST("", middleware.RequireRoles(model.RoleAdmin), dc.CreateDepartment)
		departments.GET("", dc.ListDepartments)
		departments.GET("/:name", dc.GetDepartment)
	}
}

type departmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateDepartment endpoint
func (dc *DepartmentController) CreateDepartment(c *gin.Context) {
	var req departmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid department data", err)
		return
	}

	department, err := dc.departmentService.CreateDepartment(c, req.Name)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to create department", err)
		return
	}

	c.JSON(http.StatusCreated, department)
}

// GetDepartment endpoint
func (dc *DepartmentController) GetDepartment(c *gin.Context) {
	department, err := dc.departmentService.GetDepartmentByName(c, c.Param("name"))
	if err != nil {
		if err == echo_errors.ErrDepartmentNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Department not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch department", err)
		}
		return
	}

	c.JSON(http.StatusOK, department)
}

// ListDepartments endpoint
func (dc *DepartmentController) ListDepartments(c *gin.Context) {
	departments, err := dc.departmentService.ListDepartments(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list departments", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"departments": departments})
}
