// api/controller/dashboard_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/middleware"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

// DashboardController serves the faculty and student self-service
// dashboards; the admin dashboard lives on the admin surface.
type DashboardController struct {
	statsService service.IStatsService
}

func NewDashboardController(statsService service.IStatsService) *DashboardController {
	return &DashboardController{statsService: statsService}
}

// RegisterRoutes registers the API routes
func (dc *DashboardController) RegisterRoutes(r *gin.Engine) {
	faculty := r.Group("/faculty", middleware.RequireAuth(), middleware.RequireRoles(model.RoleFaculty, model.RoleAdmin))
	{
		faculty.GET("/dashboard", dc.FacultyDashboard)
	}
	student := r.Group("/student", middleware.RequireAuth(), middleware.RequireRoles(model.RoleStudent))
	{
		student.GET("/dashboard", dc.StudentDashboard)
	}
}

// FacultyDashboard endpoint aggregates the caller's own uploads.
func (dc *DashboardController) FacultyDashboard(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	dashboard, err := dc.statsService.FacultyDashboard(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// StudentDashboard endpoint summarizes the caller's own recent activity.
func (dc *DashboardController) StudentDashboard(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	dashboard, err := dc.statsService.StudentDashboard(c, userID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
