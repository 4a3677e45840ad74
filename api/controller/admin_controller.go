// api/controller/admin_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/middleware"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
	helper_util "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util/helper"
)

// AdminController bundles the admin-only surfaces: the portal dashboard,
// alert review, the activity log and user management.
type AdminController struct {
	statsService service.IStatsService
	alertService service.IAlertService
	userService  service.IUserService
}

func NewAdminController(statsService service.IStatsService, alertService service.IAlertService, userService service.IUserService) *AdminController {
	return &AdminController{
		statsService: statsService,
		alertService: alertService,
		userService:  userService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AdminController) RegisterRoutes(r *gin.Engine) {
	admin := r.Group("/admin", middleware.RequireAuth(), middleware.RequireRoles(model.RoleAdmin))
	{
		admin.GET("/dashboard", ac.Dashboard)
		admin.GET("/alerts", ac.ListAlerts)
		admin.GET("/alerts/summary", ac.AlertSummary)
		admin.PUT("/alerts/:id/review", ac.ReviewAlert)
		admin.DELETE("/alerts/:id", ac.DeleteAlert)
		admin.GET("/activity", ac.ActivityLog)
		admin.GET("/users", ac.ListUsers)
		admin.PUT("/users/:id/role", ac.UpdateUserRole)
		admin.DELETE("/users/:id", ac.DeleteUser)
	}
}

// Dashboard endpoint
func (ac *AdminController) Dashboard(c *gin.Context) {
	dashboard, err := ac.statsService.AdminDashboard(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to build dashboard", err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// ListAlerts endpoint
func (ac *AdminController) ListAlerts(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}

	alerts, err := ac.alertService.ListAlerts(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list alerts", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "limit": limit, "offset": offset})
}

// AlertSummary endpoint
func (ac *AdminController) AlertSummary(c *gin.Context) {
	summary, err := ac.alertService.Summary(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to summarize alerts", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ReviewAlert endpoint
func (ac *AdminController) ReviewAlert(c *gin.Context) {
	alert, err := ac.alertService.MarkReviewed(c, c.Param("id"))
	if err != nil {
		if err == echo_errors.ErrAlertNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Alert not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to review alert", err)
		}
		return
	}

	c.JSON(http.StatusOK, alert)
}

// DeleteAlert endpoint
func (ac *AdminController) DeleteAlert(c *gin.Context) {
	if err := ac.alertService.DeleteAlert(c, c.Param("id")); err != nil {
		if err == echo_errors.ErrAlertNotFound {
			util.RespondWithError(c, http.StatusNotFound, "Alert not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete alert", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ActivityLog endpoint queries the append-only ledger with optional action
// and time-range filters.
func (ac *AdminController) ActivityLog(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}

	filter := ledger.QueryFilter{Limit: limit, Offset: offset}

	if raw := c.Query("action"); raw != "" {
		action, err := model.ParseAction(raw)
		if err != nil {
			util.RespondWithError(c, http.StatusBadRequest, "Invalid action filter", echo_errors.ErrInvalidAction)
			return
		}
		filter.Action = &action
	}
	from, err := helper_util.ParseNullableTime(c.Query("from"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid from timestamp", err)
		return
	}
	filter.From = from
	to, err := helper_util.ParseNullableTime(c.Query("to"))
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid to timestamp", err)
		return
	}
	filter.To = to

	entries, total, err := ac.statsService.ActivityLog(c, filter)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to query activity log", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries, "total": total, "limit": limit, "offset": offset})
}

// ListUsers endpoint
func (ac *AdminController) ListUsers(c *gin.Context) {
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}

	users, err := ac.userService.ListUsers(c, limit, offset)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "limit": limit, "offset": offset})
}

type roleUpdateRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole endpoint
func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	var req roleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role payload", echo_errors.ErrInvalidUserData)
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role", echo_errors.ErrInvalidRole)
		return
	}

	user, err := ac.userService.UpdateUserRole(c, c.Param("id"), role)
	if err != nil {
		if err == echo_errors.ErrUserNotFound {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to update role", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUser endpoint
func (ac *AdminController) DeleteUser(c *gin.Context) {
	if err := ac.userService.DeleteUser(c, c.Param("id")); err != nil {
		if err == echo_errors.ErrUserNotFound {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
