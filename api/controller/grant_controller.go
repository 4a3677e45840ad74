// api/controller/grant_controller.go
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

type GrantController struct {
	grantService service.IGrantService
}

func NewGrantController(grantService service.IGrantService) *GrantController {
	return &GrantController{
		grantService: grantService,
	}
}

// RegisterRoutes registers the API routes. Grants are an admin instrument:
// faculty cannot hand out access to files they may not read themselves.
func (gc *GrantController) RegisterRoutes(r *gin.Engine) {
	grants := r.Group("/grants", middleware.RequireAuth(), middleware.RequireRoles(model.RoleAdmin))
	{
		grants.POST("", gc.GrantAccess)
		grants.GET("/users/:id", gc.ListGrantsForUser)
	}
}

type grantRequest struct {
	UserID          string `json:"user_id" binding:"required"`
	FileID          string `json:"file_id" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

// GrantAccess endpoint creates a temporary access grant for a user/file
// pair. There is no revocation endpoint; grants lapse on their own.
func (gc *GrantController) GrantAccess(c *gin.Context) {
	var req grantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid grant data", echo_errors.ErrInvalidGrantData)
		return
	}

	grantedBy, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	grant, err := gc.grantService.GrantAccess(c, grantedBy, req.UserID, req.FileID, req.DurationMinutes)
	if err != nil {
		switch err {
		case echo_errors.ErrInvalidGrantDuration:
			util.RespondWithError(c, http.StatusBadRequest, "Grant duration must be positive", err)
		case echo_errors.ErrUserNotFound:
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		case echo_errors.ErrFileNotFound:
			util.RespondWithError(c, http.StatusNotFound, "File not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create grant", err)
		}
		return
	}

	c.JSON(http.StatusCreated, grant)
}

// ListGrantsForUser endpoint
func (gc *GrantController) ListGrantsForUser(c *gin.Context) {
	grants, err := gc.grantService.ListGrantsForUser(c, c.Param("id"))
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list grants", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"grants": grants})
}
