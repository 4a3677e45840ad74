// api/controller/auth_controller.go
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

type AuthController struct {
	userService service.IUserService
}

func NewAuthController(userService service.IUserService) *AuthController {
	return &AuthController{userService: userService}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
	}
	me := r.Group("/auth", middleware.RequireAuth())
	{
		me.GET("/me", ac.Me)
	}
}

type registerRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role" binding:"required"`
	DepartmentID string `json:"department_id"`
	FacultyID    string `json:"faculty_id"`
	StudentID    string `json:"student_id"`
	Year         int    `json:"year"`
}

// Register endpoint. Unauthenticated students may self-register; creating
// faculty or admin accounts requires an admin token, except for the very
// first admin on an empty portal.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", echo_errors.ErrInvalidUserData)
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid role", echo_errors.ErrInvalidRole)
		return
	}

	// The Authorization header is optional here; a valid admin token lets
	// the caller create privileged accounts.
	var caller *model.User
	if tokenString := c.GetHeader("Authorization"); tokenString != "" {
		if claims, err := middleware.ParseToken(tokenString); err == nil {
			if fetched, err := ac.userService.GetUser(c, claims.Subject); err == nil {
				caller = fetched
			}
		}
	}

	user := model.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         role,
		DepartmentID: req.DepartmentID,
		FacultyID:    req.FacultyID,
		StudentID:    req.StudentID,
		Year:         req.Year,
	}

	created, err := ac.userService.Register(c, caller, user, req.Password)
	if err != nil {
		switch err {
		case echo_errors.ErrUserConflict:
			util.RespondWithError(c, http.StatusConflict, "User already exists", err)
		case echo_errors.ErrInvalidUserData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", err)
		case echo_errors.ErrAccessDenied:
			util.RespondWithError(c, http.StatusForbidden, "Not allowed to create this account", err)
		case echo_errors.ErrDepartmentNotFound:
			util.RespondWithError(c, http.StatusBadRequest, "Unknown department", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to register user", echo_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid credentials payload", echo_errors.ErrInvalidCredentials)
		return
	}

	token, user, err := ac.userService.Login(c, req.Email, req.Password)
	if err != nil {
		if err == echo_errors.ErrInvalidCredentials {
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid email or password", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Login failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me endpoint returns the authenticated caller's own record.
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	user, err := ac.userService.GetUser(c, userID)
	if err != nil {
		if err == echo_errors.ErrUserNotFound {
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to fetch user", err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
