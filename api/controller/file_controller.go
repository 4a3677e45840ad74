// api/controller/file_controller.go
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	echo_errors "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/errors"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/middleware"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/model"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
	helper_util "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util/helper"
)

type FileController struct {
	fileService service.IFileService
}

func NewFileController(fileService service.IFileService) *FileController {
	return &FileController{
		fileService: fileService,
	}
}

// RegisterRoutes registers the API routes
func (fc *FileController) RegisterRoutes(r *gin.Engine) {
	files := r.Group("/files", middleware.RequireAuth())
	{
		files.POST("", middleware.RequireRoles(model.RoleAdmin, model.RoleFaculty), fc.Upload)
		files.GET("", fc.ListFiles)
		files.GET("/:id", fc.View)
		files.GET("/:id/download", fc.Download)
		files.DELETE("/:id", fc.Delete)
	}
}

// callerFromContext rebuilds the authenticated subject from the values the
// auth middleware placed on the request.
func callerFromContext(c *gin.Context) (access.Caller, error) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		return access.Caller{}, err
	}
	role, err := util.GetUserRoleFromContext(c)
	if err != nil {
		return access.Caller{}, err
	}
	return access.Caller{ID: userID, Role: model.Role(role)}, nil
}

// Upload endpoint. Metadata comes as multipart form fields alongside the
// payload itself.
func (fc *FileController) Upload(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "No file uploaded", echo_errors.ErrNoFileUploaded)
		return
	}

	year, _ := strconv.Atoi(c.PostForm("year"))
	semester, _ := strconv.Atoi(c.PostForm("semester"))
	file := model.AcademicFile{
		FileName:    fileHeader.Filename,
		Department:  c.PostForm("department"),
		Year:        year,
		Semester:    semester,
		Subject:     c.PostForm("subject"),
		Unit:        c.PostForm("unit"),
		Category:    model.Category(c.PostForm("category")),
		Sensitivity: model.Sensitivity(c.PostForm("sensitivity")),
	}

	payload, err := fileHeader.Open()
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}
	defer payload.Close()

	created, err := fc.fileService.Upload(c, caller, file, payload, c.ClientIP())
	if err != nil {
		switch err {
		case echo_errors.ErrInvalidFileData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid file metadata", err)
		case echo_errors.ErrAccessDenied:
			util.RespondWithError(c, http.StatusForbidden, "Not allowed to upload", err)
		case echo_errors.ErrStorageFailure:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to store file", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to upload file", echo_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListFiles endpoint returns files the caller's role may browse.
func (fc *FileController) ListFiles(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}

	files, err := fc.fileService.ListFiles(c, caller, c.Query("department"), limit, offset)
	if err != nil {
		if err == echo_errors.ErrInvalidRole {
			util.RespondWithError(c, http.StatusForbidden, "Invalid role", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list files", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files, "limit": limit, "offset": offset})
}

// View endpoint returns the file's metadata after an access check and
// records the view in the activity ledger.
func (fc *FileController) View(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	file, err := fc.fileService.View(c, caller, c.Param("id"), c.ClientIP())
	if err != nil {
		respondAccessError(c, err, "view")
		return
	}

	c.JSON(http.StatusOK, file)
}

// Download endpoint streams the payload after an access check.
func (fc *FileController) Download(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	file, payload, err := fc.fileService.Download(c, caller, c.Param("id"), c.ClientIP())
	if err != nil {
		respondAccessError(c, err, "download")
		return
	}
	defer payload.Close()

	c.DataFromReader(http.StatusOK, file.FileSize, "application/octet-stream", payload, map[string]string{
		"Content-Disposition": `attachment; filename="` + file.FileName + `"`,
	})
}

// Delete endpoint
func (fc *FileController) Delete(c *gin.Context) {
	caller, err := callerFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := fc.fileService.Delete(c, caller, c.Param("id"), c.ClientIP()); err != nil {
		respondAccessError(c, err, "delete")
		return
	}

	c.Status(http.StatusNoContent)
}

// respondAccessError maps the access engine's sentinel errors onto HTTP
// statuses shared by the view, download and delete endpoints.
func respondAccessError(c *gin.Context, err error, operation string) {
	switch err {
	case echo_errors.ErrFileNotFound:
		util.RespondWithError(c, http.StatusNotFound, "File not found", err)
	case echo_errors.ErrAccessDenied:
		util.RespondWithError(c, http.StatusForbidden, "Access denied", err)
	case echo_errors.ErrInvalidRole:
		util.RespondWithError(c, http.StatusForbidden, "Invalid role", err)
	case echo_errors.ErrStorageFailure:
		util.RespondWithError(c, http.StatusInternalServerError, "Storage failure", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to "+operation+" file", err)
	}
}
