// api/controller/controllers.go
package controller

import "github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/service"

type Controllers struct {
	Auth      *AuthController
	File      *FileController
	Grant     *GrantController
	Admin     *AdminController
	Dashboard *DashboardController
	Dept      *DepartmentController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services.User),
		File:      NewFileController(services.File),
		Grant:     NewGrantController(services.Grant),
		Admin:     NewAdminController(services.Stats, services.Alert, services.User),
		Dashboard: NewDashboardController(services.Stats),
		Dept:      NewDepartmentController(services.Dept),
	}
}
