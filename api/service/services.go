// api/service/services.go
package service

import (
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/access"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/dao"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/ledger"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/storage"
	"github.com/SUBIKSHA-11/academic-file-asscess-tracker-1/api/util"
)

var (
	_ FileStore      = (*dao.FileDAO)(nil)
	_ FileStatsStore = (*dao.FileDAO)(nil)
	_ UserStatsStore = (*dao.UserDAO)(nil)
)

type Services struct {
	User  IUserService
	File  IFileService
	Grant IGrantService
	Alert IAlertService
	Stats IStatsService
	Dept  IDepartmentService
}

func InitializeServices(
	driver neo4j.Driver,
	ledgerSvc ledger.Service,
	blobs storage.BlobStore,
	detectorWindow time.Duration,
	detectorThreshold int,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(driver)
	fileDAO := dao.NewFileDAO(driver)
	grantDAO := dao.NewGrantDAO(driver)
	alertDAO := dao.NewAlertDAO(driver)
	departmentDAO := dao.NewDepartmentDAO(driver)

	engine := access.NewEngine(fileDAO, grantDAO)
	detector := access.NewDetector(ledgerSvc, alertDAO, detectorWindow, access.FixedThreshold(detectorThreshold))

	alertService := NewAlertService(alertDAO)

	services := &Services{
		User:  NewUserService(userDAO, departmentDAO, validationUtil, cacheService, notificationSvc, eventBus),
		File:  NewFileService(fileDAO, engine, detector, ledgerSvc, blobs, validationUtil, cacheService, notificationSvc, eventBus),
		Grant: NewGrantService(grantDAO, userDAO, fileDAO, validationUtil, notificationSvc, eventBus),
		Alert: alertService,
		Stats: NewStatsService(userDAO, fileDAO, alertService, ledgerSvc),
		Dept:  NewDepartmentService(departmentDAO, cacheService),
	}

	return services, nil
}
