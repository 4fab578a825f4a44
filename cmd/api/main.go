package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/clockin-app/clockin-backend-go/internal/config"
	"github.com/clockin-app/clockin-backend-go/internal/domain/tenant"
	appHTTP "github.com/clockin-app/clockin-backend-go/internal/handler/http"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/database"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/email"
	"github.com/clockin-app/clockin-backend-go/internal/pkg/jwt"
	"github.com/clockin-app/clockin-backend-go/internal/repository/postgresql"
	authService "github.com/clockin-app/clockin-backend-go/internal/service/auth"
	employeeService "github.com/clockin-app/clockin-backend-go/internal/service/employee"
	"github.com/clockin-app/clockin-backend-go/internal/service/master"
	notificationService "github.com/clockin-app/clockin-backend-go/internal/service/notification"
	punchService "github.com/clockin-app/clockin-backend-go/internal/service/punch"
	reportService "github.com/clockin-app/clockin-backend-go/internal/service/report"
	tenantService "github.com/clockin-app/clockin-backend-go/internal/service/tenant"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	officeRepo := postgresql.NewOfficeRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	notificationSvc := notificationService.NewNotificationService(notificationRepo, userRepo, emailSvc, cfg.App.FrontendURL)
	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	tenantSvc := tenantService.NewTenantService(tenantRepo, notificationSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, notificationSvc)
	masterSvc := master.NewMasterService(officeRepo, groupRepo)
	punchSvc := punchService.NewPunchService(db, punchRepo, employeeRepo, tenantRepo)
	reportSvc := reportService.NewReportService(tenantRepo, employeeRepo, punchRepo, officeRepo, notificationSvc, tenant.Settings{
		Timezone:                 cfg.Report.DefaultTimezone,
		RoundingMinutes:          cfg.Report.DefaultRoundingMinutes,
		WeekStartsOn:             cfg.Report.DefaultWeekStartsOn,
		OvertimeThresholdMinutes: cfg.Report.DefaultOvertimeThreshold,
		OvertimeMultiplier:       cfg.Report.DefaultOvertimeMultiplier,
	})

	authHandler := appHTTP.NewAuthHandler(jwtSvc, authSvc)
	kioskHandler := appHTTP.NewKioskHandler(punchSvc)
	tenantHandler := appHTTP.NewTenantHandler(tenantSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		jwtSvc,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		kioskHandler,
		tenantHandler,
		employeeHandler,
		masterHandler,
		punchHandler,
		notificationHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
