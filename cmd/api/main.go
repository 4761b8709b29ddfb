package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/qrworks/qrworks-backend-go/internal/config"
	appHTTP "github.com/qrworks/qrworks-backend-go/internal/handler/http"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/cron"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/database"
	"github.com/qrworks/qrworks-backend-go/internal/pkg/jwt"
	"github.com/qrworks/qrworks-backend-go/internal/repository/postgresql"
	attendanceService "github.com/qrworks/qrworks-backend-go/internal/service/attendance"
	serviceAuth "github.com/qrworks/qrworks-backend-go/internal/service/auth"
	holidayService "github.com/qrworks/qrworks-backend-go/internal/service/holiday"
	leaveService "github.com/qrworks/qrworks-backend-go/internal/service/leave"
	reportService "github.com/qrworks/qrworks-backend-go/internal/service/report"
	scheduleService "github.com/qrworks/qrworks-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(context.Background(), cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	eventRepo := postgresql.NewAttendanceEventRepository(db)
	scheduleRepo := postgresql.NewWorkScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayWorkRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := serviceAuth.NewAuthService(db, userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(db, eventRepo, scheduleRepo, holidayRepo, cfg.App.Location)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo, cfg.App.Location)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, cfg.App.Location)
	reportSvc := reportService.NewReportService(eventRepo, scheduleRepo, holidayRepo, userRepo, cfg.App.Location)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(eventRepo, scheduleRepo, cfg.App.Location)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:            cfg.App.Env,
			FrontendOrigin: cfg.App.FrontendURL,
		},
		jwtService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		holidayHandler,
		leaveHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
