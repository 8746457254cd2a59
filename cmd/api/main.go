package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mir-ams/attendance-backend-go/internal/config"
	appHTTP "github.com/mir-ams/attendance-backend-go/internal/handler/http"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/cron"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/database"
	"github.com/mir-ams/attendance-backend-go/internal/pkg/jwt"
	"github.com/mir-ams/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/mir-ams/attendance-backend-go/internal/service/attendance"
	authService "github.com/mir-ams/attendance-backend-go/internal/service/auth"
	bonusService "github.com/mir-ams/attendance-backend-go/internal/service/bonus"
	deviceService "github.com/mir-ams/attendance-backend-go/internal/service/device"
	employeeService "github.com/mir-ams/attendance-backend-go/internal/service/employee"
	holidayService "github.com/mir-ams/attendance-backend-go/internal/service/holiday"
	ingestService "github.com/mir-ams/attendance-backend-go/internal/service/ingest"
	overtimeService "github.com/mir-ams/attendance-backend-go/internal/service/overtime"
	reconcileService "github.com/mir-ams/attendance-backend-go/internal/service/reconcile"
	reportService "github.com/mir-ams/attendance-backend-go/internal/service/report"
	shiftService "github.com/mir-ams/attendance-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	eventRepo := postgresql.NewPunchEventRepository(db)
	recordRepo := postgresql.NewAttendanceRecordRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignRepo := postgresql.NewShiftAssignmentRepository(db)
	ruleRepo := postgresql.NewOvertimeRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	periodRepo := postgresql.NewBonusPeriodRepository(db)
	submissionRepo := postgresql.NewBonusSubmissionRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, assignRepo, employeeRepo)
	ruleSvc := overtimeService.NewRuleService(ruleRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	ingestSvc := ingestService.NewIngestService(eventRepo, employeeRepo, deviceRepo, cfg.Attendance.DedupWindow)
	recordSvc := attendanceService.NewRecordService(recordRepo)
	reconcileSvc := reconcileService.NewReconcileService(
		txRunner,
		eventRepo,
		recordRepo,
		employeeRepo,
		shiftRepo,
		assignRepo,
		ruleRepo,
		holidayRepo,
		cfg.Attendance.DefaultDailyHours,
	)
	bonusSvc := bonusService.NewBonusService(txRunner, periodRepo, submissionRepo, cfg.Bonus.RequiredApprovals)
	reportSvc := reportService.NewReportService(recordRepo, employeeRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Punch:      appHTTP.NewPunchHandler(ingestSvc),
		Attendance: appHTTP.NewAttendanceHandler(recordSvc, reconcileSvc, cfg.Attendance.ReconcileWindowDays),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Overtime:   appHTTP.NewOvertimeRuleHandler(ruleSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Device:     appHTTP.NewDeviceHandler(deviceSvc),
		Bonus:      appHTTP.NewBonusHandler(bonusSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		reconcileSvc,
		deviceRepo,
		cfg.Attendance.ReconcileInterval,
		cfg.Attendance.ReconcileWindowDays,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown error: ", err)
	}
}
