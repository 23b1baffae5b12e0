package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/talenthub-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/talenthub-hr/hrms-backend-go/internal/handler/http"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/cron"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/database"
	"github.com/talenthub-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/talenthub-hr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/talenthub-hr/hrms-backend-go/internal/service/attendance"
	authService "github.com/talenthub-hr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/talenthub-hr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/talenthub-hr/hrms-backend-go/internal/service/leave"
	payrollService "github.com/talenthub-hr/hrms-backend-go/internal/service/payroll"
	reportService "github.com/talenthub-hr/hrms-backend-go/internal/service/report"
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
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, attendanceRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRequestRepo, payrollRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppName:        "hrms-backend",
			Env:            cfg.App.Env,
			AllowedOrigins: []string{cfg.App.FrontendURL},
		},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		payrollHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)

	errCh := make(chan error, 1)
	go func() {
		errCh <- http.ListenAndServe(port, router)
	}()

	select {
	case err := <-errCh:
		fmt.Println("Server error:", err)
	case <-stop:
		fmt.Println("Shutting down...")
	}
}
