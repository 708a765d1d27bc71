package main

import (
	"fmt"
	"net/http"

	"github.com/bizpanel/panel-backend-go/internal/config"
	appHTTP "github.com/bizpanel/panel-backend-go/internal/handler/http"
	"github.com/bizpanel/panel-backend-go/internal/pkg/cron"
	"github.com/bizpanel/panel-backend-go/internal/pkg/database"
	"github.com/bizpanel/panel-backend-go/internal/pkg/jwt"
	"github.com/bizpanel/panel-backend-go/internal/pkg/sse"
	"github.com/bizpanel/panel-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bizpanel/panel-backend-go/internal/service/attendance"
	authService "github.com/bizpanel/panel-backend-go/internal/service/auth"
	notificationService "github.com/bizpanel/panel-backend-go/internal/service/notification"
	payrollService "github.com/bizpanel/panel-backend-go/internal/service/payroll"
	scheduleService "github.com/bizpanel/panel-backend-go/internal/service/schedule"
	userService "github.com/bizpanel/panel-backend-go/internal/service/user"
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
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	hub := sse.NewHub()

	notificationSvc := notificationService.NewService(notificationRepo, hub)
	defer notificationSvc.Stop()

	authSvc := authService.NewService(userRepo, jwtService)
	userSvc := userService.NewService(userRepo)
	attendanceSvc := attendanceService.NewService(attendanceRepo, scheduleRepo, notificationSvc)
	scheduleSvc := scheduleService.NewService(scheduleRepo, notificationSvc)
	payrollSvc := payrollService.NewService(payrollRepo, userRepo, attendanceRepo, notificationSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc, jwtService, hub)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, scheduleRepo, notificationSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		scheduleHandler,
		payrollHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
