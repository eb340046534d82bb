package main

import (
	"fmt"
	"net/http"

	"github.com/worklens/hr-portal-go/internal/config"
	"github.com/worklens/hr-portal-go/internal/domain/leave"
	appHTTP "github.com/worklens/hr-portal-go/internal/handler/http"
	"github.com/worklens/hr-portal-go/internal/pkg/database"
	"github.com/worklens/hr-portal-go/internal/pkg/routing"
	"github.com/worklens/hr-portal-go/internal/pkg/token"
	"github.com/worklens/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/worklens/hr-portal-go/internal/service/attendance"
	leaveService "github.com/worklens/hr-portal-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	table, matcher, err := routing.Load(cfg.Portal.Mode, cfg.Portal.RoutesFile)
	if err != nil {
		fmt.Println("Error loading routes file:", err)
		return
	}

	slotRepo := postgresql.NewSlotRepository(db)
	calendarRepo := postgresql.NewCalendarRepository(db)
	editRequestRepo := postgresql.NewEditRequestRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	leaveDayRepo := postgresql.NewLeaveDayRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)

	verifier := token.NewVerifier(cfg.JWT.Secret)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		slotRepo,
		calendarRepo,
		editRequestRepo,
		branchRepo,
		leaveDayRepo,
	)
	balanceCalculator := leaveService.NewBalanceCalculator()
	leaveSvc := leaveService.NewLeaveService(db, balanceRepo, balanceCalculator, leave.DefaultCarryForwardPolicy)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	authzHandler := appHTTP.NewAuthzHandler(table, cfg.Portal.ESignEnabled)

	router := appHTTP.NewRouter(
		cfg,
		verifier,
		table,
		matcher,
		attendanceHandler,
		leaveHandler,
		authzHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
