package main

import (
	"fmt"
	"net/http"

	"github.com/openhrms/leave-ledger-go/internal/config"
	appHTTP "github.com/openhrms/leave-ledger-go/internal/handler/http"
	"github.com/openhrms/leave-ledger-go/internal/pkg/cron"
	"github.com/openhrms/leave-ledger-go/internal/pkg/database"
	"github.com/openhrms/leave-ledger-go/internal/pkg/jwt"
	"github.com/openhrms/leave-ledger-go/internal/repository/postgresql"
	balanceService "github.com/openhrms/leave-ledger-go/internal/service/balance"
	compOffService "github.com/openhrms/leave-ledger-go/internal/service/compoff"
	leaveService "github.com/openhrms/leave-ledger-go/internal/service/leave"
	permissionService "github.com/openhrms/leave-ledger-go/internal/service/permission"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	shiftAssignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	monthlyBalanceRepo := postgresql.NewMonthlyBalanceRepository(db)
	compOffRepo := postgresql.NewCompOffRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	hour, minute, err := cfg.Engine.LateCutoff()
	if err != nil {
		fmt.Println("Error parsing late cutoff:", err)
		return
	}
	latePolicy := balanceService.LatePolicy{FallbackHour: hour, FallbackMinute: minute}

	balanceSvc := balanceService.NewBalanceService(
		db,
		employeeRepo,
		punchRepo,
		shiftAssignmentRepo,
		leaveRequestRepo,
		monthlyBalanceRepo,
		compOffRepo,
		permissionRepo,
		latePolicy,
		cfg.Engine.CloseParallelism,
	)
	compOffSvc := compOffService.NewCompOffService(db, compOffRepo, monthlyBalanceRepo, employeeRepo)
	permissionSvc := permissionService.NewPermissionService(db, permissionRepo, monthlyBalanceRepo, employeeRepo)
	leaveTypeSvc := leaveService.NewLeaveTypeService(leaveTypeRepo)

	balanceHandler := appHTTP.NewBalanceHandler(balanceSvc)
	compOffHandler := appHTTP.NewCompOffHandler(compOffSvc)
	permissionHandler := appHTTP.NewPermissionHandler(permissionSvc)
	leaveTypeHandler := appHTTP.NewLeaveTypeHandler(leaveTypeSvc)

	if cfg.Engine.AutoClose {
		scheduler := cron.NewScheduler()
		cron.NewBalanceJobs(balanceSvc, db).RegisterJobs(scheduler)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		JWTService,
		balanceHandler,
		compOffHandler,
		permissionHandler,
		leaveTypeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
