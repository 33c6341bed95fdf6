package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/blackriis/nobicha-sub001/internal/config"
	appHTTP "github.com/blackriis/nobicha-sub001/internal/handler/http"
	"github.com/blackriis/nobicha-sub001/internal/pkg/database"
	"github.com/blackriis/nobicha-sub001/internal/pkg/jwt"
	"github.com/blackriis/nobicha-sub001/internal/repository/postgresql"
	attendanceService "github.com/blackriis/nobicha-sub001/internal/service/attendance"
	payrollService "github.com/blackriis/nobicha-sub001/internal/service/payroll"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	branchRepo := postgresql.NewBranchRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, branchRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		payrollHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
