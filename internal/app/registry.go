package app

import (
	"context"
	"database/sql"

	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/advance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/attendance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/bonus"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/config"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/custody"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/deduction"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/employee"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/equipment"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/expense"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/ledger"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/maintenance"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/messaging/kafka"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/middleware"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/payroll"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/project"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/rbac/infra"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/shared/counter"
	"github.com/mo7amed7amedenho/constraction-accounting-sub001/internal/supplier"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	advanceRepo := advance.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	bonusRepo := bonus.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	custodyRepo := custody.NewRepository(gormDB)
	deductionRepo := deduction.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	equipmentRepo := equipment.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	maintenanceRepo := maintenance.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	supplierRepo := supplier.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)
	if err := rbacService.LoadPolicy(ctx); err != nil {
		return err
	}

	// --- Ledger ---
	poster := ledger.NewPosterWithOutbox(gormDB, outboxRepo, logger)

	// --- Services ---
	advanceService := advance.NewService(db, advanceRepo, poster, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, poster, logger)
	bonusService := bonus.NewService(db, bonusRepo, poster, logger)
	custodyService := custody.NewService(db, custodyRepo, poster, logger)
	deductionService := deduction.NewService(db, deductionRepo, poster, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	equipmentService := equipment.NewService(db, equipmentRepo, logger)
	expenseService := expense.NewService(db, expenseRepo, poster, logger)
	maintenanceService := maintenance.NewService(db, maintenanceRepo, equipmentRepo, poster, logger)
	payrollService := payroll.NewService(db, payrollRepo, poster, logger)
	projectService := project.NewService(db, projectRepo, logger)
	supplierService := supplier.NewService(db, supplierRepo, counterRepo, poster, logger)

	// --- Handlers ---
	advanceHandler := advance.NewHandler(advanceService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	bonusHandler := bonus.NewHandler(bonusService)
	custodyHandler := custody.NewHandler(custodyService)
	deductionHandler := deduction.NewHandler(deductionService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	equipmentHandler := equipment.NewHandler(equipmentService)
	expenseHandler := expense.NewHandler(expenseService)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)
	payrollHandler := payroll.NewHandler(payrollService)
	projectHandler := project.NewHandler(projectService)
	rbacHandler := rbac.NewHandler(rbacService)
	supplierHandler := supplier.NewHandler(supplierService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ContextLogger(logger),
	)
	{
		advance.RegisterRoutes(api, advanceHandler, rbacService, rdb)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, rdb)
		bonus.RegisterRoutes(api, bonusHandler, rbacService, rdb)
		custody.RegisterRoutes(api, custodyHandler, rbacService, rdb)
		deduction.RegisterRoutes(api, deductionHandler, rbacService, rdb)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb)
		equipment.RegisterRoutes(api, equipmentHandler, rbacService)
		expense.RegisterRoutes(api, expenseHandler, rbacService, rdb)
		maintenance.RegisterRoutes(api, maintenanceHandler, rbacService, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		project.RegisterRoutes(api, projectHandler, rbacService)
		supplier.RegisterRoutes(api, supplierHandler, rbacService, rdb)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
