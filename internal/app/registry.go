package app

import (
	"database/sql"

	"go-school/internal/assignment"
	"go-school/internal/attendance"
	"go-school/internal/auth"
	"go-school/internal/bootstrap"
	"go-school/internal/classroom"
	"go-school/internal/config"
	"go-school/internal/dashboard"
	"go-school/internal/exam"
	"go-school/internal/fee"
	"go-school/internal/leave"
	"go-school/internal/messaging/kafka"
	"go-school/internal/rbac"
	"go-school/internal/rbac/infra"
	"go-school/internal/salary"
	"go-school/internal/school"
	"go-school/internal/shared/counter"
	"go-school/internal/shared/storage"
	"go-school/internal/staff"
	"go-school/internal/student"
	"go-school/internal/subject"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	store storage.ObjectStore,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	schoolRepo := school.NewRepository(gormDB)
	staffRepo := staff.NewRepository(gormDB)
	studentRepo := student.NewRepository(gormDB)
	classroomRepo := classroom.NewRepository(gormDB)
	subjectRepo := subject.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	examRepo := exam.NewRepository(gormDB)
	feeRepo := fee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer, logger)

	// --- Services ---
	authService := auth.NewService(db, authRepo, rbacService, cfg.JWTSecret, logger)
	schoolService := school.NewService(db, schoolRepo, authRepo, rbacService, logger)
	staffService := staff.NewService(db, staffRepo, counterRepo, authRepo, rbacService, outboxRepo, rdb, logger)
	studentService := student.NewService(db, studentRepo, counterRepo, logger)
	classroomService := classroom.NewService(db, classroomRepo, rdb, logger)
	subjectService := subject.NewService(db, subjectRepo, rdb, logger)
	assignmentService := assignment.NewService(db, assignmentRepo, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, cfg.Location(), logger)
	examService := exam.NewService(db, examRepo, logger)
	feeService := fee.NewService(db, feeRepo, logger)
	salaryService := salary.NewService(
		db,
		salaryRepo,
		attendanceService,
		outboxRepo,
		store,
		auditLogger,
		cfg.WorkingWeekdays,
		cfg.Location(),
		logger,
	)
	leaveService := leave.NewService(db, leaveRepo, attendanceRepo, cfg.WorkingWeekdays, logger)
	dashboardService := dashboard.NewService(dashboardRepo, rdb, cfg.Location(), logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	schoolHandler := school.NewHandler(schoolService, logger)
	staffHandler := staff.NewHandler(staffService, logger)
	studentHandler := student.NewHandler(studentService, logger)
	classroomHandler := classroom.NewHandler(classroomService, logger)
	subjectHandler := subject.NewHandler(subjectService, logger)
	assignmentHandler := assignment.NewHandler(assignmentService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	examHandler := exam.NewHandler(examService, logger)
	feeHandler := fee.NewHandler(feeService, logger)
	salaryHandler := salary.NewHandler(salaryService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		school.RegisterRoutes(api, schoolHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
		staff.RegisterRoutes(api, staffHandler, rbacService, logger)
		student.RegisterRoutes(api, studentHandler, rbacService, logger)
		classroom.RegisterRoutes(api, classroomHandler, rbacService)
		subject.RegisterRoutes(api, subjectHandler, rbacService)
		assignment.RegisterRoutes(api, assignmentHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, logger, rdb)
		exam.RegisterRoutes(api, examHandler, rbacService, logger, rdb)
		fee.RegisterRoutes(api, feeHandler, rbacService, logger, rdb)
		salary.RegisterRoutes(api, salaryHandler, rbacService, logger, rdb)
		leave.RegisterRoutes(api, leaveHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
	}

	return nil
}
