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

	"github.com/ahmadqo/school-attendance/internal/config"
	"github.com/ahmadqo/school-attendance/internal/database"
	"github.com/ahmadqo/school-attendance/internal/handler"
	"github.com/ahmadqo/school-attendance/internal/repository"
	"github.com/ahmadqo/school-attendance/internal/service"
	"github.com/ahmadqo/school-attendance/internal/utils"
	"github.com/ahmadqo/school-attendance/migrations"
)

// @title           School Attendance API
// @version         1.0
// @description     Backend absensi siswa: check-in harian, status kehadiran, dan rekap periode.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ── Database ─────────────────────────────────────
	db := database.Connect(&cfg.Database)
	defer db.Close()

	log.Println("Running migrations")
	if err := database.RunMigrations(ctx, db, migrations.FS); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	seeder := database.NewSeeder(db)
	if err := seeder.SeedAdmin(ctx, cfg.Admin); err != nil {
		log.Printf("Warning: seed failed: %v", err)
	}

	// ── Redis (sesi admin) ───────────────────────────
	rdb, err := database.ConnectRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("Redis connected successfully")

	// ── Storage (MinIO) ──────────────────────────────
	storage, err := utils.NewStorageService(ctx, &cfg.MinIO)
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}
	log.Println("MinIO connected successfully")

	// ── Repositories ─────────────────────────────────
	adminRepo := repository.NewAdminRepository(db)
	sessionRepo := repository.NewSessionRepository(rdb)
	classRepo := repository.NewClassRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	// ── Services ─────────────────────────────────────
	loc := cfg.App.Location()
	authService := service.NewAuthService(adminRepo, sessionRepo, cfg.JWT)
	classService := service.NewClassService(classRepo, studentRepo)
	studentService := service.NewStudentService(studentRepo, classRepo, attendanceRepo, storage)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, classRepo, loc)
	reportService := service.NewReportService(attendanceRepo, studentRepo, classRepo, cfg.App.SchoolName)

	// ── Router ───────────────────────────────────────
	router := handler.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewClassHandler(classService),
		handler.NewStudentHandler(studentService),
		handler.NewAttendanceHandler(attendanceService),
		handler.NewReportHandler(reportService),
		authService,
	)

	// ── HTTP Server ──────────────────────────────────
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.App.Port),
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server berjalan di port %s (mode: %s, zona waktu: %s)", cfg.App.Port, cfg.App.Env, loc)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server stopped gracefully")
}
