package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/ahmadqo/school-attendance/docs" // Import generated docs
	appMiddleware "github.com/ahmadqo/school-attendance/internal/middleware"
	"github.com/ahmadqo/school-attendance/internal/response"
)

type Router struct {
	authHandler       *AuthHandler
	classHandler      *ClassHandler
	studentHandler    *StudentHandler
	attendanceHandler *AttendanceHandler
	reportHandler     *ReportHandler
	authenticator     appMiddleware.TokenAuthenticator
}

func NewRouter(
	authHandler *AuthHandler,
	classHandler *ClassHandler,
	studentHandler *StudentHandler,
	attendanceHandler *AttendanceHandler,
	reportHandler *ReportHandler,
	authenticator appMiddleware.TokenAuthenticator,
) *Router {
	return &Router{
		authHandler:       authHandler,
		classHandler:      classHandler,
		studentHandler:    studentHandler,
		attendanceHandler: attendanceHandler,
		reportHandler:     reportHandler,
		authenticator:     authenticator,
	}
}

func (ro *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", health)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health)

		// ── Auth (public) ────────────────────────────────
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", ro.authHandler.Login)
			r.Post("/refresh", ro.authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(appMiddleware.Authenticate(ro.authenticator))
				r.Get("/me", ro.authHandler.Me)
				r.Post("/logout", ro.authHandler.Logout)
			})
		})

		// ── Public: kiosk absensi & papan status ─────────
		r.Post("/attendance/checkin", ro.attendanceHandler.CheckIn)
		r.Get("/attendance/today", ro.attendanceHandler.Today)
		r.Get("/stats/today", ro.attendanceHandler.StatsToday)

		// ── Protected routes ──────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.Authenticate(ro.authenticator))

			r.Post("/admins", ro.authHandler.Register)

			// Classes
			r.Route("/classes", func(r chi.Router) {
				r.Get("/", ro.classHandler.GetAll)
				r.Post("/", ro.classHandler.Create)
				r.Put("/{id}", ro.classHandler.Update)
				r.Delete("/{id}", ro.classHandler.Delete)
			})

			// Students
			r.Route("/students", func(r chi.Router) {
				r.Get("/", ro.studentHandler.GetAll)
				r.Post("/", ro.studentHandler.Create)
				r.Get("/{id}", ro.studentHandler.GetByID)
				r.Put("/{id}", ro.studentHandler.Update)
				r.Delete("/{id}", ro.studentHandler.Delete)
				r.Post("/{id}/photo", ro.studentHandler.UploadPhoto)
				r.Get("/{id}/qrcode", ro.studentHandler.QRCode)
			})

			r.Put("/attendance/status", ro.attendanceHandler.SetStatus)

			// Report
			r.Route("/report/summary", func(r chi.Router) {
				r.Get("/", ro.reportHandler.Summary)
				r.Get("/csv", ro.reportHandler.SummaryCSV)
				r.Get("/pdf", ro.reportHandler.SummaryPDF)
			})
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	response.Success(w, "Server berjalan dengan baik", map[string]string{"status": "ok"})
}
