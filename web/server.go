package web

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog/log"

	"github.com/hrdash/reports"
	"github.com/hrdash/web/handlers"
	"github.com/hrdash/web/middleware"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates the Fiber server around the reporting repository
func NewServer(repo *reports.Repository) *Server {
	engine := html.New("./web/templates", ".html")

	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("2006-01-02")
	})
	engine.AddFunc("formatMoney", func(amount float64) string {
		return fmt.Sprintf("$%.2f", amount)
	})
	// Nullable joined fields and undefined aggregates render as a dash
	engine.AddFunc("optStr", func(s *string) string {
		if s == nil {
			return "—"
		}
		return *s
	})
	engine.AddFunc("optMoney", func(amount *float64) string {
		if amount == nil {
			return "—"
		}
		return fmt.Sprintf("$%.2f", *amount)
	})
	engine.AddFunc("formatDuration", func(d time.Duration) string {
		if d < time.Millisecond {
			return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000)
		}
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000)
	})
	engine.AddFunc("json", func(v interface{}) string {
		b, err := json.Marshal(v)
		if err != nil {
			return "{}"
		}
		return string(b)
	})

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")

			if c.Get("Accept") == "application/json" {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			return c.Status(code).Render("pages/error", fiber.Map{
				"Title":  "Error",
				"Active": "",
				"Error":  err.Error(),
				"Code":   code,
			}, "layouts/base")
		},
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))
	app.Use(middleware.SQLDebug())

	// Static files
	app.Static("/static", "./web/static")

	setupRoutes(app, handlers.NewHandler(repo))

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	log.Info().Str("port", port).Msg("server starting")
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, h *handlers.Handler) {
	// Dashboard pages
	app.Get("/", h.Overview)
	app.Get("/employees", h.EmployeeList)
	app.Get("/employees/:id", h.EmployeeView)
	app.Get("/salaries", h.SalaryList)
	app.Get("/salaries/export", h.SalaryExport)
	app.Get("/departments", h.DepartmentList)
	app.Get("/analytics", h.Analytics)

	// JSON API
	api := app.Group("/api")
	api.Get("/employees", h.APIEmployees)
	api.Get("/employees/:id", h.APIEmployee)
	api.Get("/salaries", h.APISalaries)
	api.Get("/departments", h.APIDepartments)
	api.Get("/departments/stats", h.APIDepartmentStats)
	api.Get("/top-earners", h.APITopEarners)

	// Debug endpoints for SQL logs
	api.Get("/debug/sql", h.SQLLogs)
	api.Delete("/debug/sql", h.ClearSQLLogs)
}
