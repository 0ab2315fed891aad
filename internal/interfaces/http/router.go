package http

import (
	"context"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *inventory.ProductUseCase
	WithdrawUC *inventory.WithdrawUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
	AppEnv     string
	// HealthPing comprueba el backend de almacenamiento; nil = siempre sano.
	HealthPing func(ctx context.Context) error
	// StaticDir carpeta con login.html e index.html; vacío desactiva las páginas.
	StaticDir string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC, deps.AppEnv)
	productHandler := NewProductHandler(deps.ProductUC, deps.WithdrawUC)
	adminHandler := NewAdminHandler(deps.ProductUC)

	// Auth (público)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)

	// Health (público): ping al almacenamiento
	app.Get("/api/health", func(c *fiber.Ctx) error {
		if deps.HealthPing != nil {
			if err := deps.HealthPing(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": "db_error"})
			}
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	// Métricas Prometheus (público)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Rutas protegidas (Bearer header o cookie de sesión)
	protected := AuthMiddleware(deps.JWTSecret)

	productos := app.Group("/productos", protected)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Post("/:referencia/salida", productHandler.Withdraw)

	app.Post("/admin/vaciar-bd", protected, adminHandler.Clear)

	if deps.StaticDir != "" {
		registerStaticPages(app, deps.StaticDir, deps.JWTSecret)
	}
}

// registerStaticPages sirve las páginas web con un gate de sesión por cookie:
// sin login se muestra la pantalla de login.
func registerStaticPages(app *fiber.App, dir, jwtSecret string) {
	loginPage := filepath.Join(dir, "login.html")
	indexPage := filepath.Join(dir, "index.html")

	app.Get("/", func(c *fiber.Ctx) error {
		if isAuthed(c, jwtSecret) {
			return c.SendFile(indexPage)
		}
		return c.SendFile(loginPage)
	})
	app.Get("/index.html", func(c *fiber.Ctx) error {
		if !isAuthed(c, jwtSecret) {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.SendFile(indexPage)
	})
	app.Get("/login", func(c *fiber.Ctx) error {
		return c.SendFile(loginPage)
	})
	app.Get("/login.html", func(c *fiber.Ctx) error {
		return c.SendFile(loginPage)
	})
}

// isAuthed valida la cookie de sesión, solo para decidir qué página servir.
func isAuthed(c *fiber.Ctx, jwtSecret string) bool {
	token := c.Cookies(CookieName)
	if token == "" {
		return false
	}
	_, err := jwt.Parse(jwtSecret, token)
	return err == nil
}
