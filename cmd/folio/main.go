package main

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"folio/internal/config"
	"folio/internal/http/handlers"
	applog "folio/internal/log"
	"folio/internal/repos"
	"folio/internal/services"
)

func main() {
	cfg := config.Load()
	applog.Init(cfg.LogFile)

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Auth wiring
	userRepo := repos.NewUserRepo(db)
	authSvc := &services.AuthService{Users: userRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Log and show a friendly message
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	// Attach user to context if logged in (for templates/headers)
	app.Use(func(c *fiber.Ctx) error {
		if sid := c.Cookies("sid"); sid != "" {
			if u, err := authSvc.CurrentUser(sid); err == nil && u != nil {
				c.Locals("user", u)
			}
		}
		return c.Next()
	})
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", map[string]any{"form": c.FormValue("csrf")})
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(mediaDir, clean), true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg, authSvc)

	// Public pages
	app.Get("/", deps.SiteHandler.Home)
	app.Get("/about", deps.SiteHandler.About)
	app.Get("/portfolio", deps.SiteHandler.Portfolio)

	// Blog
	app.Get("/blog", deps.BlogHandler.Index)
	app.Get("/blog/search", limiter.New(limiter.Config{Max: 20, Expiration: time.Minute}), deps.BlogHandler.Search)
	app.Get("/blog/categories", deps.BlogHandler.Categories)
	app.Get("/blog/categories/:slug", deps.BlogHandler.Category)
	app.Get("/blog/readlists", deps.BlogHandler.Readlists)
	app.Get("/blog/readlists/:slug", deps.BlogHandler.Readlist)
	app.Get("/blog/:slug", deps.BlogHandler.Post)

	// Marketplace
	app.Get("/marketplace", deps.MarketHandler.List)
	app.Get("/marketplace/product/:id", deps.MarketHandler.Detail)

	// Cart & order inquiries
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Post("/orders", limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.orders.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("order_result", fiber.Map{"Err": "Too many requests. Please wait a moment and try again."})
		},
	}), deps.OrderHandler.Submit)

	// Contact & booking
	app.Get("/contact", deps.BookingHandler.Contact)
	app.Post("/contact", deps.BookingHandler.Book)

	// Auth routes (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Admin
	admin := app.Group("/admin", handlers.RequireAdmin(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/posts", deps.AdminHandler.Posts)
	admin.Post("/posts", deps.AdminHandler.SavePost)
	admin.Post("/posts/:id/delete", deps.AdminHandler.DeletePost)
	admin.Get("/categories", deps.AdminHandler.Categories)
	admin.Post("/categories", deps.AdminHandler.SaveCategory)
	admin.Post("/categories/:id/delete", deps.AdminHandler.DeleteCategory)
	admin.Get("/readlists", deps.AdminHandler.Readlists)
	admin.Post("/readlists", deps.AdminHandler.SaveReadlist)
	admin.Get("/readlists/:id", deps.AdminHandler.ManageReadlist)
	admin.Post("/readlists/:id/posts", deps.AdminHandler.SaveReadlistPosts)
	admin.Post("/readlists/:id/delete", deps.AdminHandler.DeleteReadlist)
	admin.Get("/products", deps.AdminHandler.Products)
	admin.Post("/products", deps.AdminHandler.SaveProduct)
	admin.Post("/products/:id/delete", deps.AdminHandler.DeleteProduct)
	admin.Get("/orders", deps.AdminHandler.Orders)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateOrderStatus)
	admin.Get("/bookings", deps.AdminHandler.Bookings)
	admin.Post("/bookings/:id/status", deps.AdminHandler.UpdateBookingStatus)
	admin.Get("/projects", deps.AdminHandler.Projects)
	admin.Post("/projects", deps.AdminHandler.SaveProject)
	admin.Post("/projects/:id/delete", deps.AdminHandler.DeleteProject)
	admin.Post("/projects/reorder", deps.AdminHandler.ReorderProjects)
	admin.Get("/about", deps.AdminHandler.AboutEdit)
	admin.Post("/about", deps.AdminHandler.SaveAbout)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
