package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/otoarena/backend/internal/config"
	"github.com/otoarena/backend/internal/handlers"
	"github.com/otoarena/backend/internal/middleware"
	"github.com/otoarena/backend/internal/services"
	"gorm.io/gorm"
)

// Setup wires every route family onto the app. List and detail routes are
// public; mutations require a loaded user identity; staff routes require a
// staff-typed token.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authService := services.NewAuthService(db, cfg)
	vehicleService := services.NewVehicleService(db)
	partService := services.NewPartService(db)
	serviceListingService := services.NewServiceListingService(db)
	rentalService := services.NewRentalService(db)
	favoriteService := services.NewFavoriteService(db)
	userService := services.NewUserService(db)
	staffService := services.NewStaffService(db, cfg)

	authHandler := handlers.NewAuthHandler(authService, cfg)
	vehicleHandler := handlers.NewVehicleHandler(vehicleService, cfg)
	partHandler := handlers.NewPartHandler(partService, cfg)
	serviceHandler := handlers.NewServiceHandler(serviceListingService, cfg)
	rentalHandler := handlers.NewRentalHandler(rentalService, cfg)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService, cfg)
	userHandler := handlers.NewUserHandler(userService, cfg)
	staffHandler := handlers.NewStaffHandler(staffService, cfg)
	healthHandler := handlers.NewHealthHandler(db)

	requireAuth := []fiber.Handler{middleware.JWTProtected(cfg), middleware.LoadUser(db)}
	optionalAuth := middleware.OptionalAuth(db, cfg)

	api := app.Group("/api", apiLimiter(60))

	api.Get("/health", healthHandler.Check)

	auth := api.Group("/auth", apiLimiter(10))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	vehicles := api.Group("/vehicles")
	vehicles.Get("/", optionalAuth, vehicleHandler.List)
	vehicles.Get("/:id", vehicleHandler.Get)
	vehicles.Post("/", append(requireAuth, vehicleHandler.Create)...)
	vehicles.Put("/:id", append(requireAuth, vehicleHandler.Update)...)
	vehicles.Delete("/:id", append(requireAuth, vehicleHandler.Delete)...)

	parts := api.Group("/parts")
	parts.Get("/", optionalAuth, partHandler.List)
	parts.Get("/:id", partHandler.Get)
	parts.Post("/", append(requireAuth, partHandler.Create)...)
	parts.Put("/:id", append(requireAuth, partHandler.Update)...)
	parts.Delete("/:id", append(requireAuth, partHandler.Delete)...)

	servicesGroup := api.Group("/services")
	servicesGroup.Get("/", optionalAuth, serviceHandler.List)
	servicesGroup.Get("/:id", serviceHandler.Get)
	servicesGroup.Post("/", append(requireAuth, serviceHandler.Create)...)
	servicesGroup.Put("/:id", append(requireAuth, serviceHandler.Update)...)
	servicesGroup.Delete("/:id", append(requireAuth, serviceHandler.Delete)...)

	rentals := api.Group("/rentals")
	rentals.Get("/", optionalAuth, rentalHandler.List)
	rentals.Get("/:id", rentalHandler.Get)
	rentals.Post("/", append(requireAuth, rentalHandler.Create)...)
	rentals.Put("/:id", append(requireAuth, rentalHandler.Update)...)
	rentals.Delete("/:id", append(requireAuth, rentalHandler.Delete)...)

	favorites := api.Group("/favorites", requireAuth...)
	favorites.Get("/", favoriteHandler.List)
	favorites.Post("/", favoriteHandler.Add)
	favorites.Delete("/:itemType/:itemId", favoriteHandler.Remove)

	users := api.Group("/users", requireAuth...)
	users.Get("/profile", userHandler.GetProfile)
	users.Put("/profile", userHandler.UpdateProfile)
	users.Delete("/account", userHandler.DeactivateAccount)
	users.Post("/convert-to-business", userHandler.ConvertToBusiness)
	users.Post("/business-application", userHandler.SubmitBusinessApplication)

	// Anyone can open a ticket or report a listing; the identity is attached
	// when a valid token is present.
	api.Post("/support/tickets", optionalAuth, staffHandler.CreateTicket)
	api.Post("/reports", optionalAuth, staffHandler.ReportListing)

	staff := api.Group("/staff")
	staff.Post("/login", apiLimiter(10), staffHandler.Login)

	staffAuth := staff.Group("", middleware.JWTProtected(cfg), middleware.LoadStaff(db))
	staffAuth.Get("/tickets", staffHandler.ListTickets)
	staffAuth.Put("/tickets/:id", staffHandler.UpdateTicket)
	staffAuth.Get("/moderation", staffHandler.ListModerationQueue)
	staffAuth.Put("/moderation/:id", staffHandler.ReviewModerationItem)
	staffAuth.Get("/applications", staffHandler.ListBusinessApplications)
	staffAuth.Put("/applications/:id", staffHandler.ReviewBusinessApplication)

	management := staffAuth.Group("/users", middleware.RequireSuperStaff())
	management.Get("/", staffHandler.ListStaff)
	management.Post("/", staffHandler.CreateStaff)
	management.Delete("/:id", staffHandler.DeactivateStaff)
}

// apiLimiter is a per-IP sliding window; counters live in process memory, so
// limits are per instance.
func apiLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               max,
		Expiration:        time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "too many requests, slow down",
			})
		},
	})
}
