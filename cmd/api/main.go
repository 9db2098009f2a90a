package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/finversity/finversity-backend/internal/config"
	"github.com/finversity/finversity-backend/internal/handler"
	"github.com/finversity/finversity-backend/internal/middleware"
	"github.com/finversity/finversity-backend/internal/repository"
	"github.com/finversity/finversity-backend/internal/service"
	"github.com/finversity/finversity-backend/pkg/database"
	"github.com/finversity/finversity-backend/pkg/email"
	"github.com/finversity/finversity-backend/pkg/invoice"
	"github.com/finversity/finversity-backend/pkg/logger"
	"github.com/finversity/finversity-backend/pkg/payment"
	"github.com/finversity/finversity-backend/pkg/storage"
	"github.com/finversity/finversity-backend/pkg/utils"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg := config.LoadConfig()

	zapLogger := logger.New(cfg.Env)
	defer zapLogger.Sync()

	// Initialize database (runs migrations)
	db := database.NewDatabase(cfg.DatabaseURL)

	// Storage service
	var store storage.StorageService
	if cfg.Storage.Driver == "r2" {
		r2Store, err := storage.NewR2Storage(cfg)
		if err != nil {
			log.Fatal("Failed to initialize R2 storage:", err)
		}
		store = r2Store
	} else {
		localStore, err := storage.NewLocalStorage(cfg.Storage.UploadsDir, cfg.Storage.PublicURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
		store = localStore
	}

	// Invoice generator
	invoiceGen, err := invoice.NewGenerator(cfg.Storage.InvoiceDir)
	if err != nil {
		log.Fatal("Failed to initialize invoice directory:", err)
	}

	// Email service
	emailService := email.NewEmailService(cfg.Email)

	// Payment gateway
	gateway := payment.NewRazorpayService(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	ebookRepo := repository.NewEbookRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	cartRepo := repository.NewCartRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	packagePurchaseRepo := repository.NewPackagePurchaseRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	taxRepo := repository.NewTaxRepository(db)
	contentRepo := repository.NewContentRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	courseService := service.NewCourseService(courseRepo, store, zapLogger)
	ebookService := service.NewEbookService(ebookRepo, store, zapLogger)
	packageService := service.NewPackageService(packageRepo, packagePurchaseRepo)
	cartService := service.NewCartService(cartRepo, courseRepo, ebookRepo)
	couponService := service.NewCouponService(couponRepo, taxRepo)
	checkoutService := service.NewCheckoutService(
		purchaseRepo,
		userRepo,
		courseRepo,
		ebookRepo,
		gateway,
		invoiceGen,
		emailService,
		zapLogger,
	)
	commentService := service.NewCommentService(commentRepo)
	taxService := service.NewTaxService(taxRepo)
	contentService := service.NewContentService(contentRepo, store, zapLogger)
	dashboardService := service.NewDashboardService(dashboardRepo)

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	courseHandler := handler.NewCourseHandler(courseService, validator)
	ebookHandler := handler.NewEbookHandler(ebookService, validator)
	packageHandler := handler.NewPackageHandler(packageService, validator)
	cartHandler := handler.NewCartHandler(cartService, validator)
	couponHandler := handler.NewCouponHandler(couponService, validator)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, validator)
	commentHandler := handler.NewCommentHandler(commentService, validator)
	taxHandler := handler.NewTaxHandler(taxService, validator)
	contentHandler := handler.NewContentHandler(contentService, validator)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Router
	app := fiber.New(fiber.Config{
		BodyLimit: 512 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	// Uploaded files and generated invoices are served directly
	if cfg.Storage.Driver == "local" {
		app.Static("/uploads", cfg.Storage.UploadsDir)
	}
	app.Static("/invoices", cfg.Storage.InvoiceDir)

	api := app.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public catalog routes
	api.Get("/courses", courseHandler.GetCourses)
	api.Get("/courses/:id", courseHandler.GetCourse)
	api.Get("/courses/:courseId/modules", courseHandler.GetModules)
	api.Get("/ebooks", ebookHandler.GetEbooks)
	api.Get("/ebooks/:id", ebookHandler.GetEbook)
	api.Get("/packages", packageHandler.GetPackages)
	api.Get("/packages/:id", packageHandler.GetPackage)

	// Public content routes
	api.Get("/blogs", contentHandler.GetBlogs)
	api.Get("/blogs/:id", contentHandler.GetBlog)
	api.Get("/testimonials", contentHandler.GetTestimonials)
	api.Get("/faqs", contentHandler.GetFAQs)
	api.Get("/content/:page", contentHandler.GetPageContent)
	api.Get("/taxes/type/:productType", taxHandler.GetByProductType)
	api.Get("/comments/:productType/:productId", commentHandler.GetByProduct)

	// Coupon apply/redeem are driven by the public checkout page
	api.Post("/coupons/apply", couponHandler.Apply)
	api.Post("/coupons/redeem", couponHandler.Redeem)

	// Package purchase ledger
	api.Post("/packages/purchases", packageHandler.RecordPurchase)
	api.Get("/packages/purchases/:userId", packageHandler.GetUserPurchases)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user := api.Group("/user")
		user.Get("/profile", authHandler.GetProfile)

		cart := api.Group("/cart")
		cart.Post("/", cartHandler.AddItem)
		cart.Get("/", cartHandler.GetCart)
		cart.Get("/count", cartHandler.Count)
		cart.Delete("/:id", cartHandler.RemoveItem)

		payments := api.Group("/payment")
		payments.Post("/orders", checkoutHandler.CreateOrder)
		payments.Post("/purchases", checkoutHandler.RecordPurchase)
		payments.Get("/purchases", checkoutHandler.GetPurchaseHistory)

		comments := api.Group("/comments")
		comments.Post("/", commentHandler.Create)
		comments.Put("/:id", commentHandler.Update)
		comments.Delete("/:id", commentHandler.Delete)

		// Admin routes
		admin := api.Group("/", middleware.AdminOnly())

		admin.Post("/courses", courseHandler.CreateCourse)
		admin.Put("/courses/:id", courseHandler.UpdateCourse)
		admin.Delete("/courses/:id", courseHandler.DeleteCourse)
		admin.Post("/courses/:courseId/modules", courseHandler.CreateModule)
		admin.Put("/courses/:courseId/modules/:id", courseHandler.UpdateModule)
		admin.Delete("/courses/:courseId/modules/:id", courseHandler.DeleteModule)

		admin.Post("/ebooks", ebookHandler.CreateEbook)
		admin.Put("/ebooks/:id", ebookHandler.UpdateEbook)
		admin.Delete("/ebooks/:id", ebookHandler.DeleteEbook)

		admin.Post("/packages", packageHandler.CreatePackage)
		admin.Put("/packages/:id", packageHandler.UpdatePackage)
		admin.Delete("/packages/:id", packageHandler.DeletePackage)

		admin.Get("/coupons", couponHandler.GetCoupons)
		admin.Post("/coupons", couponHandler.CreateCoupon)
		admin.Put("/coupons/:id", couponHandler.UpdateCoupon)
		admin.Delete("/coupons/:id", couponHandler.DeleteCoupon)
		admin.Get("/custom-coupons", couponHandler.GetCustomCoupons)
		admin.Post("/custom-coupons", couponHandler.CreateCustomCoupon)
		admin.Delete("/custom-coupons/:id", couponHandler.DeleteCustomCoupon)

		admin.Post("/blogs", contentHandler.CreateBlog)
		admin.Put("/blogs/:id", contentHandler.UpdateBlog)
		admin.Delete("/blogs/:id", contentHandler.DeleteBlog)
		admin.Post("/testimonials", contentHandler.CreateTestimonial)
		admin.Put("/testimonials/:id", contentHandler.UpdateTestimonial)
		admin.Delete("/testimonials/:id", contentHandler.DeleteTestimonial)
		admin.Post("/faqs", contentHandler.CreateFAQ)
		admin.Put("/faqs/:id", contentHandler.UpdateFAQ)
		admin.Delete("/faqs/:id", contentHandler.DeleteFAQ)
		admin.Post("/content", contentHandler.UpsertContent)

		admin.Get("/taxes", taxHandler.GetTaxes)
		admin.Post("/taxes", taxHandler.CreateTax)
		admin.Put("/taxes/:id", taxHandler.UpdateTax)
		admin.Delete("/taxes/:id", taxHandler.DeleteTax)

		admin.Get("/dashboard/stats", dashboardHandler.GetStats)
	}

	log.Fatal(app.Listen(":" + cfg.Port))
}
