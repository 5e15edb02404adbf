package app

import (
	"agromart-backend/internal/bids"
	"agromart-backend/internal/bookings"
	"agromart-backend/internal/config"
	"agromart-backend/internal/database"
	"agromart-backend/internal/health"
	"agromart-backend/internal/lands"
	"agromart-backend/internal/middleware"
	"agromart-backend/internal/orders"
	"agromart-backend/internal/payments"
	"agromart-backend/internal/reports"
	"agromart-backend/internal/resources"
	"agromart-backend/internal/users"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type gormDBPinger struct {
	db *gorm.DB
}

func (g *gormDBPinger) Ping() error {
	if g == nil || g.db == nil {
		return nil
	}
	sqlDB, err := g.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. DB and Redis are optional so the app can still serve health
// checks when either is unconfigured.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opt)
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		var errDB error
		db, errDB = database.Open(cfg.DatabaseURL)
		if errDB != nil {
			return nil, nil, nil, errDB
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
	}

	hh := &health.Handlers{Rdb: rdb}
	if db != nil {
		hh.DB = &gormDBPinger{db: db}
	}
	app.Get("/health/json", hh.JSON)

	if db != nil {
		// Users
		us := &users.Service{DB: db}
		uh := &users.Handlers{Service: us}
		ug := app.Group("/api/v1/users")
		ug.Post("/register", uh.Register)
		ug.Get("/list-users", uh.ListUsers)
		ug.Get("/view-user/:user_id", uh.ViewUser)
		ug.Put("/update-user/:user_id", uh.UpdateUser)
		ug.Delete("/remove-user/:user_id", uh.RemoveUser)

		// Lands
		ls := &lands.Service{DB: db}
		lh := &lands.Handlers{Service: ls}
		lg := app.Group("/api/v1/lands")
		lg.Post("/create-land", lh.CreateLand)
		lg.Get("/get-all-lands", lh.GetAllLands)
		lg.Get("/get-active-lands", lh.GetActiveLands)
		lg.Get("/get-closed-lands", lh.GetClosedLands)
		lg.Get("/get-land/:land_id", lh.GetLandByID)
		lg.Delete("/delete-land/:land_id", lh.DeleteLand)

		// Bids (ledger + statistics + reports)
		var locker *bids.Locker
		if rdb != nil {
			locker = &bids.Locker{Rdb: rdb}
		}
		bs := &bids.Service{DB: db, Locker: locker}
		bh := &bids.Handlers{Service: bs}
		rh := &reports.Handlers{Service: &reports.Service{DB: db}}
		bg := app.Group("/api/v1/bids")
		bg.Post("/:land_id", bh.PlaceBid)
		bg.Get("/:land_id", bh.ListBids)
		bg.Get("/:land_id/stats", bh.Stats)
		bg.Get("/:land_id/report/:format", rh.Download)
		bg.Delete("/:land_id/:bid_id", bh.DeleteBid)

		// Resources
		rs := &resources.Service{DB: db}
		resh := &resources.Handlers{Service: rs}
		rg := app.Group("/api/v1/resources")
		rg.Post("/create-resource", resh.CreateResource)
		rg.Get("/get-all-resources", resh.GetAllResources)
		rg.Get("/get-resource/:resource_id", resh.GetResourceByID)
		rg.Get("/get-owner-resources/:owner_id", resh.GetOwnerResources)
		rg.Put("/update-resource/:resource_id", resh.UpdateResource)
		rg.Delete("/delete-resource/:resource_id", resh.DeleteResource)

		// Bookings
		bks := &bookings.Service{DB: db}
		bkh := &bookings.Handlers{Service: bks}
		bkg := app.Group("/api/v1/bookings")
		bkg.Post("/create-booking", bkh.CreateBooking)
		bkg.Post("/bulk-create", bkh.BulkCreateBookings)
		bkg.Get("/get-all-bookings", bkh.GetAllBookings)
		bkg.Get("/get-booking/:booking_id", bkh.GetBookingByID)
		bkg.Get("/user-bookings/:user_id", bkh.GetFarmerBookings)
		bkg.Get("/owner-bookings/:user_id", bkh.GetBookingsForOwner)
		bkg.Patch("/update-status/:booking_id", bkh.UpdateStatus)
		bkg.Post("/bulk-delete", bkh.BulkDeleteBookings)
		bkg.Delete("/delete-booking/:booking_id", bkh.DeleteBooking)

		// Payments
		ps := &payments.Service{DB: db}
		ph := &payments.Handlers{Service: ps}
		pg := app.Group("/api/v1/payments")
		pg.Post("/create-payment", ph.CreatePayment)
		pg.Get("/get-payments", ph.GetPayments)
		pg.Get("/get-payment/:payment_id", ph.GetPaymentByID)
		pg.Put("/update-payment/:payment_id", ph.UpdatePayment)
		pg.Delete("/delete-payment/:payment_id", ph.DeletePayment)

		// Orders
		osvc := &orders.Service{DB: db}
		oh := &orders.Handlers{Service: osvc}
		og := app.Group("/api/v1/orders")
		og.Post("/create-order", oh.CreateOrder)
		og.Get("/get-all-orders", oh.GetAllOrders)
		og.Get("/get-order/:order_id", oh.GetOrderByID)
		og.Get("/buyer-orders/:buyer_id", oh.GetBuyerOrders)
		og.Get("/farmer-orders/:farmer_id", oh.GetFarmerOrders)
		og.Put("/update-order/:order_id", oh.UpdateOrder)
		og.Delete("/delete-order/:order_id", oh.DeleteOrder)
	}

	return app, db, rdb, nil
}
