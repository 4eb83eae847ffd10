package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-backend/internal/handler"
	"go-pos-backend/internal/model"
	"go-pos-backend/internal/repository"
	"go-pos-backend/internal/service"
	"go-pos-backend/internal/ws"
	"go-pos-backend/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Product{},
		&model.Card{},
		&model.CardProduct{},
		&model.Employee{},
		&model.Supplier{},
		&model.Sale{},
		&model.SaleLineItem{},
	)

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(zapLogger)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	txm := repository.NewTxManager(db)
	productRepo := repository.NewProductRepo(db)
	cardRepo := repository.NewCardRepo(db)
	cardProductRepo := repository.NewCardProductRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	saleService := service.NewSaleService(saleRepo, productRepo, employeeRepo, cardRepo, txm, wsHub, zapLogger)
	cardService := service.NewCardService(cardRepo, cardProductRepo, productRepo, txm, zapLogger)
	catalogService := service.NewCatalogService(productRepo, supplierRepo, txm, wsHub, zapLogger)
	employeeService := service.NewEmployeeService(employeeRepo)
	statsService := service.NewStatsService(productRepo, saleRepo)

	saleHandler := handler.NewSaleHandler(saleService)
	cardHandler := handler.NewCardHandler(cardService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	statsHandler := handler.NewStatsHandler(statsService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// Sale Routes
	api.Post("/sales", saleHandler.CreateSale)
	api.Get("/sales", saleHandler.GetSales)
	api.Get("/sales/:id", saleHandler.GetSale)

	// Product Routes
	api.Post("/products", catalogHandler.CreateProduct)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Put("/products/:id", catalogHandler.UpdateProduct)
	api.Post("/products/:id/restock", catalogHandler.RestockProduct)

	// Card Routes
	api.Post("/cards", cardHandler.CreateCard)
	api.Get("/cards", cardHandler.GetCards)
	api.Get("/cards/:id", cardHandler.GetCard)
	api.Put("/cards/:id", cardHandler.UpdateCard)
	api.Post("/cards/:card_id/products", cardHandler.AddProduct)
	api.Get("/cards/:card_id/products", cardHandler.GetProducts)

	// Employee Routes
	api.Post("/employees", employeeHandler.CreateEmployee)
	api.Get("/employees", employeeHandler.GetEmployees)
	api.Get("/employees/:id", employeeHandler.GetEmployee)
	api.Put("/employees/:id", employeeHandler.UpdateEmployee)

	// Supplier Routes
	api.Post("/suppliers", catalogHandler.CreateSupplier)
	api.Get("/suppliers", catalogHandler.GetSuppliers)
	api.Get("/suppliers/:id", catalogHandler.GetSupplier)
	api.Put("/suppliers/:id", catalogHandler.UpdateSupplier)

	// Stats Routes
	api.Get("/stats", statsHandler.GetOverview)
	api.Get("/stats/revenue", statsHandler.GetRevenue)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
