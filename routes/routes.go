package routes

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/gbalekage/my-pos-v2-sub000/controllers"
	"github.com/gbalekage/my-pos-v2-sub000/middlewares"
	"github.com/gbalekage/my-pos-v2-sub000/service"
)

type Deps struct {
	DB      *gorm.DB
	Orders  *service.OrderService
	Closing *service.ClosingService
}

func SetupRoutes(r *gin.Engine, deps Deps) {
	auth := controllers.NewAuthController(deps.DB)
	items := controllers.NewItemController(deps.DB)
	catalog := controllers.NewCatalogController(deps.DB)
	tables := controllers.NewTableController(deps.DB)
	clients := controllers.NewClientController(deps.DB)
	expenses := controllers.NewExpenseController(deps.DB)
	orders := controllers.NewOrderController(deps.Orders)
	reports := controllers.NewReportController(deps.DB, deps.Closing)
	sales := controllers.NewSaleController(deps.DB)

	api := r.Group("/api")
	{
		api.POST("/auth/login", middlewares.LoginRateLimit(rate.Limit(1), 5), auth.Login)

		authed := api.Group("/", middlewares.Auth(), middlewares.Subscription(deps.DB))

		// ================= ADMIN =================
		admin := authed.Group("/", middlewares.RequireRole("ADMIN"))
		{
			admin.POST("/users", auth.CreateUser)
			admin.GET("/users", auth.ListUsers)
			admin.PUT("/users/:id/active", auth.SetUserActive)

			admin.POST("/items", items.Create)
			admin.PUT("/items/:id", items.Update)
			admin.DELETE("/items/:id", items.Delete)
			admin.PUT("/items/:id/stock", items.AdjustStock)

			admin.POST("/categories", catalog.CreateCategory)
			admin.DELETE("/categories/:id", catalog.DeleteCategory)

			admin.POST("/stores", catalog.CreateStore)
			admin.PUT("/stores/:id", catalog.UpdateStore)

			admin.POST("/printers", catalog.CreatePrinter)
			admin.PUT("/printers/:id", catalog.UpdatePrinter)
			admin.DELETE("/printers/:id", catalog.DeletePrinter)

			admin.POST("/tables", tables.Create)
			admin.DELETE("/tables/:id", tables.Delete)
		}

		// ================= SHARED READS =================
		authed.GET("/items", items.List)
		authed.GET("/items/:id", items.Get)
		authed.GET("/categories", catalog.ListCategories)
		authed.GET("/stores", catalog.ListStores)
		authed.GET("/printers", catalog.ListPrinters)
		authed.GET("/tables", tables.List)
		authed.GET("/clients", clients.List)
		authed.GET("/clients/:id/signed-bills", clients.SignedBills)

		// ================= ORDERS =================
		ord := authed.Group("/orders", middlewares.RequireRole("ATTENDANT", "CASHIER"))
		{
			ord.POST("/create", orders.Create)
			ord.GET("/table/:id", orders.ByTable)
			ord.POST("/new-items", orders.AddItems)
			ord.DELETE("/remove-item/:orderId", orders.RemoveItems)
			ord.GET("/print-bill/:tableId", orders.PrintBill)
			ord.POST("/:orderId/split-bill", orders.Split)

			// discount needs out-of-band admin approval; role gate at the boundary
			ord.POST("/:orderId/discount", middlewares.RequireRole("ADMIN"), orders.Discount)

			cashier := ord.Group("/", middlewares.RequireRole("CASHIER"))
			{
				cashier.POST("/sign/:orderId/:clientId", orders.Sign)
				cashier.POST("/pay/:orderId", orders.Pay)
			}
		}

		// ================= CLIENTS / EXPENSES =================
		authed.POST("/clients", middlewares.RequireRole("CASHIER"), clients.Create)
		authed.GET("/expences", expenses.List)
		authed.POST("/expences", middlewares.RequireRole("CASHIER"), expenses.Create)

		// ================= SALES / REPORTS =================
		authed.GET("/sales", sales.List)
		authed.GET("/sales/:id", sales.Get)

		repports := authed.Group("/repports")
		{
			repports.POST("/close/:date", middlewares.RequireRole("CASHIER"), reports.CloseDay)
			repports.GET("/close", reports.ListCloseDays)
			repports.GET("/orders/today/pending-total", reports.TodayPendingTotal)
			repports.GET("/sales/today/total", reports.TodaySalesTotal)
			repports.GET("/signedBills/today/total", reports.TodaySignedTotal)
			repports.GET("/expenses/today/total", reports.TodayExpensesTotal)
		}
	}
}
