package routes

import (
	"dinein-api/config"
	"dinein-api/handlers"
	"dinein-api/middleware"
	"dinein-api/permissions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	auth := middleware.NewAuth(db, cfg.JWTSecret)

	authCtl := handlers.NewAuthController(db, cfg)
	staffCtl := handlers.NewStaffController(db)
	menuCtl := handlers.NewMenuController(db)
	tableCtl := handlers.NewTableController(db, cfg)
	orderCtl := handlers.NewOrderController(db)
	publicCtl := handlers.NewPublicController(db)
	adminCtl := handlers.NewAdminController(db)

	// ── Customer-facing routes (no auth) ───────────────────────────
	r.GET("/r/:slug/table/:number", publicCtl.TableMenu)
	r.POST("/r/:slug/table/:number/orders", orderCtl.Place)
	r.GET("/r/:slug/menu", publicCtl.Menu)
	r.GET("/track/orders/:id", orderCtl.Track)

	// ── Public API ─────────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", authCtl.Register)
		public.POST("/auth/login", authCtl.Login)
		public.GET("/state-machine", publicCtl.GetStateMachineInfo)
	}

	// ── Authenticated dashboard ────────────────────────────────────
	dash := r.Group("/api")
	dash.Use(auth.Required())
	{
		dash.GET("/profile", authCtl.Profile)
	}

	// Menu & category management
	menu := dash.Group("", auth.Permission(permissions.CanManageMenu))
	{
		menu.GET("/categories", menuCtl.ListCategories)
		menu.POST("/categories", menuCtl.CreateCategory)
		menu.PUT("/categories/:id", menuCtl.UpdateCategory)
		menu.DELETE("/categories/:id", menuCtl.DeleteCategory)

		menu.GET("/menu-items", menuCtl.ListItems)
		menu.POST("/menu-items", menuCtl.CreateItem)
		menu.PUT("/menu-items/:id", menuCtl.UpdateItem)
		menu.DELETE("/menu-items/:id", menuCtl.DeleteItem)
	}

	// Table & session management
	tables := dash.Group("/tables", auth.Permission(permissions.CanManageTables))
	{
		tables.GET("", tableCtl.List)
		tables.POST("", tableCtl.Create)
		tables.PUT("/:id", tableCtl.Update)
		tables.PUT("/:id/status", tableCtl.UpdateStatus)
		tables.GET("/:id/link", tableCtl.Link)
		tables.POST("/:id/session", tableCtl.OpenSession)
		tables.GET("/:id/session", tableCtl.GetSession)
		tables.DELETE("/:id/session", tableCtl.CloseSession)
	}

	// Order management
	orders := dash.Group("/orders", auth.Permission(permissions.CanManageOrders))
	{
		orders.GET("", orderCtl.List)
		orders.GET("/:id", orderCtl.Detail)
		orders.DELETE("/:id/items/:itemId", orderCtl.RemoveItem)
		orders.PUT("/:id/payment", orderCtl.UpdatePayment)
	}

	// Status updates are a narrower capability so kitchen staff can work
	// the board without full order management
	status := dash.Group("/orders", auth.Permission(permissions.CanUpdateOrderStatus))
	{
		status.PUT("/:id/status", orderCtl.UpdateStatus)
		status.PUT("/:id/items/:itemId/status", orderCtl.UpdateItemStatus)
	}

	// Staff management
	staff := dash.Group("/staff", auth.Permission(permissions.CanManageStaff))
	{
		staff.GET("", staffCtl.List)
		staff.PUT("/:id/approve", staffCtl.Approve)
		staff.PUT("/:id/role", staffCtl.UpdateRole)
		staff.PUT("/:id/deactivate", staffCtl.Deactivate)
		staff.POST("/invites", staffCtl.CreateInvite)
		staff.GET("/invites", staffCtl.ListInvites)
	}

	// Reports & settings
	dash.GET("/reports/sales", auth.Permission(permissions.CanViewReports), adminCtl.SalesReport)
	settings := dash.Group("/settings", auth.Permission(permissions.CanManageSettings))
	{
		settings.GET("", adminCtl.GetSettings)
		settings.PUT("", adminCtl.UpdateSettings)
	}
}
