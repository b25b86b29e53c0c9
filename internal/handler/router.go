package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hostelops/internal/domain/staff"
	"hostelops/internal/handler/api"
	"hostelops/internal/handler/middleware"
	"hostelops/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	occupancyHandler *api.OccupancyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, roomHandler, bookingHandler, occupancyHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	roomHandler *api.RoomHandler,
	bookingHandler *api.BookingHandler,
	occupancyHandler *api.OccupancyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	frontDesk := authMiddleware.RequireRoleAtLeast(staff.RoleFrontDesk)
	manager := authMiddleware.RequireRoleAtLeast(staff.RoleManager)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: roomHandler.ListRoomBookings},
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPatch, Path: "/:id", Handler: roomHandler.UpdateRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id", Handler: roomHandler.DeactivateRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/:id/pin", Handler: roomHandler.PinRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id/pin", Handler: roomHandler.UnpinRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "/:id/free", Handler: roomHandler.FreeRoom, Mw: []gin.HandlerFunc{frontDesk}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking, Mw: []gin.HandlerFunc{frontDesk}},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: bookingHandler.CheckIn, Mw: []gin.HandlerFunc{frontDesk}},
				{Method: http.MethodPost, Path: "/:id/transfer", Handler: bookingHandler.Transfer, Mw: []gin.HandlerFunc{frontDesk}},
				{Method: http.MethodPost, Path: "/:id/extend", Handler: bookingHandler.ExtendStay, Mw: []gin.HandlerFunc{frontDesk}},
				{Method: http.MethodPost, Path: "/:id/depart", Handler: bookingHandler.Depart, Mw: []gin.HandlerFunc{frontDesk}},
			})
		}

		occupancy := apiGroup.Group("/occupancy")
		occupancy.Use(authMiddleware.RequireAuth())
		{
			addRoutes(occupancy, []route{
				{Method: http.MethodGet, Path: "/summary", Handler: occupancyHandler.Summary},
				{Method: http.MethodGet, Path: "/reconciliation", Handler: occupancyHandler.Reconciliation, Mw: []gin.HandlerFunc{manager}},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
