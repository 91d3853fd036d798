package api

import (
	"fmt"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/roomstatus/pkg/api/handlers"
	"github.com/urmzd/roomstatus/pkg/room"
	"github.com/urmzd/roomstatus/pkg/telemetry"
)

// DefaultBasePath is the path every room route is mounted under.
const DefaultBasePath = "/udmcws"

// Router holds the Gin engine and dependencies
type Router struct {
	engine   *gin.Engine
	rooms    *room.Set
	devices  handlers.Counter
	metrics  *telemetry.Metrics
	basePath string
}

// NewRouter creates a new API router serving every room in rooms below
// basePath. devices reports the registry size for the health endpoint.
func NewRouter(rooms *room.Set, devices handlers.Counter, metrics *telemetry.Metrics, basePath string) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	SetupMiddleware(engine, metrics)

	router := &Router{
		engine:   engine,
		rooms:    rooms,
		devices:  devices,
		metrics:  metrics,
		basePath: basePath,
	}

	router.setupRoutes()

	return router
}

// RoomPath returns the absolute route of a room below basePath.
func RoomPath(basePath string, r *room.Room) string {
	return path.Join("/", basePath, r.Config().RoutePath())
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	healthHandler := handlers.NewHealthHandler(r.rooms, r.devices)
	r.engine.GET("/health", healthHandler.Health)

	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))

	for _, rm := range r.rooms.All() {
		route := RoomPath(r.basePath, rm)
		h := handlers.NewRoomStatusHandler(rm, r.metrics)

		r.engine.GET(route, h.Get)
		r.engine.PATCH(route, h.Patch)

		log.Info().Str("room", rm.Name()).Str("route", route).Msg("Route added")
	}

	r.engine.NoMethod(handlers.NotImplemented)

	r.metrics.SetRooms(r.rooms.Len())
}

// Handler returns the router as an http.Handler
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	if err := r.engine.Run(addr); err != nil {
		return fmt.Errorf("serve %s: %w", addr, err)
	}
	return nil
}
