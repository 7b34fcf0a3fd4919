package api

import (
	"hapsay-service/config"
	"hapsay-service/internal/announcement"
	"hapsay-service/internal/auth"
	"hapsay-service/internal/blotter"
	"hapsay-service/internal/clearance"
	"hapsay-service/internal/health"
	"hapsay-service/internal/metrics"
	"hapsay-service/internal/middleware"
	"hapsay-service/internal/officer"
	"hapsay-service/internal/realtime"
	"hapsay-service/internal/sos"
	"hapsay-service/internal/station"
	"hapsay-service/internal/user"
	"hapsay-service/pkg/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Query keys published on the websocket after a mutation. Console views
// cache lists under the same keys.
const (
	KeyUsers         = "users"
	KeyOfficers      = "officers"
	KeyStations      = "stations"
	KeyBlotter       = "blotter"
	KeyClearance     = "clearance"
	KeySOS           = "sos"
	KeyAnnouncements = "announcements"
)

type Handlers struct {
	Auth          *auth.AuthHandler
	Users         *user.UserHandler
	Officers      *officer.OfficerHandler
	Stations      *station.StationHandler
	Blotter       *blotter.BlotterHandler
	Clearance     *clearance.ClearanceHandler
	SOS           *sos.SOSHandler
	Announcements *announcement.AnnouncementHandler
	Health        *health.Handler
}

type Deps struct {
	Config   *config.Config
	Logger   *zap.SugaredLogger
	Issuer   *token.Issuer
	Hub      *realtime.Hub
	Metrics  *metrics.Metrics
	Handlers Handlers
}

func NewRouter(d Deps) *gin.Engine {

	if d.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		gin.Recovery(),
		middleware.CORS(d.Config.AllowedOrigins),
		d.Metrics.Middleware(),
	)

	health.RegisterRoutes(r, d.Handlers.Health)
	r.GET("/metrics", d.Metrics.Handler())

	apiGroup := r.Group("/api")
	apiGroup.GET("/ws", d.Hub.ServeWS)

	h := d.Handlers
	auth.RegisterRoutes(apiGroup, h.Auth, middleware.Secured(d.Issuer))
	user.RegisterRoutes(apiGroup, h.Users, d.mutating(KeyUsers)...)
	officer.RegisterRoutes(apiGroup, h.Officers, d.mutating(KeyOfficers)...)
	station.RegisterRoutes(apiGroup, h.Stations, d.mutating(KeyStations)...)
	blotter.RegisterRoutes(apiGroup, h.Blotter, d.mutating(KeyBlotter)...)
	clearance.RegisterRoutes(apiGroup, h.Clearance, d.mutating(KeyClearance)...)
	sos.RegisterRoutes(apiGroup, h.SOS, d.mutating(KeySOS)...)
	announcement.RegisterRoutes(apiGroup, h.Announcements, d.mutating(KeyAnnouncements)...)

	return r

}

// mutating counts and broadcasts successful writes to one record kind.
func (d Deps) mutating(key string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		realtime.Invalidate(d.Hub, key),
		d.Metrics.Mutations(key),
	}
}
