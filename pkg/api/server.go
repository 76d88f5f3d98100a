// Package api is the HTTP surface: messaging and billing webhooks at the
// root, the operator read model under /api/v1, and the WebSocket event
// stream. One Server per process; route registration lives in NewServer.
package api

import (
	"context"
	"fmt"
	"net"
	"net/http"

	echo "github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"

	"github.com/leadflowhq/leadflow/pkg/config"
	"github.com/leadflowhq/leadflow/pkg/database"
	"github.com/leadflowhq/leadflow/pkg/dispatch"
	"github.com/leadflowhq/leadflow/pkg/events"
	"github.com/leadflowhq/leadflow/pkg/funnel"
	"github.com/leadflowhq/leadflow/pkg/masking"
	"github.com/leadflowhq/leadflow/pkg/messenger"
	"github.com/leadflowhq/leadflow/pkg/services"
)

// Server owns the echo instance and the services the handlers call.
type Server struct {
	cfg        *config.Config
	echo       *echo.Echo
	httpServer *http.Server
	dbClient   *database.Client

	threadService  *services.ThreadService
	messageService *services.MessageService
	contactService *services.ContactService
	salesService   *services.SalesService

	dispatcher  *dispatch.Dispatcher
	connManager *events.ConnectionManager

	// Wired via setters after construction.
	engine *funnel.Engine
	sender messenger.Sender
	masker *masking.Service
	sink   dispatch.EventSink
}

// NewServer creates the HTTP server and registers all routes.
func NewServer(
	cfg *config.Config,
	dbClient *database.Client,
	threadService *services.ThreadService,
	messageService *services.MessageService,
	contactService *services.ContactService,
	salesService *services.SalesService,
	dispatcher *dispatch.Dispatcher,
	connManager *events.ConnectionManager,
) *Server {
	e := echo.New()

	s := &Server{
		cfg:            cfg,
		echo:           e,
		httpServer:     &http.Server{Handler: e},
		dbClient:       dbClient,
		threadService:  threadService,
		messageService: messageService,
		contactService: contactService,
		salesService:   salesService,
		dispatcher:     dispatcher,
		connManager:    connManager,
	}

	e.Use(middleware.Recover())
	e.Use(requestLogger())
	e.Use(securityHeaders())
	if cfg.DashboardURL != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: []string{cfg.DashboardURL},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch},
		}))
	}

	// Provider-facing routes stay outside the versioned operator group.
	e.GET("/health", s.healthHandler)
	e.POST("/webhooks/messaging", s.messagingWebhookHandler)
	e.POST("/webhooks/billing", s.billingWebhookHandler)

	api := e.Group("/api/v1")
	api.GET("/version", s.versionHandler)
	api.GET("/threads", s.listThreadsHandler)
	api.GET("/threads/:id", s.getThreadHandler)
	api.PATCH("/threads/:id", s.patchThreadHandler)
	api.GET("/threads/:id/messages", s.listMessagesHandler)
	api.POST("/threads/:id/messages", s.humanReplyHandler)
	api.POST("/threads/:id/takeover", s.takeoverHandler)
	api.GET("/contacts", s.listContactsHandler)
	api.GET("/contacts/:id", s.getContactHandler)
	api.GET("/sales", s.listSalesHandler)
	api.GET("/analytics/funnel", s.funnelAnalyticsHandler)
	api.GET("/ws", s.wsHandler)

	return s
}

// SetEngine wires the funnel engine (stage validation, analytics).
func (s *Server) SetEngine(engine *funnel.Engine) {
	s.engine = engine
}

// SetSender wires the outbound provider client used by the human-reply
// endpoint.
func (s *Server) SetSender(sender messenger.Sender) {
	s.sender = sender
}

// SetMasker wires the sensitive-data masker for persisted billing payloads.
func (s *Server) SetMasker(masker *masking.Service) {
	s.masker = masker
}

// SetEventSink wires the operator-stream publisher for mutations the API
// layer performs itself (human replies, stage overrides, takeover toggles).
func (s *Server) SetEventSink(sink dispatch.EventSink) {
	s.sink = sink
}

// ValidateWiring verifies all required collaborators are present. Call it
// after the Set* methods; a nil collaborator here is a wiring bug.
func (s *Server) ValidateWiring() error {
	if s.dbClient == nil {
		return fmt.Errorf("api server: database client not wired")
	}
	if s.dispatcher == nil {
		return fmt.Errorf("api server: dispatcher not wired")
	}
	if s.engine == nil {
		return fmt.Errorf("api server: funnel engine not wired (SetEngine)")
	}
	if s.sender == nil {
		return fmt.Errorf("api server: sender not wired (SetSender)")
	}
	return nil
}

// Start begins serving on the given address. Blocks until shutdown.
func (s *Server) Start(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// StartWithListener serves on an existing listener. Tests use this to bind
// an ephemeral port.
func (s *Server) StartWithListener(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
