package server

import (
	"net/http"

	"ctchen222/Tic-Tac-Toe-Solo/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Solo/internal/auth"
	"ctchen222/Tic-Tac-Toe-Solo/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("server")

type Server struct {
	engine   *gin.Engine
	manager  *session.Manager
	upgrader websocket.Upgrader
}

func NewServer(manager *session.Manager, tokens *auth.TokenIssuer) *Server {
	s := &Server{
		engine:  gin.New(),
		manager: manager,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.engine.Use(gin.Recovery())
	s.registerHandlers(controller.NewSessionController(manager, tokens))
	return s
}

func (s *Server) registerHandlers(sc *controller.SessionController) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "sessions": s.manager.Len()})
	})

	sessions := s.engine.Group("/api/sessions")
	sessions.POST("", sc.Create)

	owned := sessions.Group("/:id", sc.RequireToken())
	owned.GET("", sc.State)
	owned.DELETE("", sc.Delete)
	owned.POST("/moves", sc.Move)
	owned.POST("/reset", sc.Reset)
	owned.GET("/ws", s.handleWebSocket)
}

// Engine exposes the gin engine, mostly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the engine wrapped with HTTP tracing.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.engine, "http.server")
}
