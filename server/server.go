package server

import (
	"fmt"
	"net/http"
	"time"

	"automeme/store"

	"github.com/bwmarrin/discordgo"
	"github.com/gin-gonic/gin"
)

const serviceName = "automeme"

// Server exposes the health endpoints over HTTP. Every handler is a
// synchronous read of in-memory state; nothing here blocks on Discord or the
// generation service.
type Server struct {
	engine    *gin.Engine
	session   *discordgo.Session
	store     *store.ChannelStore
	startTime time.Time
}

// New builds the HTTP server around a live session and the channel store.
func New(session *discordgo.Session, st *store.ChannelStore, startTime time.Time) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine:    engine,
		session:   session,
		store:     st,
		startTime: startTime,
	}
	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	return s
}

// Run serves the health endpoints on the given port, blocking until the
// listener fails.
func (s *Server) Run(port int) error {
	return s.engine.Run(fmt.Sprintf(":%d", port))
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": serviceName,
		"endpoints": gin.H{
			"/":       "this descriptor",
			"/health": "process and Discord connection health",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	uptime := time.Since(s.startTime)

	connected := s.session.DataReady
	status := "connecting"
	if connected {
		status = "connected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"uptime": gin.H{
			"seconds":   int64(uptime.Seconds()),
			"formatted": uptime.Round(time.Second).String(),
		},
		"discord": gin.H{
			"connected": connected,
			"status":    status,
			"guilds":    len(s.session.State.Guilds),
			"ping":      s.session.HeartbeatLatency().Milliseconds(),
		},
		"channels": gin.H{
			"configured": s.store.GuildCount(),
			"total":      s.store.ChannelCount(),
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
