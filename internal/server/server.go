package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/kgraph/internal/core"
	"github.com/agenthands/kgraph/internal/core/merge"
	"github.com/agenthands/kgraph/internal/core/model"
)

type Server struct {
	Session *core.Session
	log     *zap.Logger
}

func NewServer(session *core.Session, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Session: session,
		log:     logger.Named("http"),
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(s.log), gin.Recovery())

	r.GET("/graph", s.GetGraph)
	r.POST("/graph/merge", s.MergeGraph)
	r.POST("/graph/analyze", s.AnalyzeGraph)
	r.PUT("/context", s.SetContext)
	r.GET("/chat", s.GetChat)
	r.POST("/chat", s.PostChat)
	r.GET("/status", s.GetStatus)

	return r
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.Warn("Request failed", fields...)
			return
		}
		logger.Debug("Request served", fields...)
	}
}

// GraphResponse is the graph as the renderer consumes it.
type GraphResponse struct {
	Nodes  []model.Node `json:"nodes"`
	Edges  []model.Edge `json:"edges"`
	Status model.Status `json:"status"`
}

// MergeResponse carries the merge counts and, when the store failed after
// the merge took effect, a warning.
type MergeResponse struct {
	Report  merge.Report `json:"report"`
	Warning string       `json:"warning,omitempty"`
}

func (s *Server) GetGraph(c *gin.Context) {
	snap := s.Session.Snapshot()
	c.JSON(http.StatusOK, GraphResponse{
		Nodes:  snap.Nodes,
		Edges:  snap.Edges,
		Status: s.Session.Status(),
	})
}

func (s *Server) MergeGraph(c *gin.Context) {
	var delta model.Delta
	if err := c.ShouldBindJSON(&delta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	report, err := s.Session.Merge(c.Request.Context(), delta)
	s.respondMerge(c, report, err)
}

type AnalyzeRequest struct {
	// Context, when present, replaces the uploaded source text first.
	Context *string `json:"context"`
}

func (s *Server) AnalyzeGraph(c *gin.Context) {
	var req AnalyzeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
	}
	if req.Context != nil {
		s.Session.SetContext(*req.Context)
	}

	report, err := s.Session.Analyze(c.Request.Context())
	s.respondMerge(c, report, err)
}

func (s *Server) respondMerge(c *gin.Context, report merge.Report, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, MergeResponse{Report: report})
	case errors.Is(err, core.ErrPersist):
		_ = c.Error(err)
		c.JSON(http.StatusOK, MergeResponse{Report: report, Warning: err.Error()})
	default:
		s.fail(c, err)
	}
}

type ContextRequest struct {
	Text string `json:"text"`
}

func (s *Server) SetContext(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	s.Session.SetContext(req.Text)
	c.Status(http.StatusNoContent)
}

func (s *Server) GetChat(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"messages": s.Session.History()})
}

type ChatRequest struct {
	Message string `json:"message"`
}

func (s *Server) PostChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	reply, err := s.Session.Chat(c.Request.Context(), req.Message)
	if err != nil && !errors.Is(err, core.ErrPersist) {
		s.fail(c, err)
		return
	}
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (s *Server) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": s.Session.Status()})
}

// fail maps session errors to status codes: a busy session is a conflict,
// bad input is the caller's fault, anything else came from a collaborator.
func (s *Server) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, core.ErrBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "status": s.Session.Status()})
	case errors.Is(err, core.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error("Collaborator failure", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
