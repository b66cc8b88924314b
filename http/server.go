package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fwojciec/brief"
	"github.com/gin-gonic/gin"
	"mvdan.cc/xurls/v2"
)

// DefaultMaxUploadBytes bounds the size of a PDF upload.
const DefaultMaxUploadBytes = 10 << 20

// ShutdownTimeout is the time given for outstanding requests to finish.
const ShutdownTimeout = 5 * time.Second

// webURL matches a single http or https URL.
var webURL = mustCompileURL("https?://")

func mustCompileURL(scheme string) *regexp.Regexp {
	re, err := xurls.StrictMatchingScheme(scheme)
	if err != nil {
		panic(err)
	}
	return re
}

// Server serves the brief HTTP API.
type Server struct {
	server *http.Server
	router *gin.Engine

	// Addr is the TCP address to listen on, e.g. ":3000".
	Addr string

	// MaxUploadBytes bounds PDF uploads. Defaults to DefaultMaxUploadBytes.
	MaxUploadBytes int64

	Logger *slog.Logger

	SummaryService brief.SummaryService
	ContentService brief.ContentService
}

// NewServer returns a Server with its routes registered.
// Services must be set before the server starts handling requests.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{ReadHeaderTimeout: 10 * time.Second},
		router: gin.New(),
	}
	s.server.Handler = s.router

	s.router.Use(RequestID())
	s.router.Use(func(c *gin.Context) { AccessLog(s.logger())(c) })
	s.router.Use(gin.Recovery())

	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/providers", s.handleProviders)
	api.POST("/summarize", s.handleSummarize)
	api.POST("/extract-url", s.handleExtractURL)
	api.POST("/extract-pdf", s.handleExtractPDF)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe listens on Addr and blocks until the server is shut down.
// Returns nil after a graceful shutdown.
func (s *Server) ListenAndServe() error {
	s.server.Addr = s.Addr
	s.logger().Info("listening", "addr", s.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleProviders(c *gin.Context) {
	c.JSON(http.StatusOK, s.SummaryService.Providers())
}

func (s *Server) handleSummarize(c *gin.Context) {
	var req brief.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.SummaryService.Summarize(c.Request.Context(), &req)
	if err != nil {
		provider := brief.DefaultProvider
		if p, perr := brief.ParseProvider(req.Provider); perr == nil {
			provider = p
		}
		t := brief.TranslateError(provider, err)
		s.logger().WarnContext(c.Request.Context(), "summarize failed",
			"provider", string(provider),
			"code", t.Code,
			"request_id", c.GetString(requestIDKey),
			"err", err)
		c.JSON(t.Status, gin.H{"error": t.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}

type extractURLRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleExtractURL(c *gin.Context) {
	var req extractURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}
	if webURL.FindString(url) != url {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL must be an http or https address"})
		return
	}

	content, err := s.ContentService.ExtractURL(c.Request.Context(), url)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

func (s *Server) handleExtractPDF(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUploadBytes())

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	f, err := header.Open()
	if err != nil {
		s.writeError(c, err)
		return
	}
	defer f.Close()

	content, err := s.ContentService.ExtractPDF(c.Request.Context(), header.Filename, f, header.Size)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, content)
}

// writeError writes an application error as a JSON body. Internal errors
// without an application message are logged and hidden.
func (s *Server) writeError(c *gin.Context, err error) {
	code, message := brief.ErrorCode(err), brief.ErrorMessage(err)
	if code == brief.EINTERNAL {
		s.logger().ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
			"err", err)
	}
	c.JSON(ErrorStatusCode(code), gin.H{"error": message})
}

func (s *Server) maxUploadBytes() int64 {
	if s.MaxUploadBytes > 0 {
		return s.MaxUploadBytes
	}
	return DefaultMaxUploadBytes
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
