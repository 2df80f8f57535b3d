package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-raycaster/pkg/scene"
)

const (
	// MaxWorkers bounds the workers query parameter
	MaxWorkers = 256
	// MaxImagePixels bounds the size of scenes the server will render
	MaxImagePixels = 4096 * 4096
	// MaxSceneBody bounds POSTed scene documents
	MaxSceneBody = "1M"
)

// errSceneNotFound marks scene ids that resolve to nothing
var errSceneNotFound = errors.New("scene not found")

// Server handles web requests for the ray caster
type Server struct {
	port      int
	scenesDir string
	echo      *echo.Echo
	console   *consoleBuffer
	renderSeq atomic.Int64
}

// NewServer creates a new web server that lists and renders XML scenes
// from scenesDir in addition to the built-in scenes
func NewServer(port int, scenesDir string) *Server {
	s := &Server{
		port:      port,
		scenesDir: scenesDir,
		console:   newConsoleBuffer(DefaultConsoleSize),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(corsMiddleware)

	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/console", s.handleConsole)
	e.GET("/api/render", s.handleRenderScene)
	e.POST("/api/render", s.handleRenderDocument, middleware.BodyLimit(MaxSceneBody))

	s.echo = e
	return s
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in scenes and the XML scenes in the scene directory
func (s *Server) handleScenes(c echo.Context) error {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, scenes)
}

// handleConsole returns the most recent render log lines
func (s *Server) handleConsole(c echo.Context) error {
	return c.JSON(http.StatusOK, s.console.Messages())
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		c.Response().Header().Set("Access-Control-Expose-Headers", strings.Join(renderHeaders, ", "))

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
