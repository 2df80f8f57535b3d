package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-raycaster/pkg/loaders"
	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// Render statistics headers
const (
	HeaderRenderID        = "X-Render-Id"
	HeaderRenderPixels    = "X-Render-Pixels"
	HeaderRenderWorkers   = "X-Render-Workers"
	HeaderRenderFailed    = "X-Render-Failed-Pixels"
	HeaderRenderElapsed   = "X-Render-Elapsed-Ms"
	HeaderRenderLuminance = "X-Render-Luminance"
)

var renderHeaders = []string{
	HeaderRenderID,
	HeaderRenderPixels,
	HeaderRenderWorkers,
	HeaderRenderFailed,
	HeaderRenderElapsed,
	HeaderRenderLuminance,
}

// xmlScenePrefix marks scene ids that name a file in the scene directory
const xmlScenePrefix = "xml:"

// RenderRequest holds the query parameters shared by both render endpoints
type RenderRequest struct {
	Scene      string // Scene id (built-in name or "xml:<name>")
	NumWorkers int    // 0 selects the logical CPU count
	Format     string // Output image format
}

// handleRenderScene renders a built-in or discovered scene by id
func (s *Server) handleRenderScene(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	if req.Scene == "" {
		return jsonError(c, http.StatusBadRequest, "missing scene parameter")
	}

	sc, err := s.createScene(req.Scene)
	if errors.Is(err, errSceneNotFound) {
		return jsonError(c, http.StatusNotFound, err.Error())
	}
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return s.renderScene(c, sc, req)
}

// handleRenderDocument renders an XML scene document posted as the body
func (s *Server) handleRenderDocument(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	sc, err := loaders.ParseScene(c.Request().Body)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	return s.renderScene(c, sc, req)
}

func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	workers, err := parseIntParam(values, "workers", 0, 0, MaxWorkers)
	if err != nil {
		return nil, err
	}

	format := "png"
	if f := values.Get("format"); f != "" {
		format = strings.ToLower(f)
	}
	if _, err := loaders.FormatExtension(format); err != nil {
		return nil, err
	}

	return &RenderRequest{
		Scene:      values.Get("scene"),
		NumWorkers: workers,
		Format:     format,
	}, nil
}

// createScene resolves a scene id. XML ids are looked up among the scenes
// discovered in the scene directory, so request paths never reach the
// filesystem directly.
func (s *Server) createScene(id string) (*scene.Scene, error) {
	if name, ok := strings.CutPrefix(id, xmlScenePrefix); ok {
		scenes, err := scene.ListXMLScenes(s.scenesDir)
		if err != nil {
			return nil, err
		}
		for _, info := range scenes {
			if info.ID == xmlScenePrefix+name {
				return loaders.LoadScene(info.FilePath)
			}
		}
		return nil, fmt.Errorf("%w: %s", errSceneNotFound, id)
	}

	for _, name := range scene.BuiltinSceneNames() {
		if name == id {
			return scene.NewBuiltinScene(id)
		}
	}
	return nil, fmt.Errorf("%w: %s", errSceneNotFound, id)
}

// renderScene renders sc and writes the encoded image with its statistics
func (s *Server) renderScene(c echo.Context, sc *scene.Scene, req *RenderRequest) error {
	width, height := sc.GetImageSize()
	if width <= 0 || height <= 0 || width > MaxImagePixels/height {
		return jsonError(c, http.StatusBadRequest,
			fmt.Sprintf("image %dx%d is outside the %d pixel limit", width, height, MaxImagePixels))
	}

	renderID := fmt.Sprintf("render-%d", s.renderSeq.Add(1))
	consoleChan := make(chan ConsoleMessage, DefaultConsoleSize)
	logger := NewWebLogger(renderID, consoleChan)

	config := renderer.DefaultRenderConfig()
	if req.NumWorkers > 0 {
		config.NumWorkers = req.NumWorkers
	}

	img, stats, err := renderer.Render(sc, config, logger)
	close(consoleChan)
	for msg := range consoleChan {
		s.console.Add(msg)
	}
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := loaders.EncodeImage(&buf, req.Format, img); err != nil {
		return jsonError(c, http.StatusInternalServerError, err.Error())
	}

	h := c.Response().Header()
	h.Set(HeaderRenderID, renderID)
	h.Set(HeaderRenderPixels, strconv.Itoa(stats.TotalPixels))
	h.Set(HeaderRenderWorkers, strconv.Itoa(stats.NumWorkers))
	h.Set(HeaderRenderFailed, strconv.Itoa(stats.FailedPixels))
	h.Set(HeaderRenderElapsed, strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	h.Set(HeaderRenderLuminance, strconv.FormatFloat(stats.AverageLuminance, 'f', 4, 64))

	return c.Blob(http.StatusOK, loaders.ContentType(req.Format), buf.Bytes())
}
