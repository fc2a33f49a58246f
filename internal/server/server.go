package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"photoindex/internal/models"
)

// Server is the local preview server for the static portfolio site. It
// exists so edits to photos.json can be checked in a browser before
// publishing; the batch pipeline never depends on it.
type Server struct {
	cfg    *models.Config
	router *gin.Engine
}

func NewServer(cfg *models.Config) *Server {
	r := gin.Default()

	// photos.json is served with caching disabled so a re-run of the
	// pipeline shows up on refresh.
	r.GET("/photos.json", func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.File(cfg.OutputFile)
	})

	if cfg.Thumbs.Enabled {
		r.Static("/photos", cfg.Thumbs.Dir)
	}

	// Everything else comes straight from the site directory.
	r.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.SiteDir))))

	return &Server{cfg: cfg, router: r}
}

func (s *Server) Start() error {
	return s.router.Run(s.cfg.ServerAddr)
}
