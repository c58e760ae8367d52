package web

import (
	"embed"
	"expvar"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/mxpv/swipefeed/pkg/feed"
	"github.com/mxpv/swipefeed/pkg/loader"
	"github.com/mxpv/swipefeed/pkg/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed assets
var assetsFS embed.FS

type Server struct {
	http.Server
	cfg Config
}

type Config struct {
	// Port is a server port to listen to
	Port int `toml:"port"`
	// Bind a specific IP addresses for server
	// "*": bind all IP addresses which is default option
	// localhost or 127.0.0.1  bind a single IPv4 address
	BindAddress string `toml:"bind_address"`
	// Flag indicating if the server will use TLS
	TLS bool `toml:"tls"`
	// Path to a certificate file for TLS connections
	CertificatePath string `toml:"certificate_path"`
	// Path to a private key file for TLS connections
	KeyFilePath string `toml:"key_file_path"`
	// DataDir is a directory served at /data/, handy for hosting data.csv and videos locally
	DataDir string `toml:"data_dir"`
	// PageTTL is how long an idle page view keeps its state
	PageTTL time.Duration `toml:"page_ttl"`
	// DebugEndpoints enables /debug/vars
	DebugEndpoints bool `toml:"debug_endpoints"`
}

func New(cfg Config, source loader.Loader, feedConfig feed.Config) *Server {
	port := cfg.Port
	if port == 0 {
		port = model.DefaultPort
	}

	bindAddress := cfg.BindAddress
	if bindAddress == "*" {
		bindAddress = ""
	}

	srv := Server{cfg: cfg}

	srv.Addr = fmt.Sprintf("%s:%d", bindAddress, port)
	log.Debugf("using address: %s", srv.Addr)

	h := &handler{
		source:     source,
		feedConfig: feedConfig,
		pages:      newPages(cfg.PageTTL),
	}

	srv.Handler = h.routes(cfg)
	return &srv
}

// Run starts a plain or TLS listener depending on configuration.
func (s *Server) Run() error {
	if s.cfg.TLS {
		return s.ListenAndServeTLS(s.cfg.CertificatePath, s.cfg.KeyFilePath)
	}
	return s.ListenAndServe()
}

func (h *handler) routes(cfg Config) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	tpl := template.Must(template.New("").ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tpl)

	assets, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		log.WithError(err).Fatal("failed to open embedded assets")
	}
	r.StaticFS("/assets", http.FS(assets))

	if cfg.DataDir != "" {
		log.Debugf("serving %s at /data", cfg.DataDir)
		r.Static("/data", cfg.DataDir)
	}

	r.GET("/", h.index)
	r.POST("/api/pages/:id/events", h.event)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	if cfg.DebugEndpoints {
		log.Info("debug endpoints enabled at /debug/vars")
		r.GET("/debug/vars", gin.WrapH(expvar.Handler()))
	}

	return r
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
		}).Debug("request")
	}
}

func badRequest(err error) (int, interface{}) {
	return http.StatusBadRequest, gin.H{"error": err.Error()}
}

func notFound(err error) (int, interface{}) {
	return http.StatusNotFound, gin.H{"error": err.Error()}
}
