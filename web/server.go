package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/mww/wr_zones/controller"
	"github.com/mww/wr_zones/model"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewServer(port int, ctrl controller.C, logger *zap.Logger, corsOrigins []string) (*Server, error) {
	if ctrl == nil {
		return nil, errors.New("a controller is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	render := newRender()
	router := getRouter(ctrl, render, logger, corsOrigins)

	s := &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.logger.Fatal("fatal error shutting down server", zap.Error(err))
		}
	}()

	s.logger.Info("web server is listening", zap.String("addr", s.server.Addr))
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.logger.Fatal("fatal error with server", zap.Error(err))
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"fixed1":    fixed1Formatter,
				"fixed2":    fixed2Formatter,
				"signed":    signedFormatter,
				"pct":       pctFormatter,
				"teamLabel": model.TeamLabel,
				"zoneURL":   zoneURL,
				"closeURL":  closeURL,
				"css":       cssFormatter,
			},
		},
	})
}

func fixed1Formatter(v float64) string {
	return model.ToFixed(v, 1)
}

func fixed2Formatter(v float64) string {
	return model.ToFixed(v, 2)
}

// signedFormatter always shows the sign, e.g. "+2.2" or "-0.8".
func signedFormatter(v float64) string {
	return model.Signed(v, 1)
}

// pctFormatter turns a 0-1 rate into a percentage, e.g. 0.5 is "50.0%".
func pctFormatter(v float64) string {
	return model.Percent(v, 1)
}

// cssFormatter marks a heatmap color as safe to use in a style attribute. The
// colors are only ever built by the controller.
func cssFormatter(s string) template.CSS {
	return template.CSS(s)
}

func selectionQuery(sel model.Selection) url.Values {
	q := url.Values{}
	if sel.Team != "" {
		q.Set("team", sel.Team)
	}
	if sel.PlayerID != "" {
		q.Set("player", sel.PlayerID)
	}
	return q
}

// zoneURL links to the dashboard with a zone selected, keeping the other selectors.
func zoneURL(sel model.Selection, zone string) string {
	q := selectionQuery(sel)
	q.Set("zone", zone)
	return "/?" + q.Encode()
}

// closeURL links back to the dashboard without a zone selected.
func closeURL(sel model.Selection) string {
	q := selectionQuery(sel)
	if len(q) == 0 {
		return "/"
	}
	return "/?" + q.Encode()
}
