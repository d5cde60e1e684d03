package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kei-mag/survey-form-test/pkg/server"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form page over HTTP, reloading the document per request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = a.cfg.Addr
			}
			gen, err := a.htmlOrchestrator(true, "")
			if err != nil {
				return err
			}
			router := newRouter(a.log, server.NewOptions(
				server.WithPathOptions(a.pathOptions()),
				server.WithRenderOptions(a.renderOptions("")),
				server.WithOrchestrator(gen),
				server.WithLogger(a.log),
			))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.listen(ctx, &http.Server{Addr: addr, Handler: router})
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides FORMGEN_ADDR)")
	return cmd
}

func (a *app) listen(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("addr", srv.Addr).Info("serving form")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	a.log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// newRouter mounts the page and asset handlers on a gin engine with request
// logging.
func newRouter(logger logrus.FieldLogger, opts server.Options) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	page := gin.WrapH(server.HandlerWithOptions(opts))
	router.GET("/", page)
	router.HEAD("/", page)

	assets := gin.WrapH(server.AssetsHandler("/assets/"))
	router.GET("/assets/*filepath", assets)
	router.HEAD("/assets/*filepath", assets)
	return router
}

func requestLogger(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Info("request")
	}
}
