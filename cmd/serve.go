package cmd

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/metrics"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/internal/render"
	"github.com/ChukwuemekaAjaero/brightegwuogu.com-sub000/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadTemplates(ctx context.Context, fmap template.FuncMap) (*render.Templates, error) {
	dir := appConfig.Site.TemplatesDir
	if dir == "" {
		return render.New(build.Templates, "templates", fmap)
	}

	tmpl, err := render.NewFromDir(dir, fmap)
	if err != nil {
		return nil, err
	}
	if err := tmpl.Watch(ctx, dir, log); err != nil {
		return nil, err
	}
	log.Info("Serving templates from disk", zap.String("dir", dir))
	return tmpl, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := appConfig.Location()
	if err != nil {
		return err
	}

	m := metrics.New()
	svc, c, err := newService(ctx, m)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	tmpl, err := loadTemplates(ctx, render.FuncMap(loc))
	if err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Version:        build.Version,
		Port:           appConfig.Server.Port,
		Assets:         http.FS(build.Static),
		Templates:      tmpl.ExecuteTemplate,
		Content:        svc,
		Metrics:        m,
		Logger:         log,
		Location:       loc,
		WebhookSecret:  appConfig.Site.WebhookSecret,
		RateLimit:      appConfig.Server.RateLimit,
		RequestTimeout: appConfig.Server.RequestTimeout,
		SermonLimit:    appConfig.Contentful.SermonLimit,
	})

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	log.Info("Started server",
		zap.String("listen_addr", ":"+appConfig.Server.Port),
		zap.String("version", build.Version),
	)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
