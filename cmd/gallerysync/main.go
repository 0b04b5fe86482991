// The gallerysync tool mirrors the media library folder tree into the
// gallery table. Run it after uploading new photos.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mayasbakes/bakehouse/internal/config"
	"github.com/mayasbakes/bakehouse/internal/gallery/service"
	gallerystore "github.com/mayasbakes/bakehouse/internal/gallery/store"
	"github.com/mayasbakes/bakehouse/internal/platform/cloudinary"
	"github.com/mayasbakes/bakehouse/pkg/bootstrap"
	pkgconfig "github.com/mayasbakes/bakehouse/pkg/config"
	"github.com/mayasbakes/bakehouse/pkg/config/configloader"
)

const serviceName = "gallerysync"

// Config is the configuration of the one-shot sync run.
type Config struct {
	Log      pkgconfig.LogConfig      `koanf:"log"`
	Database pkgconfig.DatabaseConfig `koanf:"database"`
	Gallery  config.GalleryConfig     `koanf:"gallery"`
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString(c.Log.String())
	b.WriteString("\n--- Database ---\n")
	b.WriteString(fmt.Sprintf("  url: %s\n", pkgconfig.MaskURL(c.Database.URL)))
	b.WriteString(c.Gallery.Cloudinary.String())
	b.WriteString(fmt.Sprintf("  gallery.rootFolder: %s\n", c.Gallery.RootFolder))
	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Gallery.Validate()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("gallery sync failed: %v", err)
		os.Exit(1)
	}
	log.Println("gallery sync finished")
}

func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*Config](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create database connection pool: %w", err)
	}
	defer dbPool.Close()

	library := cloudinary.NewClient(
		cfg.Gallery.Cloudinary.CloudName,
		cfg.Gallery.Cloudinary.APIKey,
		cfg.Gallery.Cloudinary.APISecret,
	)
	gallery := service.NewService(gallerystore.NewPgStore(dbPool), library, logger)

	synced, err := gallery.Sync(ctx, cfg.Gallery.RootFolder)
	if err != nil {
		return fmt.Errorf("sync failed after %d images: %w", synced, err)
	}
	logger.Info("Gallery sync complete", slog.Int("images", synced))
	return nil
}
