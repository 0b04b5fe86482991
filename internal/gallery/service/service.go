// Package service provides the implementation of gallery-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mayasbakes/bakehouse/internal/gallery/store"
	"github.com/mayasbakes/bakehouse/internal/platform/cloudinary"
)

// syncPageSize is how many assets one Admin API page fetches.
const syncPageSize = 100

// MediaLibrary is the slice of the Cloudinary Admin API the sync needs.
type MediaLibrary interface {
	SubFolders(ctx context.Context, path string) ([]cloudinary.Folder, error)
	ResourcesByFolder(ctx context.Context, folder string, maxResults int, cursor string) (*cloudinary.ResourcePage, error)
}

// GalleryService defines the methods for browsing and syncing the gallery.
type GalleryService interface {
	// List returns gallery images newest first, optionally filtered by category.
	List(ctx context.Context, category string) ([]ImageDto, error)

	// Categories returns the gallery filter options with "All" first.
	Categories(ctx context.Context) ([]string, error)

	// Sync walks the media library folder tree and upserts every asset
	// into the gallery. Returns the number of images synced.
	Sync(ctx context.Context, rootFolder string) (int, error)
}

// Service implements GalleryService.
type Service struct {
	repository store.GalleryStore
	library    MediaLibrary
	logger     *slog.Logger
}

// NewService creates a new instance of GalleryService.
func NewService(repo store.GalleryStore, library MediaLibrary, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		library:    library,
		logger:     logger,
	}
}

// ImageDto represents the data transfer object for a gallery image.
type ImageDto struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	Category  string `json:"category"`
	CreatedAt string `json:"created_at"`
}

// List returns gallery images newest first, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string) ([]ImageDto, error) {
	images, err := s.repository.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}

	out := make([]ImageDto, len(images))
	for i, img := range images {
		out[i] = ImageDto{
			ID:        img.ID.String(),
			Title:     img.Title,
			ImageURL:  DeliveryURL(img.ImageURL),
			Category:  img.Category,
			CreatedAt: img.CreatedAt.Format(time.RFC3339),
		}
	}
	return out, nil
}

// Categories returns the gallery filter options with "All" first.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repository.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery categories: %w", err)
	}
	return categories, nil
}

// Sync walks the media library folder tree under rootFolder and upserts
// every image asset. The walk is depth-first over a stack so arbitrarily
// nested folders are covered, the root itself included. Each folder's
// leaf segment becomes the gallery category.
func (s *Service) Sync(ctx context.Context, rootFolder string) (int, error) {
	stack := []string{rootFolder}
	var synced int
	for len(stack) > 0 {
		folder := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := s.library.SubFolders(ctx, folder)
		if err != nil {
			return synced, fmt.Errorf("failed to walk media library: %w", err)
		}
		for _, child := range children {
			stack = append(stack, child.Path)
		}

		count, err := s.syncFolder(ctx, folder)
		if err != nil {
			return synced, err
		}
		s.logger.Info("synced gallery folder", "folder", folder, "images", count)
		synced += count
	}
	return synced, nil
}

func (s *Service) syncFolder(ctx context.Context, folderPath string) (int, error) {
	var synced int
	cursor := ""
	for {
		page, err := s.library.ResourcesByFolder(ctx, folderPath, syncPageSize, cursor)
		if err != nil {
			return synced, fmt.Errorf("failed to fetch folder %q: %w", folderPath, err)
		}
		for _, resource := range page.Resources {
			// The Admin API also returns videos and raw files; only
			// uploaded images belong in the gallery.
			if resource.Type != "upload" || resource.ResourceType != "image" {
				continue
			}
			_, err := s.repository.Upsert(ctx, store.UpsertParams{
				Title:    TitleFromPublicID(resource.PublicID),
				ImageURL: resource.SecureURL,
				Category: CategoryFromFolderPath(folderPath),
			})
			if err != nil {
				return synced, fmt.Errorf("failed to store image %q: %w", resource.PublicID, err)
			}
			synced++
		}
		if page.NextCursor == "" {
			return synced, nil
		}
		cursor = page.NextCursor
	}
}

// DeliveryURL rewrites an upload URL to request automatic format and
// quality. URLs that already carry the transform pass through unchanged.
func DeliveryURL(imageURL string) string {
	const marker = "/upload/"
	const transform = "f_auto,q_auto"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return imageURL
	}
	rest := imageURL[idx+len(marker):]
	if strings.HasPrefix(rest, transform) {
		return imageURL
	}
	return imageURL[:idx+len(marker)] + transform + "/" + rest
}

// CategoryFromFolderPath turns the last folder segment into a display
// category, e.g. "gallery/wedding-cakes" becomes "Wedding Cakes".
func CategoryFromFolderPath(folderPath string) string {
	segment := folderPath
	if idx := strings.LastIndex(folderPath, "/"); idx >= 0 {
		segment = folderPath[idx+1:]
	}
	return titleCase(segment)
}

// TitleFromPublicID turns an asset's public ID into a display title,
// e.g. "gallery/weddings/rose-gold_tier" becomes "Rose Gold Tier".
func TitleFromPublicID(publicID string) string {
	name := publicID
	if idx := strings.LastIndex(publicID, "/"); idx >= 0 {
		name = publicID[idx+1:]
	}
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
