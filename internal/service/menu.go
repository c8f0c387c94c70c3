package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"noodlebar/internal/model"
	"noodlebar/internal/repository"
	"noodlebar/internal/storage"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNameRequired  = errors.New("name is required")
	ErrNotFound      = errors.New("menu item not found")
	ErrDuplicateName = errors.New("menu item name already exists")
	ErrNoPhoto       = errors.New("menu item has no photo")
	ErrReaderNil     = errors.New("reader is nil")
)

const photoURLExpiry = 15 * time.Minute

// MenuListResult is the service-level DTO for paginated menu items.
type MenuListResult struct {
	Items []model.MenuItem `json:"data"`
	Total int              `json:"total"`
}

// MenuService defines the use cases for handling the menu.
type MenuService interface {
	// Create stores a new menu item, assigning an ID if the caller left it empty.
	Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)

	// Get returns a single menu item by its ID.
	Get(ctx context.Context, id string) (*model.MenuItem, error)

	// List returns menu items using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*MenuListResult, error)

	// FindByIngredients returns menu items containing any of the named ingredients.
	FindByIngredients(ctx context.Context, names ...string) ([]model.MenuItem, error)

	// AnalyseIngredients returns per-ingredient usage counts across the menu.
	AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error)

	// AttachPhoto uploads a photo to object storage and records its path on the
	// item, rolling back the upload if the document update fails.
	// originalFilename is used only to extract the extension.
	AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.MenuItem, error)

	// PhotoURL returns a time-limited download URL for the item's photo.
	PhotoURL(ctx context.Context, id string) (string, error)

	// Delete removes a menu item and its photo, if any.
	Delete(ctx context.Context, id string) error
}

// menuService is a concrete implementation of MenuService.
type menuService struct {
	store storage.Storage
	repo  repository.MenuItemRepository
}

// NewMenuService constructs a new MenuService.
func NewMenuService(store storage.Storage, repo repository.MenuItemRepository) MenuService {
	return &menuService{store: store, repo: repo}
}

func (s *menuService) Create(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error) {
	if item == nil || item.Name == "" {
		return nil, ErrNameRequired
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}

	stored, err := s.repo.Save(ctx, item)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return stored, nil
}

// Get returns a menu item by ID.
func (s *menuService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

// List returns paginated menu items without exposing repository types.
func (s *menuService) List(ctx context.Context, limit, offset int) (*MenuListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &MenuListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *menuService) FindByIngredients(ctx context.Context, names ...string) ([]model.MenuItem, error) {
	return s.repo.FindByIngredientsNameIn(ctx, names...)
}

func (s *menuService) AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error) {
	return s.repo.AnalyseIngredients(ctx)
}

func (s *menuService) AttachPhoto(ctx context.Context, id string, r io.Reader, originalFilename string, contentType string, size int64) (*model.MenuItem, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Generate object key using UUID + extension
	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join("menu-photos", uuid.New().String()+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"menu-item-id": id,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	previous := item.PhotoPath
	item.PhotoPath = objInfo.Key
	stored, err := s.repo.Save(ctx, item)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("photo save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("photo save failed: %w", err)
	}

	// Replaced photos are orphans; removal failure is not the caller's problem.
	if previous != "" && previous != objInfo.Key {
		_ = s.store.Delete(ctx, previous)
	}

	return stored, nil
}

func (s *menuService) PhotoURL(ctx context.Context, id string) (string, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if item.PhotoPath == "" {
		return "", ErrNoPhoto
	}
	return s.store.PresignGet(ctx, item.PhotoPath, photoURLExpiry)
}

// Delete removes the item's photo from storage, then deletes its document.
func (s *menuService) Delete(ctx context.Context, id string) error {
	item, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep the document to avoid
	// losing the storage reference
	if item.PhotoPath != "" {
		if err := s.store.Delete(ctx, item.PhotoPath); err != nil {
			return fmt.Errorf("delete photo: %w", err)
		}
	}
	return s.repo.Delete(ctx, id)
}
