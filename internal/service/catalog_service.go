package service

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/Lixing-Zhang/grand-hotel-dining/internal/models"
	"github.com/Lixing-Zhang/grand-hotel-dining/internal/state"
)

var (
	ErrMissingField     = errors.New("required field missing")
	ErrInvalidPrice     = errors.New("price must not be negative")
	ErrInvalidPrepTime  = errors.New("prep time must be positive")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInUse    = errors.New("category contains menu items")
	ErrDuplicateID      = errors.New("id already exists")
)

const (
	defaultPrepTime    = 15
	featuredRecommends = 3
	featuredSpecials   = 2
)

var whitespace = regexp.MustCompile(`\s+`)

// MenuFilter narrows the guest menu
type MenuFilter struct {
	Category string
	Search   string
}

// Featured is the highlighted section shown above the menu
type Featured struct {
	Recommended []models.MenuItem `json:"recommended"`
	Specials    []models.MenuItem `json:"specials"`
}

// CatalogService handles menu items and categories
type CatalogService struct {
	store  *state.Store
	logger *slog.Logger
	newID  func() string
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *state.Store, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		logger: logger,
		newID:  generateID,
	}
}

// ListMenu returns available items matching the filter.
// Search is case-insensitive over name and description.
func (s *CatalogService) ListMenu(filter MenuFilter) []models.MenuItem {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	items := make([]models.MenuItem, 0)
	for _, item := range s.store.State().MenuItems {
		if !item.Available {
			continue
		}
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		items = append(items, item)
	}
	return items
}

// AllMenuItems returns the whole catalog, unavailable items included
func (s *CatalogService) AllMenuItems() []models.MenuItem {
	return s.store.State().MenuItems
}

// Featured picks the first recommended and special items that are available
func (s *CatalogService) Featured() Featured {
	featured := Featured{
		Recommended: make([]models.MenuItem, 0, featuredRecommends),
		Specials:    make([]models.MenuItem, 0, featuredSpecials),
	}
	for _, item := range s.store.State().MenuItems {
		if !item.Available {
			continue
		}
		if item.IsRecommended && len(featured.Recommended) < featuredRecommends {
			featured.Recommended = append(featured.Recommended, item)
		}
		if item.IsSpecial && len(featured.Specials) < featuredSpecials {
			featured.Specials = append(featured.Specials, item)
		}
	}
	return featured
}

// GetMenuItem returns a menu item by its ID
func (s *CatalogService) GetMenuItem(id string) (models.MenuItem, error) {
	item, ok := s.store.State().MenuItem(id)
	if !ok {
		return models.MenuItem{}, ErrMenuItemNotFound
	}
	return item, nil
}

// Categories returns categories ordered by sort order
func (s *CatalogService) Categories() []models.Category {
	categories := append([]models.Category(nil), s.store.State().Categories...)
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

// CreateMenuItem validates item and adds it to the catalog.
// An id is generated when none is given.
func (s *CatalogService) CreateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		item.ID = s.newID()
	}
	if item.PrepTime == 0 {
		item.PrepTime = defaultPrepTime
	}

	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if err := validateMenuItem(current, item); err != nil {
			return nil, err
		}
		if _, exists := current.MenuItem(item.ID); exists {
			return nil, fmt.Errorf("menu item %s: %w", item.ID, ErrDuplicateID)
		}
		return state.AddMenuItem{Item: item}, nil
	})
	if err != nil {
		return models.MenuItem{}, err
	}

	s.logger.Info("menu item created", "menu_item_id", item.ID, "name", item.Name)
	return item, nil
}

// UpdateMenuItem replaces an existing menu item
func (s *CatalogService) UpdateMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if item.PrepTime == 0 {
		item.PrepTime = defaultPrepTime
	}

	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, exists := current.MenuItem(item.ID); !exists {
			return nil, ErrMenuItemNotFound
		}
		if err := validateMenuItem(current, item); err != nil {
			return nil, err
		}
		return state.UpdateMenuItem{Item: item}, nil
	})
	if err != nil {
		return models.MenuItem{}, err
	}

	s.logger.Info("menu item updated", "menu_item_id", item.ID)
	return item, nil
}

// DeleteMenuItem removes a menu item. Carts and placed orders keep their copies.
func (s *CatalogService) DeleteMenuItem(id string) error {
	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, exists := current.MenuItem(id); !exists {
			return nil, ErrMenuItemNotFound
		}
		return state.DeleteMenuItem{ID: id}, nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("menu item deleted", "menu_item_id", id)
	return nil
}

// CreateCategory validates cat and adds it.
// The id defaults to the name in lower case with whitespace runs replaced by "-".
func (s *CatalogService) CreateCategory(cat models.Category) (models.Category, error) {
	if err := validateCategory(cat); err != nil {
		return models.Category{}, err
	}

	cat.ID = strings.TrimSpace(cat.ID)
	if cat.ID == "" {
		cat.ID = CategoryID(cat.Name)
	}

	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, exists := current.Category(cat.ID); exists {
			return nil, fmt.Errorf("category %s: %w", cat.ID, ErrDuplicateID)
		}
		if cat.SortOrder == 0 {
			cat.SortOrder = len(current.Categories) + 1
		}
		return state.AddCategory{Category: cat}, nil
	})
	if err != nil {
		return models.Category{}, err
	}

	s.logger.Info("category created", "category_id", cat.ID)
	return cat, nil
}

// UpdateCategory replaces an existing category
func (s *CatalogService) UpdateCategory(cat models.Category) (models.Category, error) {
	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, exists := current.Category(cat.ID); !exists {
			return nil, ErrCategoryNotFound
		}
		if err := validateCategory(cat); err != nil {
			return nil, err
		}
		return state.UpdateCategory{Category: cat}, nil
	})
	if err != nil {
		return models.Category{}, err
	}

	s.logger.Info("category updated", "category_id", cat.ID)
	return cat, nil
}

// DeleteCategory removes a category that no menu item references
func (s *CatalogService) DeleteCategory(id string) error {
	_, err := s.store.Update(func(current state.AppState) (state.Action, error) {
		if _, exists := current.Category(id); !exists {
			return nil, ErrCategoryNotFound
		}
		if current.CategoryInUse(id) {
			return nil, ErrCategoryInUse
		}
		return state.DeleteCategory{ID: id}, nil
	})
	if errors.Is(err, ErrCategoryInUse) {
		s.logger.Warn("refusing to delete category in use", "category_id", id)
	}
	if err != nil {
		return err
	}

	s.logger.Info("category deleted", "category_id", id)
	return nil
}

// CategoryID derives a category id from its display name
func CategoryID(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func validateMenuItem(current state.AppState, item models.MenuItem) error {
	switch {
	case strings.TrimSpace(item.Name) == "":
		return fmt.Errorf("name: %w", ErrMissingField)
	case strings.TrimSpace(item.Description) == "":
		return fmt.Errorf("description: %w", ErrMissingField)
	case strings.TrimSpace(item.Category) == "":
		return fmt.Errorf("category: %w", ErrMissingField)
	case item.Price.IsNegative():
		return ErrInvalidPrice
	case item.PrepTime < 0:
		return ErrInvalidPrepTime
	}

	if _, exists := current.Category(item.Category); !exists {
		return fmt.Errorf("category %s: %w", item.Category, ErrCategoryNotFound)
	}
	return nil
}

func validateCategory(cat models.Category) error {
	if strings.TrimSpace(cat.Name) == "" {
		return fmt.Errorf("name: %w", ErrMissingField)
	}
	if strings.TrimSpace(cat.Description) == "" {
		return fmt.Errorf("description: %w", ErrMissingField)
	}
	return nil
}
