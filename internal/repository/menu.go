package repository

import (
	"context"

	"noodlebar/internal/model"
)

// MenuItemRepository defines data access for menu item documents.
// No business logic here — strictly persistence operations.
type MenuItemRepository interface {
	// Save upserts a menu item by its ID and returns the stored document.
	Save(ctx context.Context, item *model.MenuItem) (*model.MenuItem, error)

	// FindByID returns a menu item by its document ID.
	FindByID(ctx context.Context, id string) (*model.MenuItem, error)

	// FindByName returns the menu item with the given (unique) name.
	FindByName(ctx context.Context, name string) (*model.MenuItem, error)

	// FindByIngredientsNameIn returns every menu item containing at least one
	// ingredient whose name is in names. Query shape:
	// {"ingredients.name": {"$in": names}}.
	FindByIngredientsNameIn(ctx context.Context, names ...string) ([]model.MenuItem, error)

	// List returns a paginated list of menu items and the total document count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.MenuItem], error)

	// Delete removes a menu item by ID. It returns nil if the document was
	// deleted or did not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every menu item document.
	DeleteAll(ctx context.Context) error

	// AnalyseIngredients runs the ingredient usage MapReduce on the server and
	// returns one count per ingredient name, sorted by name.
	AnalyseIngredients(ctx context.Context) ([]model.IngredientCount, error)
}
