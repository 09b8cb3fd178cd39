package winentity

import "context"

// Listing is the result of listing one directory.
type Listing struct {
	Path     string   `json:"path"`
	Entities []Entity `json:"entities"`
}

// Inspector answers metadata queries about filesystem entities.
type Inspector interface {
	// List returns the entities inside the directory at path.
	List(ctx context.Context, path string) ([]Entity, error)

	// ListCurrent lists the process working directory.
	ListCurrent(ctx context.Context) ([]Entity, error)

	// ListAll lists several directories concurrently. Results keep the
	// order of paths.
	ListAll(ctx context.Context, paths []string) ([]Listing, error)

	// Entity describes the single entity at path. When the command prints
	// nothing, a default entity carrying only the path is returned.
	Entity(ctx context.Context, path string) (Entity, error)

	// Is reports whether the entity at path carries every tag in tags.
	Is(ctx context.Context, path string, tags ...TypeTag) (bool, error)
}
