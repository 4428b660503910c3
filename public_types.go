package workshop

import "github.com/steamwebapi/workshop/internal/types"

// Public type aliases so consumers can import only the workshop package.
type (
	// Domain entities
	WorkshopItem = types.WorkshopItem
	SearchItem   = types.SearchItem
	Tag          = types.Tag

	// Requests
	SearchOptions = types.SearchOptions
	RequiredTags  = types.RequiredTags
)

// Errors re-exported in errors.go
