package app

import "errors"

var (
	// ErrNoPersistence is returned by Service methods when no store is set.
	ErrNoPersistence = errors.New("app: no persistence configured")

	ErrDuplicateName     = errors.New("app: an entry with that name already exists")
	ErrNotFound          = errors.New("app: entry not found")
	ErrEmpty             = errors.New("app: no entries")
	ErrDuplicateCategory = errors.New("app: category already exists")
	ErrCategoryNotFound  = errors.New("app: category not found")
	ErrDefaultCategory   = errors.New("app: the default category cannot be removed")
	ErrSameCategory      = errors.New("app: replacement category must differ from the removed one")
	ErrCategoryInUse     = errors.New("app: category still has entries, a replacement is required")
)
