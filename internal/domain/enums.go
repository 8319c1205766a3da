package domain

// Status represents a template product's visibility state, derived from
// its tag set.
type Status string

const (
	// ACTIVE - visible in customer-facing listings
	StatusActive Status = "ACTIVE"
	// PENDING - hidden/inactive, awaiting staff review
	StatusPending Status = "PENDING"
)

// ActionType selects the admin panel operation submitted by the UI
type ActionType string

const (
	// ActionAddPending applies the "pending" tag to a product
	ActionAddPending ActionType = "addPending"
	// ActionRemovePending removes the "pending" tag from a product
	ActionRemovePending ActionType = "removePending"
	// ActionRemoveProduct deletes the product outright
	ActionRemoveProduct ActionType = "removeProduct"
	// ActionCreate creates a new template product
	ActionCreate ActionType = "create"
	// ActionEdit edits an existing template product
	ActionEdit ActionType = "edit"
)

// IsValid checks if the action type is one the panel recognizes
func (a ActionType) IsValid() bool {
	switch a {
	case ActionAddPending, ActionRemovePending, ActionRemoveProduct, ActionCreate, ActionEdit:
		return true
	default:
		return false
	}
}

// MutatesTagsOnly reports whether the action is a single tag-level call
// (the Status Toggler's add/remove-pending operations)
func (a ActionType) MutatesTagsOnly() bool {
	return a == ActionAddPending || a == ActionRemovePending
}
