package entity

// Category is one node of the product category tree. Root categories have a
// nil ParentID. A name is unique within its parent scope, not globally.
type Category struct {
	ID          int64
	Name        string
	ParentID    *int64
	Description string
}

// CategoryPathEntry is one step of a root-to-leaf category path.
type CategoryPathEntry struct {
	ID   int64
	Name string
}
