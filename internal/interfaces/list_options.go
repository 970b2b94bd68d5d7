package interfaces

// ListOptions narrows a collection listing. The zero value lists every row,
// which is what the admin panel wants; the public site sets the filters.
type ListOptions struct {
	ActiveOnly   bool
	FeaturedOnly bool
	Limit        int
}
