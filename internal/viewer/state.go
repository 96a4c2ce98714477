package viewer

// CategoryFilter is either "no filter" or "filter by one category". The zero
// value is no filter.
type CategoryFilter struct {
	category string
	active   bool
}

func NoFilter() CategoryFilter {
	return CategoryFilter{}
}

func FilterBy(category string) CategoryFilter {
	if category == "" {
		return NoFilter()
	}
	return CategoryFilter{category: category, active: true}
}

// Category returns the selected category and whether a filter is active.
func (f CategoryFilter) Category() (string, bool) {
	return f.category, f.active
}

func (f CategoryFilter) Is(category string) bool {
	return f.active && f.category == category
}

// Toggle selects category, or clears the filter when it is already selected.
func (f CategoryFilter) Toggle(category string) CategoryFilter {
	if f.Is(category) {
		return NoFilter()
	}
	return FilterBy(category)
}

// Expansion is either collapsed or expanded on exactly one quote key. The
// zero value is collapsed.
type Expansion struct {
	key  string
	open bool
}

func Collapsed() Expansion {
	return Expansion{}
}

func ExpandedAt(key string) Expansion {
	return Expansion{key: key, open: true}
}

// Key returns the expanded quote key and whether any quote is expanded.
func (e Expansion) Key() (string, bool) {
	return e.key, e.open
}

func (e Expansion) IsExpanded(key string) bool {
	return e.open && e.key == key
}

// Toggle collapses key if it is the expanded quote, otherwise expands key and
// implicitly collapses whatever was open before.
func (e Expansion) Toggle(key string) Expansion {
	if e.IsExpanded(key) {
		return Collapsed()
	}
	return ExpandedAt(key)
}
