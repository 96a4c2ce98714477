package quotes

import "quotebook/pkg/models"

// Filter returns the quotes whose category set contains category. An empty
// category selects everything. Matching is exact and case-sensitive.
func Filter(qs []models.Quote, category string) []models.Quote {
	if category == "" {
		return qs
	}

	out := make([]models.Quote, 0, len(qs))
	for _, q := range qs {
		if q.Category.Contains(category) {
			out = append(out, q)
		}
	}
	return out
}
