package usecase

import "tourcatalog-service/internal/domain/entity"

// MergePolarity flattens the included and excluded lists into one, included
// items first. Order within each list is kept and duplicates are not removed.
func MergePolarity(included, excluded []entity.InclusionItem) []entity.Inclusion {
	merged := make([]entity.Inclusion, 0, len(included)+len(excluded))
	for _, item := range included {
		merged = append(merged, entity.Inclusion{Title: item.Title.String, IsIncluded: true})
	}
	for _, item := range excluded {
		merged = append(merged, entity.Inclusion{Title: item.Title.String, IsIncluded: false})
	}
	return merged
}
