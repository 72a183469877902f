package command

// CollectionSearch holds validated pagination parameters for collection
// queries. Values are filled in by the collection-search guard.
type CollectionSearch struct {
	Limit  int
	Offset int
}

// Product list sort fields accepted by the product-search guard.
const (
	SortByDisplayName = "displayName"
	SortByPrice       = "price"
	SortByTotalRating = "totalRating"
	SortByCreatedAt   = "createdAt"
)

// ProductQuery holds validated product collection filters. Zero MinRating
// and an unset price range mean "no filter".
type ProductQuery struct {
	CollectionSearch
	DisplayName   string
	MinRating     float64
	HasPriceRange bool
	PriceMin      float64
	PriceMax      float64
	SortBy        string
	SortDesc      bool
}
