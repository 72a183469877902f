package middleware

import (
	"net/http"
	"strconv"

	"catalog-backend/internal/command"

	"github.com/gin-gonic/gin"
)

const (
	contextCollectionSearch = "collectionSearch"
	contextProductQuery     = "productQuery"

	defaultLimit = 20
	maxLimit     = 100
)

// CollectionSearch validates limit and offset query parameters and stores
// the parsed command on the context. Malformed values short-circuit with
// 400 before the handler runs.
func CollectionSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		search, ok := parseCollectionSearch(c)
		if !ok {
			return
		}
		c.Set(contextCollectionSearch, search)
		c.Next()
	}
}

// ProductSearch validates the product filter and sort parameters on top of
// the pagination ones.
func ProductSearch() gin.HandlerFunc {
	return func(c *gin.Context) {
		search, ok := parseCollectionSearch(c)
		if !ok {
			return
		}

		query := command.ProductQuery{
			CollectionSearch: search,
			DisplayName:      c.Query("displayName"),
		}

		if raw := c.Query("minRating"); raw != "" {
			rating, err := strconv.ParseFloat(raw, 64)
			if err != nil || rating < 0 || rating > 5 {
				abortWithBody(c, http.StatusBadRequest, "minRating must be a number between 0 and 5")
				return
			}
			query.MinRating = rating
		}

		rawMin, rawMax := c.Query("priceMin"), c.Query("priceMax")
		if (rawMin == "") != (rawMax == "") {
			abortWithBody(c, http.StatusBadRequest, "priceMin and priceMax must be provided together")
			return
		}
		if rawMin != "" {
			min, errMin := strconv.ParseFloat(rawMin, 64)
			max, errMax := strconv.ParseFloat(rawMax, 64)
			if errMin != nil || errMax != nil || min < 0 || max < min {
				abortWithBody(c, http.StatusBadRequest, "Invalid price range")
				return
			}
			query.HasPriceRange = true
			query.PriceMin = min
			query.PriceMax = max
		}

		if sortBy := c.Query("sortBy"); sortBy != "" {
			switch sortBy {
			case command.SortByDisplayName, command.SortByPrice, command.SortByTotalRating, command.SortByCreatedAt:
				query.SortBy = sortBy
			default:
				abortWithBody(c, http.StatusBadRequest, "Unsupported sortBy field")
				return
			}
			query.SortDesc = c.Query("sortOrder") == "desc"
		}

		c.Set(contextProductQuery, query)
		c.Next()
	}
}

func parseCollectionSearch(c *gin.Context) (command.CollectionSearch, bool) {
	search := command.CollectionSearch{Limit: defaultLimit}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			abortWithBody(c, http.StatusBadRequest, "limit must be a positive integer")
			return command.CollectionSearch{}, false
		}
		if limit > maxLimit {
			limit = maxLimit
		}
		search.Limit = limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			abortWithBody(c, http.StatusBadRequest, "offset must be a non-negative integer")
			return command.CollectionSearch{}, false
		}
		search.Offset = offset
	}

	return search, true
}

// CollectionSearchFrom returns the search parsed by the CollectionSearch
// guard, or defaults when the guard did not run.
func CollectionSearchFrom(c *gin.Context) command.CollectionSearch {
	if v, ok := c.Get(contextCollectionSearch); ok {
		if search, ok := v.(command.CollectionSearch); ok {
			return search
		}
	}
	return command.CollectionSearch{Limit: defaultLimit}
}

// ProductQueryFrom returns the query parsed by the ProductSearch guard.
func ProductQueryFrom(c *gin.Context) command.ProductQuery {
	if v, ok := c.Get(contextProductQuery); ok {
		if query, ok := v.(command.ProductQuery); ok {
			return query
		}
	}
	return command.ProductQuery{CollectionSearch: command.CollectionSearch{Limit: defaultLimit}}
}
