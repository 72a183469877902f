// Package adapter orchestrates repository and mapper calls, translating
// between persisted documents and internal command shapes while carrying
// ServiceResult outcomes through unchanged.
package adapter

import "catalog-backend/pkg/result"

// rewrap converts the payload of a successful result with mapFn and carries
// non-success outcomes through untouched.
func rewrap[M, C any](res result.Result[M], mapFn func(M) C) result.Result[C] {
	if !res.OK() {
		return result.Fail[C](res.Type, res.Message)
	}
	return result.Ok(mapFn(res.Data))
}
