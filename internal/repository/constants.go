package repository

// Messages carried by NotFound results; the error filter forwards them to
// the client verbatim.
const (
	missingUserMessage     = "User entity is missing"
	missingRoleMessage     = "Role entity is missing"
	missingProductMessage  = "Product entity is missing"
	missingCategoryMessage = "Category entity is missing"
)
