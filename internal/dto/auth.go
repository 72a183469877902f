package dto

// SignIn is the payload for POST /api/auth/sign-in.
type SignIn struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignUp is the payload for POST /api/auth/sign-up. New users are granted
// the Buyer role.
type SignUp struct {
	UserName  string `json:"userName" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Password  string `json:"password" binding:"required,min=6"`
}

// Token carries a signed JWT back to the caller.
type Token struct {
	Token string `json:"token"`
}
