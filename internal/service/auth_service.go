package service

import (
	"context"

	"catalog-backend/internal/adapter"
	"catalog-backend/internal/auth"
	"catalog-backend/internal/command"
	"catalog-backend/internal/dto"
	"catalog-backend/internal/mapper"
	"catalog-backend/internal/model"
	"catalog-backend/pkg/result"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentialsMessage = "User name or password is incorrect"

// AuthService handles sign-up and sign-in. New sign-ups are granted the
// Buyer role; sign-in returns a signed JWT for the guarded routes.
type AuthService interface {
	SignUp(ctx context.Context, signUp dto.SignUp) (dto.User, error)
	SignIn(ctx context.Context, signIn dto.SignIn) (dto.Token, error)
}

type authService struct {
	users  adapter.UserAdapter
	roles  adapter.RoleAdapter
	tokens *auth.TokenIssuer
}

// NewAuthService returns a new instance of AuthService.
func NewAuthService(users adapter.UserAdapter, roles adapter.RoleAdapter, tokens *auth.TokenIssuer) AuthService {
	return &authService{users: users, roles: roles, tokens: tokens}
}

func (s *authService) SignUp(ctx context.Context, signUp dto.SignUp) (dto.User, error) {
	buyer := s.roles.GetRoleByName(ctx, model.RoleBuyer)
	if err := buyer.AsError(); err != nil {
		return dto.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return dto.User{}, &result.Error{Type: result.InternalError}
	}

	res := s.users.CreateUser(ctx, command.CreateUser{
		UserName:  signUp.UserName,
		FirstName: signUp.FirstName,
		LastName:  signUp.LastName,
		Password:  string(hashed),
		RoleID:    buyer.Data.ID,
	})
	if err := res.AsError(); err != nil {
		return dto.User{}, err
	}
	return mapper.UserToDTO(res.Data), nil
}

func (s *authService) SignIn(ctx context.Context, signIn dto.SignIn) (dto.Token, error) {
	res := s.users.GetCredentials(ctx, signIn.UserName)
	if !res.OK() {
		// Missing user and wrong password are indistinguishable to the caller.
		return dto.Token{}, &result.Error{Type: result.InvalidData, Message: invalidCredentialsMessage}
	}

	creds := res.Data
	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(signIn.Password)) != nil {
		return dto.Token{}, &result.Error{Type: result.InvalidData, Message: invalidCredentialsMessage}
	}

	token, err := s.tokens.Generate(creds.UserID, creds.UserName, creds.Role)
	if err != nil {
		return dto.Token{}, &result.Error{Type: result.InternalError}
	}
	return dto.Token{Token: token}, nil
}
