package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são os dados do usuário emitidos no token de acesso
type Claims struct {
	UserID       int
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRoleID   int
	jwt.RegisteredClaims
}
