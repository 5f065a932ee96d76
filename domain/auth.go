package domain

import (
	"github.com/golang-jwt/jwt"
	"github.com/openmarket/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"data"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// GetNonce issues a fresh signing nonce for the address.
	GetNonce(ctx ctx.Ctx, address Address) (string, error)
	// SignToken verifies the personal-sign signature over the nonce message
	// and issues an access token for the address.
	SignToken(ctx ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (address string, err error)
}
