package utils

import (
	"os"
	"time"

	"github.com/kataras/iris/v12/middleware/jwt"
)

// AccessToken is the claims payload carried by the bearer token. Role is
// embedded at login time; roles are immutable so the claim stays accurate
// for the token's lifetime.
type AccessToken struct {
	ID   uint   `json:"ID"`
	Role string `json:"role"`
}

// AccessTokenValidity is the fixed validity window of an issued token.
const AccessTokenValidity = 24 * time.Hour

func CreateAccessToken(id uint, role string) (string, error) {
	signer := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), AccessTokenValidity)

	claims := AccessToken{
		ID:   id,
		Role: role,
	}

	token, err := signer.Sign(claims)
	if err != nil {
		return "", err
	}

	return string(token), nil
}
