package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/ethereum"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/keys"
	"github.com/openmarket/goapi/service/redis"
)

const (
	nonceTTL = 10 * time.Minute
	tokenTTL = 24 * time.Hour
)

type impl struct {
	jwtSecret    []byte
	signatureMsg string
	redis        redis.Service
}

func New(jwtSecret, signatureMsg string, redis redis.Service) domain.AuthUsecase {
	return &impl{
		jwtSecret:    []byte(jwtSecret),
		signatureMsg: signatureMsg,
		redis:        redis,
	}
}

func (im *impl) GetNonce(ctx ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	key := keys.RedisKey(keys.PfxNonce, string(address.ToLower()))
	if err := im.redis.Set(ctx, key, []byte(nonce), nonceTTL); err != nil {
		ctx.WithField("err", err).Error("store nonce failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignToken(ctx ctx.Ctx, address domain.Address, signature string) (string, error) {
	key := keys.RedisKey(keys.PfxNonce, string(address.ToLower()))
	nonce, err := im.redis.Get(ctx, key)
	if err == redis.ErrNotFound {
		return "", domain.ErrInvalidNonce
	} else if err != nil {
		ctx.WithField("err", err).Error("get nonce failed")
		return "", err
	}

	// a nonce is good for a single attempt no matter the outcome
	defer im.redis.Del(ctx, key)

	msg := []byte(fmt.Sprintf(im.signatureMsg, nonce))
	if isValid, err := ethereum.ValidateMsgSignature(msg, signature, string(address)); err != nil {
		ctx.WithField("err", err).Error("ValidateMsgSignature failed")
		return "", domain.ErrInvalidSignature
	} else if !isValid {
		return "", domain.ErrInvalidSignature
	}

	claims := domain.JwtCustomClaims{
		Address: string(address.ToLower()),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	if ss, err := token.SignedString(im.jwtSecret); err != nil {
		ctx.WithField("err", err).Error("token.SignedString failed")
		return "", err
	} else {
		return ss, nil
	}
}

func (im *impl) ParseToken(ctx ctx.Ctx, str string) (string, error) {
	token, err := jwt.ParseWithClaims(str, &domain.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*domain.JwtCustomClaims); ok && token.Valid {
		return claims.Address, nil
	}

	return "", domain.ErrInvalidSignature
}
