package usecase_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/service/redis"
	mRedis "github.com/openmarket/goapi/service/redis/mocks"
	"github.com/openmarket/goapi/stores/auth/usecase"
)

const signatureMsg = "Welcome! Sign this message to login. Nonce: %s"

func TestSignAndParseToken(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	nonce := "my-nonce"
	msg := []byte(fmt.Sprintf(signatureMsg, nonce))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	assert.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	mockRedis := &mRedis.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte(nonce), nil)
	mockRedis.On("Del", mock.Anything, mock.Anything).Return(1, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signatureMsg, mockRedis)
	tkn, err := u.SignToken(ctx, domain.Address(address), hexutil.Encode(sig))
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)

	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, string(domain.Address(address).ToLower()), ads)
}

func TestSignTokenWithoutNonce(t *testing.T) {
	mockRedis := &mRedis.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return(nil, redis.ErrNotFound)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signatureMsg, mockRedis)
	_, err := u.SignToken(ctx, "0x2d7515f07f3b54d8c1be3b1ddc9b828e85bb9f4f", "0xdeadbeef")
	assert.Equal(t, domain.ErrInvalidNonce, err)
}

func TestSignTokenWithBadSignature(t *testing.T) {
	key, err := crypto.GenerateKey()
	assert.NoError(t, err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()

	// signed over a different nonce than the stored one
	msg := []byte(fmt.Sprintf(signatureMsg, "stale-nonce"))
	sig, err := crypto.Sign(accounts.TextHash(msg), key)
	assert.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27

	mockRedis := &mRedis.Service{}
	mockRedis.On("Get", mock.Anything, mock.Anything).Return([]byte("fresh-nonce"), nil)
	mockRedis.On("Del", mock.Anything, mock.Anything).Return(1, nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signatureMsg, mockRedis)
	_, err = u.SignToken(ctx, domain.Address(address), hexutil.Encode(sig))
	assert.Equal(t, domain.ErrInvalidSignature, err)

	// the nonce is burned even on a failed attempt
	mockRedis.AssertCalled(t, "Del", mock.Anything, mock.Anything)
}

func TestGetNonce(t *testing.T) {
	mockRedis := &mRedis.Service{}
	mockRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	ctx := ctx.Background()
	u := usecase.New("jwt-secret", signatureMsg, mockRedis)
	nonce, err := u.GetNonce(ctx, "0x2d7515f07f3b54d8c1be3b1ddc9b828e85bb9f4f")
	assert.NoError(t, err)
	assert.NotEmpty(t, nonce)
}
