package payout

import (
	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/service/chain"
	"golang.org/x/xerrors"
)

// Service releases native currency held by the marketplace to a recipient.
type Service interface {
	Send(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount domain.TokenAmount) (domain.TxHash, error)
}

type impl struct {
	chainService chain.Client
}

func New(chainService chain.Client) Service {
	return &impl{chainService: chainService}
}

func (im *impl) Send(ctx bCtx.Ctx, chainId domain.ChainId, to domain.Address, amount domain.TokenAmount) (domain.TxHash, error) {
	value, err := amount.BigInt()
	if err != nil {
		ctx.WithField("err", err).Error("amount.BigInt failed")
		return "", err
	}
	hash, err := im.chainService.SendValue(ctx, int32(chainId), common.HexToAddress(string(to)), value)
	if err != nil {
		return "", xerrors.Errorf("failed to send payout to %s: %w", to, err)
	}
	return domain.TxHash(hash.Hex()), nil
}
