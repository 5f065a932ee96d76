package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/openmarket/goapi/base/abi"
	bCtx "github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/service/chain"
)

// Erc721Contract is the ownership oracle for non-fungible tokens. Ownership
// and approval facts are read from the token contract; TransferFrom moves
// custody through the operator account.
type Erc721Contract interface {
	OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId domain.TokenId) (domain.Address, error)
	// IsApprovedOrOperator reports whether operator holds per-token approval
	// or blanket operator approval for the token.
	IsApprovedOrOperator(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address, tokenId domain.TokenId) (bool, error)
	TransferFrom(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, from, to domain.Address, tokenId domain.TokenId) (domain.TxHash, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, tokenId domain.TokenId) (domain.Address, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return "", err
	}
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(addr)), nil, e.abi, "ownerOf", id)
	if err != nil {
		return "", err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (e *Erc721) IsApprovedOrOperator(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, owner domain.Address, tokenId domain.TokenId) (bool, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return false, err
	}
	operator := e.chainService.Operator()
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(addr)), nil, e.abi, "getApproved", id)
	if err != nil {
		return false, err
	}
	if unpacked[0].(common.Address) == operator {
		return true, nil
	}
	unpacked, err = e.chainService.Call(ctx, int32(chainId), common.HexToAddress(string(addr)), nil, e.abi, "isApprovedForAll", common.HexToAddress(string(owner)), operator)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TransferFrom(ctx bCtx.Ctx, chainId domain.ChainId, addr domain.Address, from, to domain.Address, tokenId domain.TokenId) (domain.TxHash, error) {
	id, err := parseTokenId(tokenId)
	if err != nil {
		return "", err
	}
	hash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(string(addr)), e.abi, "safeTransferFrom",
		common.HexToAddress(string(from)), common.HexToAddress(string(to)), id)
	if err != nil {
		return "", err
	}
	return domain.TxHash(hash.Hex()), nil
}

func parseTokenId(tokenId domain.TokenId) (*big.Int, error) {
	id, ok := new(big.Int).SetString(tokenId.String(), 10)
	if !ok {
		return nil, domain.ErrBadParamInput
	}
	return id, nil
}
