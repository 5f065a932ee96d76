package domain

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

// TokenAmount is a raw native-currency amount in wei, kept as a decimal
// string so it survives json/bson round trips without precision loss.
type TokenAmount string

const nativeDecimals = 18

func (a TokenAmount) BigInt() (*big.Int, error) {
	n, ok := new(big.Int).SetString(string(a), 10)
	if !ok || n.Sign() < 0 {
		return nil, ErrInvalidAmountFormat
	}
	return n, nil
}

func (a TokenAmount) IsPositive() bool {
	n, err := a.BigInt()
	return err == nil && n.Sign() > 0
}

func (a TokenAmount) Equals(b TokenAmount) bool {
	x, err := a.BigInt()
	if err != nil {
		return false
	}
	y, err := b.BigInt()
	if err != nil {
		return false
	}
	return x.Cmp(y) == 0
}

func (a TokenAmount) Add(b TokenAmount) (TokenAmount, error) {
	x, err := a.BigInt()
	if err != nil {
		return "", err
	}
	y, err := b.BigInt()
	if err != nil {
		return "", err
	}
	return TokenAmount(new(big.Int).Add(x, y).String()), nil
}

// Display renders the wei amount in whole native units for api responses.
func (a TokenAmount) Display() string {
	n, err := a.BigInt()
	if err != nil {
		return ""
	}
	return decimal.NewFromBigInt(n, -nativeDecimals).String()
}

type TxHash string

type BlockNumber uint64
