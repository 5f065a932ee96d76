package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/listing"
	mockListing "github.com/openmarket/goapi/domain/listing/mocks"
	"github.com/openmarket/goapi/domain/marketplace"
	mockMarketplace "github.com/openmarket/goapi/domain/marketplace/mocks"
	"github.com/openmarket/goapi/domain/proceeds"
	mockProceeds "github.com/openmarket/goapi/domain/proceeds/mocks"
	mockContract "github.com/openmarket/goapi/service/chain/contract/mocks"
	mockPayout "github.com/openmarket/goapi/service/payout/mocks"
)

var (
	mockCtx = ctx.Background()

	chainId = domain.ChainId(1)
	nftAddr = domain.Address("0x92b8e2a18b5ea2b4b7f27ae4a6f4a1cc0cd1ce34")
	seller  = domain.Address("0x2d7515f07f3b54d8c1be3b1ddc9b828e85bb9f4f")
	buyer   = domain.Address("0x7c9e161ebe0ff0b7cb9f5d5b4a3e62a9e8cdb467")

	tokenId = domain.TokenId("1")
	oneEth  = domain.TokenAmount("1000000000000000000")
	twoEth  = domain.TokenAmount("2000000000000000000")

	errBoom = errors.New("boom")
)

type testsuite struct {
	suite.Suite
	mockListings *mockListing.Repo
	mockProceeds *mockProceeds.Repo
	mockErc721   *mockContract.Erc721Contract
	mockPayout   *mockPayout.Service
	mockNotifier *mockMarketplace.Notifier
	subject      *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockListings = &mockListing.Repo{}
	t.mockProceeds = &mockProceeds.Repo{}
	t.mockErc721 = &mockContract.Erc721Contract{}
	t.mockPayout = &mockPayout.Service{}
	t.mockNotifier = &mockMarketplace.Notifier{}
	t.subject = &impl{
		chainId:      chainId,
		listingRepo:  t.mockListings,
		proceedsRepo: t.mockProceeds,
		erc721:       t.mockErc721,
		payout:       t.mockPayout,
		notifier:     t.mockNotifier,
	}
}

func (t *testsuite) listingId() listing.ListingId {
	return listing.ListingId{ChainId: chainId, NftAddress: nftAddr, TokenId: tokenId}
}

func (t *testsuite) activeListing(price domain.TokenAmount) *listing.Listing {
	return &listing.Listing{
		ChainId:    chainId,
		NftAddress: nftAddr,
		TokenId:    tokenId,
		Seller:     seller,
		Price:      price,
	}
}

func (t *testsuite) TestList() {
	id := t.listingId()

	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)
	t.mockErc721.On("OwnerOf", mockCtx, chainId, nftAddr, tokenId).Return(seller, nil)
	t.mockErc721.On("IsApprovedOrOperator", mockCtx, chainId, nftAddr, seller, tokenId).Return(true, nil)
	t.mockListings.On("Create", mockCtx, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Seller == seller && l.Price == oneEth && l.NftAddress == nftAddr
	})).Return(nil)
	t.mockNotifier.On("Notify", mockCtx, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventItemListed && evt.Price == oneEth && evt.Account == seller
	})).Return()

	t.NoError(t.subject.List(mockCtx, id, oneEth, seller))
	t.mockListings.AssertExpectations(t.T())
	t.mockNotifier.AssertExpectations(t.T())
}

func (t *testsuite) TestListZeroPrice() {
	err := t.subject.List(mockCtx, t.listingId(), domain.TokenAmount("0"), seller)
	t.Equal(domain.ErrPriceMustBeAboveZero, err)
	t.mockListings.AssertNotCalled(t.T(), "Create", mock.Anything, mock.Anything)
}

func (t *testsuite) TestListBadAmount() {
	err := t.subject.List(mockCtx, t.listingId(), domain.TokenAmount("1.5e18"), seller)
	t.Equal(domain.ErrInvalidAmountFormat, err)
}

func (t *testsuite) TestListAlreadyListed() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)

	err := t.subject.List(mockCtx, id, oneEth, seller)
	t.Equal(domain.ErrAlreadyListed, err)
	t.mockErc721.AssertNotCalled(t.T(), "OwnerOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestListNotOwner() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)
	t.mockErc721.On("OwnerOf", mockCtx, chainId, nftAddr, tokenId).Return(seller, nil)

	err := t.subject.List(mockCtx, id, oneEth, buyer)
	t.Equal(domain.ErrNotOwner, err)
	t.mockListings.AssertNotCalled(t.T(), "Create", mock.Anything, mock.Anything)
}

func (t *testsuite) TestListNotApproved() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)
	t.mockErc721.On("OwnerOf", mockCtx, chainId, nftAddr, tokenId).Return(seller, nil)
	t.mockErc721.On("IsApprovedOrOperator", mockCtx, chainId, nftAddr, seller, tokenId).Return(false, nil)

	err := t.subject.List(mockCtx, id, oneEth, seller)
	t.Equal(domain.ErrNotApprovedForMarketplace, err)
	t.mockListings.AssertNotCalled(t.T(), "Create", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuy() {
	id := t.listingId()
	var order []string

	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)
	t.mockListings.On("Remove", mockCtx, id).Run(func(mock.Arguments) {
		order = append(order, "remove")
	}).Return(nil)
	t.mockProceeds.On("Credit", mockCtx, seller, oneEth).Run(func(mock.Arguments) {
		order = append(order, "credit")
	}).Return(nil)
	t.mockErc721.On("TransferFrom", mockCtx, chainId, nftAddr, seller, buyer, tokenId).Run(func(mock.Arguments) {
		order = append(order, "transfer")
	}).Return(domain.TxHash("0xdead"), nil)
	t.mockNotifier.On("Notify", mockCtx, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventItemBought && evt.Account == buyer && evt.Price == oneEth
	})).Return()

	t.NoError(t.subject.Buy(mockCtx, id, oneEth, buyer))
	// the listing must be gone and the seller credited before custody moves
	t.Equal([]string{"remove", "credit", "transfer"}, order)
	t.mockNotifier.AssertExpectations(t.T())
}

func (t *testsuite) TestBuyPriceNotMet() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(twoEth), nil)

	for _, payment := range []domain.TokenAmount{oneEth, domain.TokenAmount("3000000000000000000")} {
		err := t.subject.Buy(mockCtx, id, payment, buyer)
		t.True(domain.IsPriceNotMet(err))

		var pErr *domain.PriceNotMetError
		t.True(errors.As(err, &pErr))
		t.Equal(twoEth, pErr.Expected)
	}
	t.mockListings.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuyNotListed() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)

	err := t.subject.Buy(mockCtx, id, oneEth, buyer)
	t.Equal(domain.ErrNotListed, err)
}

func (t *testsuite) TestBuyKeepsProceedsWhenTransferFails() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)
	t.mockListings.On("Remove", mockCtx, id).Return(nil)
	t.mockProceeds.On("Credit", mockCtx, seller, oneEth).Return(nil)
	t.mockErc721.On("TransferFrom", mockCtx, chainId, nftAddr, seller, buyer, tokenId).Return(domain.TxHash(""), errBoom)

	err := t.subject.Buy(mockCtx, id, oneEth, buyer)
	t.Equal(errBoom, err)
	// the credit stays on the ledger, only the custody transfer is retried
	t.mockProceeds.AssertNumberOfCalls(t.T(), "Credit", 1)
	t.mockProceeds.AssertNotCalled(t.T(), "Zero", mock.Anything, mock.Anything)
	t.mockNotifier.AssertNotCalled(t.T(), "Notify", mock.Anything, mock.Anything)
}

func (t *testsuite) TestBuyRestoresListingWhenCreditFails() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)
	t.mockListings.On("Remove", mockCtx, id).Return(nil)
	t.mockProceeds.On("Credit", mockCtx, seller, oneEth).Return(errBoom)
	t.mockListings.On("Create", mockCtx, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Seller == seller && l.Price == oneEth && l.NftAddress == nftAddr
	})).Return(nil)

	err := t.subject.Buy(mockCtx, id, oneEth, buyer)
	t.Equal(errBoom, err)
	// the removed listing comes back when the seller could not be credited
	t.mockListings.AssertCalled(t.T(), "Create", mockCtx, mock.Anything)
	t.mockErc721.AssertNotCalled(t.T(), "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	t.mockNotifier.AssertNotCalled(t.T(), "Notify", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancel() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)
	t.mockListings.On("Remove", mockCtx, id).Return(nil)
	t.mockNotifier.On("Notify", mockCtx, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventItemCancelled && evt.Account == seller
	})).Return()

	t.NoError(t.subject.Cancel(mockCtx, id, seller))
	t.mockListings.AssertExpectations(t.T())
}

func (t *testsuite) TestCancelNotSeller() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)

	err := t.subject.Cancel(mockCtx, id, buyer)
	t.Equal(domain.ErrNotOwner, err)
	t.mockListings.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCancelNotListed() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)

	err := t.subject.Cancel(mockCtx, id, seller)
	t.Equal(domain.ErrNotListed, err)
}

func (t *testsuite) TestUpdateListing() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)
	t.mockListings.On("Patch", mockCtx, id, mock.MatchedBy(func(p listing.PatchableListing) bool {
		return p.Price != nil && *p.Price == twoEth
	})).Return(nil)
	t.mockNotifier.On("Notify", mockCtx, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventItemListed && evt.Price == twoEth && evt.Account == seller
	})).Return()

	t.NoError(t.subject.UpdateListing(mockCtx, id, twoEth, seller))
	t.mockListings.AssertExpectations(t.T())
	t.mockNotifier.AssertExpectations(t.T())
}

func (t *testsuite) TestUpdateListingZeroPrice() {
	err := t.subject.UpdateListing(mockCtx, t.listingId(), domain.TokenAmount("0"), seller)
	t.Equal(domain.ErrPriceMustBeAboveZero, err)
	t.mockListings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestUpdateListingNotSeller() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(t.activeListing(oneEth), nil)

	err := t.subject.UpdateListing(mockCtx, id, twoEth, buyer)
	t.Equal(domain.ErrNotOwner, err)
	t.mockListings.AssertNotCalled(t.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestWithdraw() {
	t.mockProceeds.On("Get", mockCtx, seller).Return(&proceeds.Proceeds{Address: seller, Balance: twoEth}, nil)
	t.mockProceeds.On("Zero", mockCtx, seller).Return(twoEth, nil)
	t.mockPayout.On("Send", mockCtx, chainId, seller, twoEth).Return(domain.TxHash("0xbeef"), nil)
	t.mockNotifier.On("Notify", mockCtx, mock.MatchedBy(func(evt marketplace.Event) bool {
		return evt.Type == marketplace.EventProceedsWithdrawn && evt.Account == seller && evt.Price == twoEth
	})).Return()

	amount, err := t.subject.Withdraw(mockCtx, seller)
	t.NoError(err)
	t.Equal(twoEth, amount)
	t.mockProceeds.AssertExpectations(t.T())
	t.mockNotifier.AssertExpectations(t.T())
}

func (t *testsuite) TestWithdrawNoProceeds() {
	t.mockProceeds.On("Get", mockCtx, buyer).Return(&proceeds.Proceeds{Address: buyer, Balance: "0"}, nil)

	_, err := t.subject.Withdraw(mockCtx, buyer)
	t.Equal(domain.ErrNoProceeds, err)
	t.mockPayout.AssertNotCalled(t.T(), "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestWithdrawRestoresBalanceWhenPayoutFails() {
	t.mockProceeds.On("Get", mockCtx, seller).Return(&proceeds.Proceeds{Address: seller, Balance: twoEth}, nil)
	t.mockProceeds.On("Zero", mockCtx, seller).Return(twoEth, nil)
	t.mockPayout.On("Send", mockCtx, chainId, seller, twoEth).Return(domain.TxHash(""), errBoom)
	t.mockProceeds.On("Credit", mockCtx, seller, twoEth).Return(nil)

	_, err := t.subject.Withdraw(mockCtx, seller)
	t.Equal(errBoom, err)
	t.mockProceeds.AssertCalled(t.T(), "Credit", mockCtx, seller, twoEth)
	t.mockNotifier.AssertNotCalled(t.T(), "Notify", mock.Anything, mock.Anything)
}

func (t *testsuite) TestGetListing() {
	id := t.listingId()
	l := t.activeListing(oneEth)
	t.mockListings.On("FindOne", mockCtx, id).Return(l, nil)

	res, err := t.subject.GetListing(mockCtx, id)
	t.NoError(err)
	t.Equal(l, res)
}

func (t *testsuite) TestGetListingAbsent() {
	id := t.listingId()
	t.mockListings.On("FindOne", mockCtx, id).Return(nil, domain.ErrNotListed)

	res, err := t.subject.GetListing(mockCtx, id)
	t.NoError(err)
	t.Equal(domain.Address(""), res.Seller)
	t.Equal(domain.TokenAmount("0"), res.Price)
	t.Equal(nftAddr, res.NftAddress)
}

func (t *testsuite) TestGetProceeds() {
	t.mockProceeds.On("Get", mockCtx, seller).Return(&proceeds.Proceeds{Address: seller, Balance: oneEth}, nil)

	balance, err := t.subject.GetProceeds(mockCtx, seller)
	t.NoError(err)
	t.Equal(oneEth, balance)
}
