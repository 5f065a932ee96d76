package notify

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/activity"
	mockActivity "github.com/openmarket/goapi/domain/activity/mocks"
	"github.com/openmarket/goapi/domain/marketplace"
)

var (
	mockCtx = ctx.Background()

	nftAddr = domain.Address("0x92b8e2a18b5ea2b4b7f27ae4a6f4a1cc0cd1ce34")
	account = domain.Address("0x2d7515f07f3b54d8c1be3b1ddc9b828e85bb9f4f")
	oneEth  = domain.TokenAmount("1000000000000000000")
)

type testsuite struct {
	suite.Suite
	activities *mockActivity.Repo
	subject    *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.activities = &mockActivity.Repo{}
	n, err := New(Cfg{SiteUrl: "https://market.example", ActivityRepo: t.activities})
	t.Require().NoError(err)
	t.subject = n.(*impl)
}

func (t *testsuite) TestNotifyRecordsActivity() {
	cases := []struct {
		evtType marketplace.EventType
		actType activity.Type
	}{
		{marketplace.EventItemListed, activity.TypeList},
		{marketplace.EventItemBought, activity.TypeBuy},
		{marketplace.EventItemCancelled, activity.TypeCancelListing},
	}
	for _, c := range cases {
		want := c.actType
		t.activities.On("Insert", mockCtx, mock.MatchedBy(func(a *activity.Activity) bool {
			return a.Type == want && a.Account == account && a.NftAddress == nftAddr
		})).Return(nil).Once()

		t.subject.Notify(mockCtx, marketplace.Event{
			Type:       c.evtType,
			Account:    account,
			ChainId:    1,
			NftAddress: nftAddr,
			TokenId:    "1",
			Price:      oneEth,
		})
	}
	t.activities.AssertExpectations(t.T())
}

func (t *testsuite) TestNotifyWithdrawal() {
	t.activities.On("Insert", mockCtx, mock.MatchedBy(func(a *activity.Activity) bool {
		return a.Type == activity.TypeWithdraw && a.Account == account &&
			a.NftAddress == "" && a.Price == oneEth && a.DisplayPrice == "1"
	})).Return(nil).Once()

	t.subject.Notify(mockCtx, marketplace.Event{
		Type:    marketplace.EventProceedsWithdrawn,
		Account: account,
		ChainId: 1,
		Price:   oneEth,
	})
	t.activities.AssertExpectations(t.T())
}

func (t *testsuite) TestBuildEmbed() {
	embed := t.subject.buildEmbed(marketplace.Event{
		Type:       marketplace.EventItemBought,
		Account:    account,
		ChainId:    1,
		NftAddress: nftAddr,
		TokenId:    "1",
		Price:      oneEth,
	})
	t.Equal("Item sold!", embed.Title)
	t.Equal("https://market.example/asset/1/"+string(nftAddr)+"/1", embed.Description)
	t.Len(embed.Fields, 3)

	// account scoped event, no token to link
	embed = t.subject.buildEmbed(marketplace.Event{
		Type:    marketplace.EventProceedsWithdrawn,
		Account: account,
		ChainId: 1,
		Price:   oneEth,
	})
	t.Equal("Proceeds withdrawn", embed.Title)
	t.Equal("https://market.example/account/"+string(account), embed.Description)
	t.Len(embed.Fields, 2)
}
