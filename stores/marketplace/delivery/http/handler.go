package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/delivery"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/activity"
	"github.com/openmarket/goapi/domain/listing"
	"github.com/openmarket/goapi/domain/marketplace"
	"github.com/openmarket/goapi/middleware"
	authMiddleware "github.com/openmarket/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	chainId      domain.ChainId
	marketplace  marketplace.Usecase
	activityRepo activity.Repo
}

// New hangs the marketplace routes off the echo instance. Mutating routes
// require an authenticated caller; the caller address always comes from the
// access token, never from the request body.
func New(
	e *echo.Echo,
	chainId domain.ChainId,
	marketplaceUC marketplace.Usecase,
	activityRepo activity.Repo,
	authMw *authMiddleware.AuthMiddleware,
) {
	h := &handler{chainId: chainId, marketplace: marketplaceUC, activityRepo: activityRepo}

	g := e.Group("/marketplace")
	g.POST("/listings", h.listItem, authMw.Auth())
	g.GET("/listings/:nftAddress/:tokenId", h.getListing, middleware.IsValidAddress("nftAddress"))
	g.PATCH("/listings/:nftAddress/:tokenId", h.updateListing, authMw.Auth(), middleware.IsValidAddress("nftAddress"))
	g.DELETE("/listings/:nftAddress/:tokenId", h.cancelListing, authMw.Auth(), middleware.IsValidAddress("nftAddress"))
	g.POST("/listings/:nftAddress/:tokenId/buy", h.buyItem, authMw.Auth(), middleware.IsValidAddress("nftAddress"))
	g.GET("/proceeds/:account", h.getProceeds, middleware.IsValidAddress("account"))
	g.POST("/proceeds/withdraw", h.withdraw, authMw.Auth())
	g.GET("/activities/:nftAddress/:tokenId", h.getActivities, middleware.IsValidAddress("nftAddress"))
}

func (h *handler) listingId(c echo.Context) listing.ListingId {
	return listing.ListingId{
		ChainId:    h.chainId,
		NftAddress: domain.Address(c.Param("nftAddress")).ToLower(),
		TokenId:    domain.TokenId(c.Param("tokenId")),
	}
}

// listItem
//
//	@Description	List an owned nft at a fixed price
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.listItem.params	true	"params"
//	@Success		201		{object}	listing.Listing
//	@Failure		400
//	@Failure		403
//	@Failure		409
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings [post]
func (h *handler) listItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		NftAddress domain.Address     `json:"nftAddress" validate:"required"`
		TokenId    domain.TokenId     `json:"tokenId" validate:"required"`
		Price      domain.TokenAmount `json:"price" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	id := listing.ListingId{
		ChainId:    h.chainId,
		NftAddress: p.NftAddress.ToLower(),
		TokenId:    p.TokenId,
	}
	if err := h.marketplace.List(ctx, id, p.Price, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	res, err := h.marketplace.GetListing(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// getListing
//
//	@Description	Get the active listing, zero listing when absent
//	@Tags			marketplace
//	@Produce		json
//	@Param			nftAddress	path		string	true	"nft contract address"
//	@Param			tokenId		path		string	true	"token id"
//	@Success		200			{object}	listing.Listing
//	@Router			/marketplace/listings/{nftAddress}/{tokenId} [get]
func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	res, err := h.marketplace.GetListing(ctx, h.listingId(c))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// updateListing
//
//	@Description	Change the price of an active listing, seller only
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			nftAddress	path	string						true	"nft contract address"
//	@Param			tokenId		path	string						true	"token id"
//	@Param			params		body	http.updateListing.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		403
//	@Failure		404
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{nftAddress}/{tokenId} [patch]
func (h *handler) updateListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Price domain.TokenAmount `json:"price" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.UpdateListing(ctx, h.listingId(c), p.Price, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// cancelListing
//
//	@Description	Cancel an active listing, seller only
//	@Tags			marketplace
//	@Produce		json
//	@Param			nftAddress	path	string	true	"nft contract address"
//	@Param			tokenId		path	string	true	"token id"
//	@Success		200
//	@Failure		403
//	@Failure		404
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{nftAddress}/{tokenId} [delete]
func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	if err := h.marketplace.Cancel(ctx, h.listingId(c), caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// buyItem
//
//	@Description	Buy a listed nft by paying exactly the listed price
//	@Tags			marketplace
//	@Accept			json
//	@Produce		json
//	@Param			nftAddress	path	string				true	"nft contract address"
//	@Param			tokenId		path	string				true	"token id"
//	@Param			params		body	http.buyItem.params	true	"params"
//	@Success		200
//	@Failure		400
//	@Failure		404
//	@Security		ApiKeyAuth
//	@Router			/marketplace/listings/{nftAddress}/{tokenId}/buy [post]
func (h *handler) buyItem(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		Payment domain.TokenAmount `json:"payment" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.Buy(ctx, h.listingId(c), p.Payment, caller); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// getProceeds
//
//	@Description	Get withdrawable proceeds of an address
//	@Tags			marketplace
//	@Produce		json
//	@Param			account	path		string	true	"address"
//	@Success		200		{object}	object{balance=string}
//	@Router			/marketplace/proceeds/{account} [get]
func (h *handler) getProceeds(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	account := domain.Address(c.Param("account")).ToLower()

	balance, err := h.marketplace.GetProceeds(ctx, account)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	res := struct {
		Balance        domain.TokenAmount `json:"balance"`
		DisplayBalance string             `json:"displayBalance"`
	}{balance, balance.Display()}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// withdraw
//
//	@Description	Withdraw all accumulated proceeds to the caller
//	@Tags			marketplace
//	@Produce		json
//	@Success		200	{object}	object{amount=string}
//	@Failure		400
//	@Security		ApiKeyAuth
//	@Router			/marketplace/proceeds/withdraw [post]
func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	amount, err := h.marketplace.Withdraw(ctx, caller)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	res := struct {
		Amount domain.TokenAmount `json:"amount"`
	}{amount}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// getActivities
//
//	@Description	Get marketplace history of one token, newest first
//	@Tags			marketplace
//	@Produce		json
//	@Param			nftAddress	path		string	true	"nft contract address"
//	@Param			tokenId		path		string	true	"token id"
//	@Param			offset		query		int		false	"paging offset"
//	@Param			limit		query		int		false	"paging limit"
//	@Success		200			{object}	[]activity.Activity
//	@Router			/marketplace/activities/{nftAddress}/{tokenId} [get]
func (h *handler) getActivities(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 || limit > 100 {
		limit = 20
	}

	res, err := h.activityRepo.FindByToken(ctx, h.listingId(c), offset, limit)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
