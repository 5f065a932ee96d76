package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/go-playground/validator/v10"
	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/base/database/mongoclient"
	"github.com/openmarket/goapi/base/database/redisclient"
	"github.com/openmarket/goapi/base/log"
	"github.com/openmarket/goapi/base/metrics"
	bValidator "github.com/openmarket/goapi/base/validator"
	"github.com/openmarket/goapi/domain"
	"github.com/openmarket/goapi/domain/keys"
	mmiddleware "github.com/openmarket/goapi/middleware"
	"github.com/openmarket/goapi/service/cache"
	"github.com/openmarket/goapi/service/cache/provider"
	"github.com/openmarket/goapi/service/cache/provider/compound"
	"github.com/openmarket/goapi/service/cache/provider/primitive"
	redisprovider "github.com/openmarket/goapi/service/cache/provider/redis"
	"github.com/openmarket/goapi/service/chain"
	"github.com/openmarket/goapi/service/chain/contract"
	"github.com/openmarket/goapi/service/notify"
	"github.com/openmarket/goapi/service/payout"
	"github.com/openmarket/goapi/service/query"
	"github.com/openmarket/goapi/service/redis"
	activity_repository "github.com/openmarket/goapi/stores/activity/repository"
	auth_delivery "github.com/openmarket/goapi/stores/auth/delivery/http"
	auth_middleware "github.com/openmarket/goapi/stores/auth/delivery/http/middleware"
	auth_usecase "github.com/openmarket/goapi/stores/auth/usecase"
	hc_delivery "github.com/openmarket/goapi/stores/healthcheck/delivery/http"
	hc_repo "github.com/openmarket/goapi/stores/healthcheck/repository"
	hc_usecase "github.com/openmarket/goapi/stores/healthcheck/usecase"
	listing_repository "github.com/openmarket/goapi/stores/listing/repository"
	marketplace_delivery "github.com/openmarket/goapi/stores/marketplace/delivery/http"
	marketplace_usecase "github.com/openmarket/goapi/stores/marketplace/usecase"
	proceeds_repository "github.com/openmarket/goapi/stores/proceeds/repository"

	echoSwagger "github.com/swaggo/echo-swagger"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to the config file")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

//	@title			Open Marketplace API
//	@version		1.0
//	@description	API Document for the nft marketplace.

// main
//
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description				retrive token from #/auth/post_auth_sign and apply with `bearer {token}`
func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mustEnsureIndexes(context, mongoClient)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), redisCachePool)

	// listings are read hot on the buy path, keep them in a local cache
	// backed by redis so cache fills survive a restart
	listingCache := cache.New(cache.ServiceConfig{
		Ttl: viper.GetDuration("listingCache.ttl"),
		Pfx: keys.PfxListing,
		Cache: compound.NewCompound([]provider.Provider{
			primitive.NewPrimitive("listing", viper.GetInt("listingCache.sizeMb")),
			redisprovider.NewRedis(redisCache),
		}),
	})

	// init chain service
	networks := viper.Sub("networks")
	networkKeys := networks.AllSettings()
	rpcs := make(map[int32]string)
	for k := range networkKeys {
		chainId := networks.GetInt32(fmt.Sprintf("%s.chainId", k))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		rpcs[chainId] = rpcUrl
	}
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		RpcUrls:     rpcs,
		OperatorKey: viper.GetString("chain.operatorKey"),
	})
	if err != nil {
		context.WithField("err", err).Warn("chainService started with error")
	}
	erc721Service := contract.NewErc721(chainService)
	payoutService := payout.New(chainService)

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	listingRepo := listing_repository.NewListingRepo(q, listingCache)
	proceedsRepo := proceeds_repository.NewProceedsRepo(q)
	activityRepo := activity_repository.NewActivityRepo(q)

	hc := hc_usecase.New(hcRepo)
	notifier, err := notify.New(notify.Cfg{
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
		SiteUrl:          viper.GetString("siteUrl"),
		ActivityRepo:     activityRepo,
	})
	if err != nil {
		context.WithField("err", err).Panic("init notifier failed")
	}

	chainId := domain.ChainId(viper.GetInt32("chain.chainId"))
	marketplaceUC := marketplace_usecase.NewMarketplace(&marketplace_usecase.MarketplaceUseCaseCfg{
		ChainId:      chainId,
		ListingRepo:  listingRepo,
		ProceedsRepo: proceedsRepo,
		Erc721:       erc721Service,
		Payout:       payoutService,
		Notifier:     notifier,
	})
	auth := auth_usecase.New(viper.GetString("auth.jwtSecret"), viper.GetString("auth.signatureMsg"), redisCache)

	authMiddleware := auth_middleware.New(auth)

	hc_delivery.New(e, hc)
	auth_delivery.New(e, auth, viper.GetString("auth.signatureMsg"))
	marketplace_delivery.New(e, chainId, marketplaceUC, activityRepo, authMiddleware)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}

// mustEnsureIndexes creates the indexes the marketplace depends on. The
// unique listing index is load bearing, it backs the one-listing-per-token
// invariant under concurrent writes.
func mustEnsureIndexes(context ctx.Ctx, client *mongoclient.Client) {
	unique := true
	db := client.Database(client.DbName)

	_, err := db.Collection(string(domain.TableListings)).Indexes().CreateOne(context, mongo.IndexModel{
		Keys:    bson.D{{Key: "chainId", Value: 1}, {Key: "nftAddress", Value: 1}, {Key: "tokenId", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	if err != nil {
		context.WithField("err", err).Panic("create listing index failed")
	}

	_, err = db.Collection(string(domain.TableProceeds)).Indexes().CreateOne(context, mongo.IndexModel{
		Keys:    bson.D{{Key: "address", Value: 1}},
		Options: &options.IndexOptions{Unique: &unique},
	})
	if err != nil {
		context.WithField("err", err).Panic("create proceeds index failed")
	}

	_, err = db.Collection(string(domain.TableActivities)).Indexes().CreateOne(context, mongo.IndexModel{
		Keys: bson.D{{Key: "chainId", Value: 1}, {Key: "nftAddress", Value: 1}, {Key: "tokenId", Value: 1}, {Key: "time", Value: -1}},
	})
	if err != nil {
		context.WithField("err", err).Panic("create activity index failed")
	}
}
