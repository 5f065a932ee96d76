package notify

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/openmarket/goapi/base/ctx"
	"github.com/openmarket/goapi/domain/activity"
	"github.com/openmarket/goapi/domain/marketplace"
)

var eventToActivityType = map[marketplace.EventType]activity.Type{
	marketplace.EventItemListed:        activity.TypeList,
	marketplace.EventItemBought:        activity.TypeBuy,
	marketplace.EventItemCancelled:     activity.TypeCancelListing,
	marketplace.EventProceedsWithdrawn: activity.TypeWithdraw,
}

var eventTitles = map[marketplace.EventType]string{
	marketplace.EventItemListed:        "Item listed!",
	marketplace.EventItemBought:        "Item sold!",
	marketplace.EventItemCancelled:     "Listing cancelled",
	marketplace.EventProceedsWithdrawn: "Proceeds withdrawn",
}

type Cfg struct {
	DiscordBotKey    string
	DiscordChannelId string
	SiteUrl          string
	ActivityRepo     activity.Repo
}

type impl struct {
	cfg        Cfg
	discord    *discordgo.Session
	workerPool *goroutines.Pool
}

// New builds the production notifier. It records every event as an activity
// and pushes a discord embed from a worker pool so slow deliveries never
// block marketplace operations.
func New(cfg Cfg) (marketplace.Notifier, error) {
	var discord *discordgo.Session
	if cfg.DiscordBotKey != "" {
		d, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.DiscordBotKey))
		if err != nil {
			return nil, err
		}
		discord = d
	}
	return &impl{
		cfg:        cfg,
		discord:    discord,
		workerPool: goroutines.NewPool(8, goroutines.WithTaskQueueLength(256)),
	}, nil
}

func (im *impl) Notify(c ctx.Ctx, evt marketplace.Event) {
	act := &activity.Activity{
		Id:           uuid.NewString(),
		ChainId:      evt.ChainId,
		NftAddress:   evt.NftAddress,
		TokenId:      evt.TokenId,
		Type:         eventToActivityType[evt.Type],
		Account:      evt.Account,
		Price:        evt.Price,
		DisplayPrice: evt.Price.Display(),
		Time:         time.Now(),
	}
	if err := im.cfg.ActivityRepo.Insert(c, act); err != nil {
		c.WithField("err", err).Error("activityRepo.Insert failed")
	}

	if im.discord == nil {
		return
	}
	msg := im.buildEmbed(evt)
	err := im.workerPool.ScheduleWithTimeout(3*time.Second, func() {
		if _, err := im.discord.ChannelMessageSendEmbed(im.cfg.DiscordChannelId, msg); err != nil {
			c.WithField("err", err).Warn("discord.ChannelMessageSendEmbed failed")
		}
	})
	if err != nil {
		c.WithField("err", err).Warn("notify schedule failed")
	}
}

func (im *impl) buildEmbed(evt marketplace.Event) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Account", Value: string(evt.Account)},
	}
	if evt.NftAddress != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Token", Value: fmt.Sprintf("%s #%s", evt.NftAddress, evt.TokenId),
		})
	}
	if evt.Price != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "Price", Value: fmt.Sprintf("%s ETH", evt.Price.Display()),
		})
	}
	description := fmt.Sprintf("%s/account/%s", im.cfg.SiteUrl, evt.Account)
	if evt.NftAddress != "" {
		description = fmt.Sprintf("%s/asset/%d/%s/%s", im.cfg.SiteUrl, evt.ChainId, evt.NftAddress, evt.TokenId)
	}
	return &discordgo.MessageEmbed{
		Title:       eventTitles[evt.Type],
		Description: description,
		Fields:      fields,
	}
}
