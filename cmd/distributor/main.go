package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
	"lineblocs.com/billing/utils"
)

const resyncQueue = "subscription_resync"

var rdb *redis.Client

func main() {
	helpers.InitLogrus(utils.Config("LOG_DESTINATIONS"))
	settings := utils.LoadSettings()

	var err error
	rdb, err = utils.NewRedisClient(context.Background(), settings.RedisURL)
	if err != nil {
		logrus.Fatalf("Critical: %v", err)
	}

	c := cron.New()

	// hourly resync of every live subscription
	_, _ = c.AddFunc("@hourly", func() {
		helpers.Log(logrus.InfoLevel, "Triggering subscription resync...")
		runResyncDistributor(settings, "hourly")
	})

	if utils.Config("DISTRIBUTOR_DEBUG") == "1" {
		_, _ = c.AddFunc("* * * * *", func() {
			helpers.Log(logrus.InfoLevel, "[DEBUG] Running per-minute resync trigger...")
			runResyncDistributor(settings, "debug")
		})
	}

	helpers.Log(logrus.InfoLevel, "Subscription resync distributor started.")
	c.Start()

	select {}
}

func runResyncDistributor(settings *models.Settings, scheduleType string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	runID := uuid.NewString()
	logger := logrus.WithFields(logrus.Fields{"component": "resync_distributor", "schedule": scheduleType, "run_id": runID})

	lockKeySuffix := time.Now().UTC().Format("2006-01-02T15")
	lockTTL := 55 * time.Minute
	if scheduleType == "debug" {
		lockKeySuffix = time.Now().UTC().Format("2006-01-02T15:04")
		lockTTL = 50 * time.Second
	}
	globalLockKey := fmt.Sprintf("subscription_resync_lock:%s:%s", scheduleType, lockKeySuffix)

	// only one replica distributes per window
	locked, err := rdb.SetNX(ctx, globalLockKey, "running", lockTTL).Result()
	if err != nil || !locked {
		logger.Infof("Skip: lock %s held by another instance", globalLockKey)
		return
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Error("database connection failed")
		return
	}
	ids, err := repository.NewSubscriptionRepository(db).ListSyncableSubscriptionIDs(ctx)
	if err != nil {
		logger.WithError(err).Error("could not list subscriptions")
		return
	}

	conn, err := amqp.Dial(settings.QueueURL)
	if err != nil {
		logger.WithError(err).Error("RabbitMQ connection failed")
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.WithError(err).Error("could not open channel")
		return
	}
	defer ch.Close()

	if err := ch.Confirm(false); err != nil {
		logger.WithError(err).Error("could not enable RabbitMQ confirms")
		return
	}
	confirms := ch.NotifyPublish(make(chan amqp.Confirmation, 1))

	q, err := ch.QueueDeclare(resyncQueue, true, false, false, false, nil)
	if err != nil {
		logger.WithError(err).Error("could not declare queue")
		return
	}

	count := 0
	for _, id := range ids {
		dedupeKey := fmt.Sprintf("queued:resync:%s:%s", id, lockKeySuffix)
		if !claimDedupeKey(ctx, rdb, logger.WithField("subscription", id), dedupeKey) {
			continue
		}

		body, _ := json.Marshal(models.ResyncTask{SubscriptionID: id, RunID: runID})
		err = ch.PublishWithContext(ctx, "", q.Name, false, false, amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
		if err != nil {
			rdb.Del(ctx, dedupeKey)
			logger.WithError(err).WithField("subscription", id).Error("publish failed")
			continue
		}

		select {
		case confirmed := <-confirms:
			if !confirmed.Ack {
				rdb.Del(ctx, dedupeKey)
				logger.WithField("subscription", id).Warn("RabbitMQ NACK")
			} else {
				count++
			}
		case <-time.After(5 * time.Second):
			rdb.Del(ctx, dedupeKey)
			logger.WithField("subscription", id).Warn("timeout waiting for RabbitMQ ACK")
		}
	}

	logger.Infof("Distribution finished. Total queued: %d of %d", count, len(ids))
}

// claimDedupeKey reports whether the subscription still needs queueing in this
// window. A redis failure counts as already queued.
func claimDedupeKey(ctx context.Context, rdb *redis.Client, logger *logrus.Entry, key string) bool {
	isNew, err := rdb.SetNX(ctx, key, "true", 2*time.Hour).Result()
	if err != nil {
		logger.WithError(err).Error("could not set dedupe key, skipping")
		return false
	}
	return isNew
}
