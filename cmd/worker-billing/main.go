package main

import (
	"context"
	"encoding/json"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
	"lineblocs.com/billing/cmd"
	billing "lineblocs.com/billing/handlers/billing"
	"lineblocs.com/billing/internal/events"
	"lineblocs.com/billing/internal/notify"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/internal/storage"
	"lineblocs.com/billing/models"
	"lineblocs.com/billing/repository"
	"lineblocs.com/billing/utils"
)

const (
	eventQueue  = "billing_events"
	resyncQueue = "subscription_resync"
)

func main() {
	helpers.InitLogrus(utils.Config("LOG_DESTINATIONS"))
	settings := utils.LoadSettings()
	logger := logrus.WithField("component", "worker_billing")

	db, err := utils.GetDBConnection()
	if err != nil {
		logger.WithError(err).Fatal("database connection failed")
	}
	orgRepo := repository.NewOrganizationRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	schedRepo := repository.NewScheduleRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	reconciler := reconcile.NewReconciler(subRepo, schedRepo, priceRepo)

	var opts []events.Option
	if rdb, err := utils.NewRedisClient(context.Background(), settings.RedisURL); err != nil {
		logger.WithError(err).Warn("running without event ledger, duplicate deliveries will be reprocessed")
	} else {
		opts = append(opts, events.WithLedger(events.NewRedisLedger(rdb)))
	}
	if settings.GetS3Bucket() != "" {
		archive, err := storage.NewS3EventArchive(settings)
		if err != nil {
			logger.WithError(err).Warn("failed events will not be archived")
		} else {
			opts = append(opts, events.WithArchive(archive))
		}
	}
	if settings.MailgunDomain != "" && settings.AlertEmailTo != "" {
		alerter := notify.NewMailgunAlerter(settings.MailgunDomain, settings.MailgunAPIKey)
		opts = append(opts, events.WithAlerter(alerter, settings.AlertEmailFrom, settings.AlertEmailTo))
	}
	dispatcher := events.NewDispatcher(reconciler, orgRepo, priceRepo, opts...)
	resync := cmd.NewResyncJob(subRepo, billing.NewStripeBillingHandler(settings.StripeSecretKey), reconciler)

	conn, err := amqp.Dial(settings.QueueURL)
	if err != nil {
		panic(err)
	}
	defer conn.Close()
	ch, err := conn.Channel()
	if err != nil {
		panic(err)
	}
	defer ch.Close()

	// Prefetch(1) ensures the worker doesn't hog all tasks if one is slow
	ch.Qos(1, 0, false)
	for _, name := range []string{eventQueue, resyncQueue} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			panic(err)
		}
	}
	eventMsgs, err := ch.Consume(eventQueue, "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}
	taskMsgs, err := ch.Consume(resyncQueue, "", false, false, false, false, nil)
	if err != nil {
		panic(err)
	}

	helpers.Log(logrus.InfoLevel, "Billing worker ready. Waiting for events and resync tasks...")

	for {
		select {
		case d, ok := <-eventMsgs:
			if !ok {
				return
			}
			handleEvent(dispatcher, d)
		case d, ok := <-taskMsgs:
			if !ok {
				return
			}
			handleResyncTask(resync, d)
		}
	}
}

func handleEvent(dispatcher *events.Dispatcher, d amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ack, err := dispatcher.Dispatch(ctx, d.Body)
	if err != nil {
		// a body that is not an event will never succeed
		logrus.WithError(err).WithField("payload", string(d.Body)).Error("rejecting malformed billing event")
		d.Nack(false, false)
		return
	}
	if ack.Error != "" {
		helpers.Log(logrus.WarnLevel, "acknowledged failed event "+ack.EventID)
	}
	d.Ack(false)
}

func handleResyncTask(resync *cmd.ResyncJob, d amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var task models.ResyncTask
	if err := json.Unmarshal(d.Body, &task); err != nil || task.SubscriptionID == "" {
		logrus.WithField("payload", string(d.Body)).Error("rejecting malformed resync task")
		d.Nack(false, false)
		return
	}

	if err := resync.SyncSubscription(ctx, task.SubscriptionID); err != nil {
		// the next distributor run picks it up again
		logrus.WithError(err).WithFields(logrus.Fields{"subscription": task.SubscriptionID, "run": task.RunID}).Error("resync task failed")
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}
