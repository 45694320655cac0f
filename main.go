package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	helpers "github.com/Lineblocs/go-helpers"
	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	cmd "lineblocs.com/billing/cmd"
	billinghandler "lineblocs.com/billing/handlers/billing"
	"lineblocs.com/billing/internal/billing"
	"lineblocs.com/billing/internal/reconcile"
	"lineblocs.com/billing/repository"
	"lineblocs.com/billing/utils"
)

func main() {
	var err error

	logDestination := utils.Config("LOG_DESTINATIONS")
	helpers.InitLogrus(logDestination)

	args := os.Args[1:]
	if len(args) == 0 {
		helpers.Log(logrus.InfoLevel, "Please provide command")
		return
	}
	settings := utils.LoadSettings()
	ctx := context.Background()

	db, err := utils.GetDBConnection()
	if err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
		os.Exit(1)
	}
	orgRepo := repository.NewOrganizationRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	schedRepo := repository.NewScheduleRepository(db)
	priceRepo := repository.NewPriceRepository(db)
	stripeHandler := billinghandler.NewStripeBillingHandler(settings.StripeSecretKey)

	command := args[0]
	switch command {
	case "resync_subscriptions":
		helpers.Log(logrus.InfoLevel, "resyncing subscriptions from stripe")
		job := cmd.NewResyncJob(subRepo, stripeHandler, reconcile.NewReconciler(subRepo, schedRepo, priceRepo))
		_, err = job.Run(ctx)
	case "resync_subscription":
		if len(args) < 2 {
			helpers.Log(logrus.InfoLevel, "Please provide a subscription id")
			return
		}
		job := cmd.NewResyncJob(subRepo, stripeHandler, reconcile.NewReconciler(subRepo, schedRepo, priceRepo))
		err = job.SyncSubscription(ctx, args[1])
	case "portal_session":
		if len(args) < 2 {
			helpers.Log(logrus.InfoLevel, "Please provide an organization slug")
			return
		}
		err = printPortalSession(ctx, orgRepo, stripeHandler, settings.AppBaseURL, args[1])
	case "billing_view":
		if len(args) < 2 {
			helpers.Log(logrus.InfoLevel, "Please provide an organization slug")
			return
		}
		err = printBillingView(ctx, billing.NewBillingService(orgRepo, subRepo, schedRepo), args[1])
	default:
		helpers.Log(logrus.InfoLevel, "Unknown command "+command)
	}

	if err != nil {
		helpers.Log(logrus.ErrorLevel, err.Error())
		os.Exit(1)
	}
}

func printPortalSession(ctx context.Context, orgRepo repository.OrganizationRepository, hndl billinghandler.BillingHandler, baseURL, slug string) error {
	org, err := orgRepo.GetOrganizationBySlug(ctx, slug)
	if err != nil {
		return err
	}
	url, err := hndl.CreatePortalSession(billinghandler.PortalSessionParams{
		BaseURL:          baseURL,
		CustomerID:       org.StripeCustomerID,
		OrganizationSlug: org.Slug,
	})
	if err != nil {
		return err
	}
	fmt.Println(url)
	return nil
}

func printBillingView(ctx context.Context, service *billing.BillingService, slug string) error {
	vm, err := service.GetBillingViewModel(ctx, slug, time.Now().UTC())
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(vm, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
