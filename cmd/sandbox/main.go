// Command sandbox pokes at a Recurly site with the configured API key.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	bootstrap "github.com/tbeaudouin05/recurly-trellai/api/bootstrap"
	config "github.com/tbeaudouin05/recurly-trellai/api/config"
	"github.com/tbeaudouin05/recurly-trellai/api/services/recurly/app"
)

func main() {
	limit := flag.Int("limit", 5, "accounts to list")
	dump := flag.Bool("dump", false, "dump full records instead of a one-line summary")
	summary := flag.Bool("summary", false, "count the first page of every catalog resource")
	flag.Parse()

	config.CheckNotProduction()
	if err := bootstrap.Ensure(); err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}
	log := bootstrap.Logger().Named("sandbox")
	defer func() { _ = log.Sync() }()
	if config.AppConfig.RecurlyAPIKey == "" {
		log.Fatal("RECURLY_API_KEY is not set")
	}
	client := bootstrap.GetClient()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *summary {
		if err := printSummary(ctx, client); err != nil {
			log.Fatal("summary failed", zap.Error(err))
		}
		return
	}

	page, err := client.Accounts.List(ctx, app.ListAccountsParams{
		ListParams: app.ListParams{Limit: *limit, Order: app.OrderDesc},
	})
	if err != nil {
		log.Fatal("list accounts failed", zap.Error(err))
	}
	if *dump {
		spew.Dump(page)
		return
	}
	for _, a := range page.Data {
		fmt.Printf("%s\t%s\t%s\t%s\n", a.ID, a.Code, a.State, a.Email)
	}
	log.Info("listed accounts", zap.Int("count", len(page.Data)), zap.Bool("has_more", page.HasMore))
}

// printSummary fetches one page of each family in parallel.
func printSummary(ctx context.Context, c *app.Client) error {
	var (
		accounts, subs, plans, items, coupons, units int
	)
	first := app.ListParams{Limit: 200}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := c.Accounts.List(ctx, app.ListAccountsParams{ListParams: first})
		accounts = len(l.Data)
		return err
	})
	g.Go(func() error {
		l, err := c.Subscriptions.List(ctx, app.ListSubscriptionsParams{ListParams: first})
		subs = len(l.Data)
		return err
	})
	g.Go(func() error {
		l, err := c.Plans.List(ctx, app.ListPlansParams{ListParams: first})
		plans = len(l.Data)
		return err
	})
	g.Go(func() error {
		l, err := c.Items.List(ctx, app.ListItemsParams{ListParams: first})
		items = len(l.Data)
		return err
	})
	g.Go(func() error {
		l, err := c.Coupons.List(ctx, app.ListCouponsParams{ListParams: first})
		coupons = len(l.Data)
		return err
	})
	g.Go(func() error {
		l, err := c.MeasuredUnits.List(ctx, app.ListMeasuredUnitsParams{ListParams: first})
		units = len(l.Data)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("accounts=%d subscriptions=%d plans=%d items=%d coupons=%d measured_units=%d (first page, up to 200 each)\n",
		accounts, subs, plans, items, coupons, units)
	return nil
}
