package main

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"github.com/xyths/changelly"
	"github.com/xyths/changelly/cmd/utils"
	"github.com/xyths/hs"
	"strconv"
	"strings"
)

type Config struct {
	Exchange hs.ExchangeConf
	Log      hs.LogConf
}

var (
	currenciesCommand = &cli.Command{
		Action: currencies,
		Name:   "currencies",
		Usage:  "List currencies available for exchange",
		Flags: []cli.Flag{
			utils.FullFlag,
		},
	}
	minCommand = &cli.Command{
		Action:    minAmount,
		Name:      "min",
		Usage:     "Show the minimum exchange amount for a pair",
		ArgsUsage: "<from> <to>",
	}
	rateCommand = &cli.Command{
		Action:    rate,
		Name:      "rate",
		Usage:     "Quote the amount to receive, comma lists quote several pairs at once",
		ArgsUsage: "<from> <to> <amount>",
	}
	createCommand = &cli.Command{
		Action:    create,
		Name:      "create",
		Usage:     "Create an exchange transaction",
		ArgsUsage: "<from> <to> <address> <amount>",
		Flags: []cli.Flag{
			utils.ExtraIDFlag,
			utils.RefundAddressFlag,
			utils.RefundExtraIDFlag,
		},
	}
	statusCommand = &cli.Command{
		Action:    status,
		Name:      "status",
		Usage:     "Show the status of a transaction",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			utils.WatchFlag,
			utils.IntervalFlag,
		},
	}
)

func currencies(ctx *cli.Context) error {
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	if ctx.Bool(utils.FullFlag.Name) {
		all, err := client.GetCurrenciesFull(ctx.Context)
		if err != nil {
			return err
		}
		for _, cur := range all {
			state := "disabled"
			if cur.Enabled {
				state = "enabled"
			}
			fmt.Printf("%-12s\t%-8s\t%s\n", cur.Name, state, cur.FullName)
		}
		return nil
	}
	list, err := client.GetCurrencies(ctx.Context)
	if err != nil {
		return err
	}
	for _, code := range list {
		fmt.Println(code)
	}
	return nil
}

func minAmount(ctx *cli.Context) error {
	if ctx.NArg() < 2 {
		return fmt.Errorf("min needs <from> <to>")
	}
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	min, err := client.GetMinAmount(ctx.Context, ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	fmt.Println(min)
	return nil
}

func rate(ctx *cli.Context) error {
	if ctx.NArg() < 3 {
		return fmt.Errorf("rate needs <from> <to> <amount>")
	}
	amount, err := strconv.ParseFloat(ctx.Args().Get(2), 64)
	if err != nil {
		return err
	}
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	from := strings.Split(ctx.Args().Get(0), ",")
	to := strings.Split(ctx.Args().Get(1), ",")
	result, err := client.GetExchangeAmounts(ctx.Context, from, to, amount)
	if err != nil {
		return err
	}
	if !result.Batch {
		fmt.Println(result.Amount)
		return nil
	}
	for _, q := range result.Quotes {
		fmt.Printf("%s/%s\t%s\n", q.From, q.To, q.Amount)
	}
	return nil
}

func create(ctx *cli.Context) error {
	if ctx.NArg() < 4 {
		return fmt.Errorf("create needs <from> <to> <address> <amount>")
	}
	amount, err := strconv.ParseFloat(ctx.Args().Get(3), 64)
	if err != nil {
		return err
	}
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	id, err := client.CreateTransaction(ctx.Context, changelly.TransactionRequest{
		From:          ctx.Args().Get(0),
		To:            ctx.Args().Get(1),
		Address:       ctx.Args().Get(2),
		ExtraID:       ctx.String(utils.ExtraIDFlag.Name),
		Amount:        amount,
		RefundAddress: ctx.String(utils.RefundAddressFlag.Name),
		RefundExtraID: ctx.String(utils.RefundExtraIDFlag.Name),
	})
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func status(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return fmt.Errorf("status needs <id>")
	}
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	id := ctx.Args().Get(0)
	if ctx.Bool(utils.WatchFlag.Name) {
		s, err := client.WaitTerminal(ctx.Context, id, ctx.Duration(utils.IntervalFlag.Name))
		if err != nil {
			return err
		}
		fmt.Println(s)
		return nil
	}
	s, err := client.GetStatus(ctx.Context, id)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func getClient(ctx *cli.Context) (*changelly.Client, error) {
	cfg := Config{}
	if err := hs.ParseJsonConfig(ctx.String(utils.ConfigFlag.Name), &cfg); err != nil {
		return nil, err
	}
	l, err := hs.NewZapLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	client, err := changelly.New(cfg.Exchange.Key, cfg.Exchange.Secret, cfg.Exchange.Host)
	if err != nil {
		return nil, err
	}
	client.Sugar = l.Sugar()
	return client, nil
}
