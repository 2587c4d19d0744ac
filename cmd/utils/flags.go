package utils

import (
	"github.com/urfave/cli/v2"
	"time"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.json",
		Usage:   "load configuration from `file`",
	}

	FullFlag = &cli.BoolFlag{
		Name:    "full",
		Aliases: []string{"f"},
		Usage:   "show the full currency records",
	}
	ExtraIDFlag = &cli.StringFlag{
		Name:  "extra-id",
		Value: "",
		Usage: "extra `id` (memo or tag) required by some destination currencies",
	}
	RefundAddressFlag = &cli.StringFlag{
		Name:  "refund-address",
		Value: "",
		Usage: "`address` to refund to when the exchange fails",
	}
	RefundExtraIDFlag = &cli.StringFlag{
		Name:  "refund-extra-id",
		Value: "",
		Usage: "extra `id` for the refund address",
	}
	WatchFlag = &cli.BoolFlag{
		Name:    "watch",
		Aliases: []string{"w"},
		Usage:   "poll until the transaction reaches an end state",
	}
	IntervalFlag = &cli.DurationFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Value:   30 * time.Second,
		Usage:   "polling `interval` for watch",
	}
)
