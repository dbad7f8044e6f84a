package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/exactnum/fraction/config"
	"github.com/exactnum/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	defaultRPC := os.Getenv("FRACTION_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}
	if strings.Contains(config.BuildVersion, "BUILD_VERSION") && !config.Debug {
		panic("please build the application using make command.")
	}

	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "An exact precision rational number engine and calculator."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable FRACTION_RPC",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:    "eval",
			Aliases: []string{"e"},
			Usage:   "Evaluate an exact binary operation on two fractions",
			Action:  evalCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:    "places",
					Aliases: []string{"p"},
					Value:   config.DefaultDecimalPlaces,
					Usage:   "the decimal places of the inexact rendering",
				},
			},
		},
		{
			Name:    "approx",
			Aliases: []string{"a"},
			Usage:   "Approximate a floating point value as a fraction",
			Action:  approxCmd,
			Flags: []cli.Flag{
				&cli.Int64Flag{
					Name:    "max-denominator",
					Aliases: []string{"m"},
					Value:   config.DefaultMaxDenominator,
					Usage:   "the largest denominator the approximation may use",
				},
			},
		},
		{
			Name:    "inspect",
			Aliases: []string{"i"},
			Usage:   "Print the reduced form and properties of a fraction",
			Action:  inspectCmd,
		},
		{
			Name:   "serve",
			Usage:  "Start the fraction RPC daemon",
			Action: serveCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					Usage:   "the configuration file path",
				},
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Value:   config.DefaultRPCPort,
					Usage:   "the HTTP port to listen",
				},
			},
		},
		{
			Name:   "call",
			Usage:  "Send a raw method call to a fraction RPC node",
			Action: callCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "method",
					Usage: "the RPC method name",
				},
				&cli.StringSliceFlag{
					Name:  "param",
					Usage: "a method parameter, repeatable",
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}
