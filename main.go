package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordmill/internal/count"
	"github.com/dtnitsch/wordmill/internal/runs"
)

func main() {
	app := &cli.App{
		Name:  "wordmill",
		Usage: "parallel word frequency counter",
		Commands: []*cli.Command{
			{
				Name:      "count",
				Usage:     "count word frequencies in a text corpus",
				ArgsUsage: "<input> <segments>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "path for the ranked report",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "YAML run config (replaces positional arguments)",
					},
					&cli.BoolFlag{
						Name:  "html",
						Usage: "extract readable text from an HTML source before counting",
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "print the top N filtered keywords after the run",
					},
					&cli.BoolFlag{
						Name:  "manifest",
						Usage: "write a YAML run manifest next to the report",
					},
					&cli.BoolFlag{
						Name:  "no-db",
						Usage: "skip recording the run in the history database",
					},
					&cli.BoolFlag{
						Name:  "no-detect",
						Usage: "skip corpus language detection",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
					&cli.BoolFlag{
						Name:  "verbose",
						Usage: "log per-segment diagnostics",
					},
				},
				Action: count.CountAction,
			},
			{
				Name:  "runs",
				Usage: "list recorded runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 20,
						Usage: "maximum number of runs to show",
					},
				},
				Action: runs.ListAction,
			},
			{
				Name:      "run",
				Usage:     "show one recorded run with segment details",
				ArgsUsage: "<id>",
				Action:    runs.ShowAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
