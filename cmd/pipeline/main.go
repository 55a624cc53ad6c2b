package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "pipeline",
		Usage: "Summarize documents, images and recordings with Gemini",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				EnvVars: []string{"SUMMARY_FLOW_CONFIG"},
				Usage:   "path to the YAML configuration file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API",
				Action: serveAction,
			},
			{
				Name:   "watch",
				Usage:  "Summarize every document dropped into the input folder",
				Action: watchAction,
			},
			{
				Name:      "summarize",
				Usage:     "Summarize one or more files; several files are combined into one summary",
				ArgsUsage: "<file> [file...]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "length", Aliases: []string{"l"}, Usage: "short, medium or long"},
					&cli.StringFlag{Name: "lang", Usage: "target language code for a translation, e.g. es"},
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "yaml", Usage: "yaml, json, md or txt"},
					&cli.StringFlag{Name: "title", Usage: "title used by the md and txt formats"},
					&cli.StringFlag{Name: "docx", Usage: "also write the summary as a docx file at this path"},
				},
				Action: summarizeAction,
			},
			{
				Name:      "transcribe",
				Usage:     "Transcribe a speech recording and optionally summarize it",
				ArgsUsage: "<audio file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "summarize", Aliases: []string{"s"}, Usage: "summarize the transcript"},
					&cli.StringFlag{Name: "length", Aliases: []string{"l"}, Usage: "short, medium or long"},
				},
				Action: transcribeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
