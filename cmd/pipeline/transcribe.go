package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/summary-flow/internal/models"
)

func transcribeAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one audio file is required")
	}
	path := c.Args().First()

	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close()
	ctx := c.Context

	audio, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	text, err := a.summarizer.Transcribe(ctx, audio, mime.TypeByExtension(filepath.Ext(path)))
	if err != nil {
		return err
	}

	if !c.Bool("summarize") {
		fmt.Println(text)
		return nil
	}

	opts := defaultOptions(a.cfg)
	if v := c.String("length"); v != "" {
		opts.LengthClass = models.LengthClass(v)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	name := filepath.Base(path) + ".txt"
	result, err := a.processor.ProcessSingle(ctx, models.NewTextArtifact(name, text), opts)
	if err != nil {
		return err
	}
	return printResult("yaml", filepath.Base(path), result, []fileLine{{Name: name}}, []string{name})
}
