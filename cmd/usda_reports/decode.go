package main

import (
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/lucidiot/usda-go/internal/config"
)

// renderFunc turns one raw response body into printable output.
type renderFunc func(raw []byte, cfg *config.Config) (string, error)

// loadRunConfig merges the config file, environment, and flags. Flags win
// over the environment, which wins over the file.
func loadRunConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if format := os.Getenv("USDA_OUTPUT_FORMAT"); format != "" {
		cfg.Format = format
	}
	if jsonOutput {
		cfg.Format = config.FormatJSON
	}
	if verbose {
		cfg.Verbose = true
	}
	if validateSchema {
		cfg.ValidateSchema = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// renderFiles decodes every file concurrently and prints the results in
// argument order. Any failure aborts the whole run.
func renderFiles(paths []string, cfg *config.Config, render renderFunc) error {
	g := new(errgroup.Group)
	outputs := make([]string, len(paths))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			output, err := render(raw, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outputs[i] = output
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, output := range outputs {
		fmt.Print(output)
	}
	return nil
}
