// Command datadump loads a public dataset from disk with one of the
// registered opendataset loaders and writes the annotated dataset out as a
// single JSON document.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/nvr-ai/go-annotations/opendataset"
)

// Config holds the CLI configuration. Flags override file values.
type Config struct {
	// Dataset is the registered name of the loader to run.
	Dataset string `json:"dataset" yaml:"dataset"`
	// Path is the root directory of the dataset on disk.
	Path string `json:"path" yaml:"path"`
	// Output is the JSON file to write. Empty means stdout.
	Output string `json:"output" yaml:"output"`
	// Verbose switches on development-style logging.
	Verbose bool `json:"verbose" yaml:"verbose"`
}

func loadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, err
	}
	return config, nil
}

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML configuration file")
		name       = flag.String("dataset", "", "Registered dataset name ("+strings.Join(opendataset.Names(), ", ")+")")
		path       = flag.String("path", "", "Root directory of the dataset")
		output     = flag.String("output", "", "Output JSON file (default stdout)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	config := &Config{}
	if *configFile != "" {
		loaded, err := loadConfig(*configFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = loaded
	}
	if *name != "" {
		config.Dataset = *name
	}
	if *path != "" {
		config.Path = *path
	}
	if *output != "" {
		config.Output = *output
	}
	if *verbose {
		config.Verbose = true
	}

	if config.Dataset == "" {
		log.Fatal("Dataset name is required (-dataset)")
	}
	if config.Path == "" {
		log.Fatal("Dataset root directory is required (-path)")
	}

	logger, err := newLogger(config.Verbose)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	opendataset.SetLogger(logger)

	loader, err := opendataset.Get(config.Dataset)
	if err != nil {
		logger.Fatal("unknown dataset", zap.Error(err))
	}

	ds, err := loader(config.Path)
	if err != nil {
		logger.Fatal("failed to load dataset",
			zap.String("dataset", config.Dataset),
			zap.Error(err),
		)
	}
	logger.Info("dataset loaded",
		zap.String("dataset", ds.Name),
		zap.Int("segments", len(ds.Segments)),
	)

	raw, err := json.MarshalIndent(ds.Dumps(), "", "  ")
	if err != nil {
		logger.Fatal("failed to serialize dataset", zap.Error(err))
	}

	if config.Output == "" {
		os.Stdout.Write(raw)
		os.Stdout.Write([]byte("\n"))
		return
	}
	if err := os.WriteFile(config.Output, raw, 0o644); err != nil {
		logger.Fatal("failed to write output",
			zap.String("output", config.Output),
			zap.Error(err),
		)
	}
	logger.Info("dataset dumped",
		zap.String("output", config.Output),
		zap.Int("bytes", len(raw)),
	)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
