package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Aurelian-Chen/NovasX/internal/advolume"
	"github.com/Aurelian-Chen/NovasX/internal/catalog"
	"github.com/Aurelian-Chen/NovasX/internal/config"
	"github.com/Aurelian-Chen/NovasX/internal/pricing"
	"github.com/Aurelian-Chen/NovasX/internal/server"
	"github.com/Aurelian-Chen/NovasX/internal/valuation"
	"github.com/Aurelian-Chen/NovasX/pkg/constants"
	"github.com/Aurelian-Chen/NovasX/pkg/output"
	"github.com/Aurelian-Chen/NovasX/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	format := loggingConfig.Format
	if format == "" {
		format = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	mode := flag.String("mode", "price", "operation: price, prices, valuation, development, catalog")
	platformFlag := flag.String("platform", string(catalog.PlatformDouyin), "platform name")
	categoryFlag := flag.String("category", "", "content category name")
	followersFlag := flag.String("followers", "0", "follower count (plain, grouped, or scientific notation)")
	celebrity := flag.Bool("celebrity", false, "celebrity account (film/variety category only)")
	adPrice := flag.Float64("ad-price", 0, "current single-ad price in wan (0 derives an estimate)")
	growthRate := flag.Float64("growth-rate", 0, "custom annual follower growth rate in percent")
	customGrowth := flag.Bool("custom-growth", false, "use -growth-rate instead of the default growth model")
	actualAds := flag.Int("actual-ads", 0, "actual yearly ad count for development mode")
	serve := flag.Bool("serve", false, "run the HTTP API server instead of a one-shot computation")
	address := flag.String("address", "", "HTTP listen address override")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initiate logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}

	if *serve {
		if *address != "" {
			conf.Server.Address = *address
		}
		handler := server.NewHandler(logger, conf, version)
		logger.Info(fmt.Sprintf("listening on %s", conf.Server.Address),
			zap.String("op", "main"),
		)
		if err := http.ListenAndServe(conf.Server.Address, handler); err != nil {
			logger.Fatal("server exited",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	table := pricing.NewTable(logger)
	matrix := advolume.NewMatrix()
	model := valuation.NewModel(logger, matrix)

	if *mode == "catalog" {
		for _, category := range table.Categories() {
			fmt.Println(string(category))
		}
		return
	}

	category, err := catalog.ParseCategory(*categoryFlag)
	if err != nil {
		logger.Fatal("invalid category",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	followers, err := validation.ParseFollowers(*followersFlag)
	if err != nil {
		logger.Fatal("invalid follower count",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch *mode {
	case "price":
		price, err := table.Price(catalog.Platform(*platformFlag), category, followers, *celebrity)
		if err != nil {
			logger.Fatal("failed to compute price",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("%.2f\n", price)
	case "prices":
		prices, err := table.AllPlatformPrices(category, followers, *celebrity)
		if err != nil {
			logger.Fatal("failed to compute prices",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if outputFormat == constants.OutputFormatCSV {
			output.CsvPrices(category, prices)
		} else {
			output.PrettyPrices(category, followers, prices)
		}
	case "valuation":
		platform, err := catalog.ParsePlatform(*platformFlag)
		if err != nil {
			logger.Fatal("invalid platform",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		opts := valuation.Options{}
		if *adPrice > 0 {
			opts.SingleAdPriceWan = adPrice
		}
		if *customGrowth {
			opts.GrowthRate = growthRate
		}
		summary, err := model.SummaryTable(followers, platform, category, opts)
		if err != nil {
			logger.Fatal("failed to compute valuation",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if outputFormat == constants.OutputFormatCSV {
			output.CsvSummary(summary)
		} else {
			output.PrettySummary(platform, category, summary)
		}
	case "development":
		platform, err := catalog.ParsePlatform(*platformFlag)
		if err != nil {
			logger.Fatal("invalid platform",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fans := followers.Wan()
		expected := matrix.ExpectedAdCount(platform, category, fans)
		ratio := matrix.DevelopmentRatio(platform, category, fans, *actualAds)
		output.PrettyDevelopment(platform, category, fans, expected, *actualAds, ratio)
	default:
		logger.Fatal(fmt.Sprintf("unknown mode %s", *mode),
			zap.String("op", "main"),
		)
	}
}
