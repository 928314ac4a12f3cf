// Package main implementiert spotctl, die Kommandozeilen-Sicht auf eine Spot-Tabelle.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"spot-guide/config"
	"spot-guide/models"
	"spot-guide/providers/csvfile"
	"spot-guide/services"
)

var (
	verbose   bool
	delimiter string
	aliasFile string

	logger *zap.Logger
)

// rootCmd ist das Basis-Kommando
var rootCmd = &cobra.Command{
	Use:   "spotctl",
	Short: "Inspect and filter a spreadsheet of places",
	Long: `spotctl loads a CSV/TSV table of places (restaurants, bars, spots),
guesses which columns hold name, address, coordinates, tags and map links,
and lets you list the tag vocabulary or filter spots by name and tags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil
		}
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&delimiter, "delimiter", "d", "", "Column delimiter (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&aliasFile, "aliases", "", "YAML file with column alias rules")

	filterCmd.Flags().StringVarP(&filterText, "text", "t", "", "Case-insensitive name search")
	filterCmd.Flags().StringArrayVar(&filterTags, "tag", nil, "Selected tag (repeatable, any match)")
	filterCmd.Flags().BoolVar(&filterJSON, "json", false, "Print JSON instead of text")

	publishCmd.Flags().StringVarP(&filterText, "text", "t", "", "Case-insensitive name search")
	publishCmd.Flags().StringArrayVar(&filterTags, "tag", nil, "Selected tag (repeatable, any match)")
	publishCmd.Flags().StringVar(&publishBucket, "bucket", "", "Target bucket (default: S3_BUCKET)")
	publishCmd.Flags().StringVar(&publishKey, "key", "spots.geojson", "Target object key")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(publishCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newResolver() (*services.SchemaResolver, error) {
	if aliasFile == "" {
		return services.NewSchemaResolver(nil), nil
	}
	rules, err := services.LoadAliasRules(aliasFile)
	if err != nil {
		return nil, err
	}
	return services.NewSchemaResolver(rules), nil
}

// loadSpots liest die Datei und normalisiert sie.
func loadSpots(ctx context.Context, path string) (*models.RawTable, models.Schema, []models.Spot, error) {
	resolver, err := newResolver()
	if err != nil {
		return nil, nil, nil, err
	}
	table, err := csvfile.NewFetcher(path, config.ParseDelimiter(delimiter), logger).Load(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	schema, spots, err := resolver.Normalize(table)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("spots loaded", zap.String("path", path), zap.Int("spots", len(spots)))
	return table, schema, spots, nil
}
