package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"spot-guide/config"
	"spot-guide/models"
	"spot-guide/services"
	"spot-guide/storage"
)

var (
	publishBucket string
	publishKey    string
)

// publishCmd lädt die Kartenebene nach S3 hoch
var publishCmd = &cobra.Command{
	Use:   "publish <file>",
	Short: "Upload the (filtered) spots as GeoJSON to S3",
	Long: `Upload the (filtered) spots as a GeoJSON FeatureCollection to S3.

Endpoint and credentials come from S3_URL, S3_REGION, S3_KEY and S3_SECRET.`,
	Args: cobra.ExactArgs(1),
	RunE: runPublish,
}

func runPublish(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	bucket := publishBucket
	if bucket == "" {
		bucket = cfg.S3Bucket
	}
	if bucket == "" {
		return fmt.Errorf("no bucket: pass --bucket or set S3_BUCKET")
	}

	_, _, spots, err := loadSpots(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	matches := services.Filter(spots, models.NewFilterQuery(filterText, filterTags...))
	data, err := json.Marshal(services.NewFeatureCollection(matches))
	if err != nil {
		return fmt.Errorf("encode geojson: %w", err)
	}

	client, err := storage.NewS3Client(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("create s3 client: %w", err)
	}
	link, err := storage.UploadFile(cmd.Context(), client, bucket, publishKey, "application/geo+json", data, cfg)
	if err != nil {
		return fmt.Errorf("upload geojson: %w", err)
	}
	logger.Info("geojson published", zap.String("link", link), zap.Int("spots", len(matches)))
	fmt.Fprintln(cmd.OutOrStdout(), link)
	return nil
}
