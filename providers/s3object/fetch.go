package s3object

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"spot-guide/config"
	"spot-guide/models"
	"spot-guide/providers/csvfile"
	"spot-guide/storage"
)

// Fetcher liest die Spot-Tabelle als CSV-Objekt aus einem S3-Bucket.
type Fetcher struct {
	Client *s3.Client
	Bucket string
	Key    string
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen S3-Fetcher für S3_BUCKET/S3_OBJECT_KEY.
func NewFetcher(cfg *config.Config, client *s3.Client, logger *zap.Logger) *Fetcher {
	return &Fetcher{Client: client, Bucket: cfg.S3Bucket, Key: cfg.S3ObjectKey, Config: cfg, Logger: logger}
}

// Name gibt den Namen des Providers zurück.
func (f *Fetcher) Name() string {
	return "s3"
}

// Load lädt das Objekt herunter und parst es.
func (f *Fetcher) Load(ctx context.Context) (*models.RawTable, error) {
	if f.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is not configured")
	}
	data, err := storage.DownloadFile(ctx, f.Client, f.Bucket, f.Key)
	if err != nil {
		return nil, err
	}
	table, err := csvfile.ParseBytes(data, f.Config.Delimiter())
	if err != nil {
		return nil, fmt.Errorf("parse s3://%s/%s: %w", f.Bucket, f.Key, err)
	}
	f.Logger.Debug("Tabelle aus S3 gelesen", zap.String("bucket", f.Bucket), zap.String("key", f.Key), zap.Int("rows", len(table.Records)))
	return table, nil
}
