package s3object

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"spot-guide/config"
	"spot-guide/storage"
)

func TestFetcher_Load(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/bucket/guide.csv" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte("nom;adresse;tags\nChez Paul;13 rue de Charonne;bistrot\n"))
	}))
	defer srv.Close()

	cfg := &config.Config{
		S3URL:       srv.URL,
		S3Region:    "us-east-1",
		S3Key:       "key",
		S3Secret:    "secret",
		S3Bucket:    "bucket",
		S3ObjectKey: "guide.csv",
	}
	client, err := storage.NewS3Client(context.Background(), cfg)
	require.NoError(t, err)

	f := NewFetcher(cfg, client, zap.NewNop())
	assert.Equal(t, "s3", f.Name())

	table, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"nom", "adresse", "tags"}, table.Columns)
	require.Len(t, table.Records, 1)
	assert.Equal(t, "bistrot", table.Records[0].Value(2))
}

func TestFetcher_NoBucket(t *testing.T) {
	f := NewFetcher(&config.Config{}, nil, zap.NewNop())
	_, err := f.Load(context.Background())
	assert.Error(t, err)
}
