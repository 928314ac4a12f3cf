package main

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"spot-guide/config"
	"spot-guide/models"
	"spot-guide/providers"
	"spot-guide/providers/csvfile"
	"spot-guide/providers/s3object"
	"spot-guide/providers/sqltable"
	"spot-guide/services"
	"spot-guide/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	spotsLoadedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spots_loaded",
		Help: "Number of spots in the current catalog snapshot.",
	})
	catalogReloadsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_reloads_total",
		Help: "Catalog reloads by result.",
	}, []string{"result"})
	spotQueriesCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spot_queries_total",
		Help: "Total number of filter queries answered.",
	})
)

func init() {
	prometheus.MustRegister(spotsLoadedGauge, catalogReloadsCounter, spotQueriesCounter)
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	ctx := context.Background()

	resolver := services.NewSchemaResolver(nil)
	if cfg.AliasFile != "" {
		rules, err := services.LoadAliasRules(cfg.AliasFile)
		if err != nil {
			logging.Fatal("Alias rules load error", zap.Error(err))
		}
		resolver = services.NewSchemaResolver(rules)
		logging.Info("Custom alias rules loaded", zap.String("file", cfg.AliasFile))
	}

	provider, err := newProvider(ctx, cfg, logging)
	if err != nil {
		logging.Fatal("Spots source setup failed", zap.String("source", cfg.SpotsSource), zap.Error(err))
	}
	logging.Info("Spots source configured", zap.String("source", provider.Name()))

	catalog := services.NewCatalog(provider, resolver, cfg.LoadErrorMessage, logging)
	reloadCatalog(ctx, catalog, logging)

	router := newRouter(cfg, catalog, logging)

	if cfg.ReloadSchedule != "" {
		cronScheduler, err := startReloadScheduler(cfg.ReloadSchedule, catalog, logging)
		if err != nil {
			logging.Fatal("Invalid reload schedule", zap.String("schedule", cfg.ReloadSchedule), zap.Error(err))
		}
		defer cronScheduler.Stop()
	}

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// newProvider wählt die Tabellen-Quelle anhand von SPOTS_SOURCE.
func newProvider(ctx context.Context, cfg *config.Config, logging *zap.Logger) (providers.Provider, error) {
	switch cfg.SpotsSource {
	case "file", "":
		return csvfile.NewFetcher(cfg.SpotsPath, cfg.Delimiter(), logging), nil
	case "s3":
		client, err := storage.NewS3Client(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return s3object.NewFetcher(cfg, client, logging), nil
	case "postgres":
		db, err := sqltable.OpenPostgres(cfg)
		if err != nil {
			return nil, err
		}
		return sqltable.NewPostgresFetcher(db, cfg.SpotsTable, logging), nil
	case "sqlite":
		db, err := sqltable.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqltable.NewSQLiteFetcher(db, cfg.SpotsTable, logging), nil
	default:
		return nil, providers.ErrUnknownSource
	}
}

// startReloadScheduler lädt den Katalog periodisch nach dem Cron-Ausdruck neu.
func startReloadScheduler(schedule string, catalog *services.Catalog, logging *zap.Logger) (*cron.Cron, error) {
	cronScheduler := cron.New()
	_, err := cronScheduler.AddFunc(schedule, func() {
		logging.Info("Running scheduled catalog reload...")
		reloadCatalog(context.Background(), catalog, logging)
	})
	if err != nil {
		return nil, err
	}
	cronScheduler.Start()
	return cronScheduler, nil
}

// reloadCatalog lädt neu und aktualisiert die Metriken.
func reloadCatalog(ctx context.Context, catalog *services.Catalog, logging *zap.Logger) error {
	count, err := catalog.Reload(ctx)
	if err != nil {
		catalogReloadsCounter.WithLabelValues("error").Inc()
		return err
	}
	catalogReloadsCounter.WithLabelValues("ok").Inc()
	spotsLoadedGauge.Set(float64(count))
	logging.Info("Catalog reload completed", zap.Int("spots", count))
	return nil
}

func newRouter(cfg *config.Config, catalog *services.Catalog, logging *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		snap := catalog.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"source":    snap.Source,
			"loaded_at": snap.LoadedAt,
			"spots":     len(snap.Spots),
			"error":     snap.Err,
		})
	})

	setupSpotRoutes(router, catalog, logging)
	setupReloadRoutes(router, cfg, catalog, logging)
	return router
}

// queryFromRequest liest ?q= sowie ?tag= (mehrfach) und ?tags= (kommagetrennt).
func queryFromRequest(c *gin.Context) models.FilterQuery {
	var tags []string
	for _, t := range c.QueryArray("tag") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	for _, t := range strings.Split(c.Query("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return models.NewFilterQuery(strings.TrimSpace(c.Query("q")), tags...)
}

type spotView struct {
	models.Spot
	MapsURL string `json:"maps_url,omitempty"`
}

func viewsOf(spots []models.Spot) []spotView {
	out := make([]spotView, len(spots))
	for i, s := range spots {
		out[i] = spotView{Spot: s, MapsURL: services.MapsURL(s)}
	}
	return out
}

func setupSpotRoutes(router *gin.Engine, catalog *services.Catalog, logging *zap.Logger) {
	rg := router.Group("/spots")

	rg.GET("", func(c *gin.Context) {
		snap, spots := catalog.Query(queryFromRequest(c))
		spotQueriesCounter.Inc()
		resp := gin.H{
			"spots": viewsOf(spots),
			"count": len(spots),
			"total": len(snap.Spots),
		}
		if snap.Err != "" {
			resp["error"] = snap.Err
		}
		c.JSON(http.StatusOK, resp)
	})

	rg.GET("/:id", func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
			return
		}
		spot, ok := catalog.Snapshot().Spot(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "spot not found"})
			return
		}
		c.JSON(http.StatusOK, spotView{Spot: spot, MapsURL: services.MapsURL(spot)})
	})

	router.GET("/tags", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"tags": catalog.Snapshot().Vocabulary})
	})

	router.GET("/schema", func(c *gin.Context) {
		snap := catalog.Snapshot()
		c.JSON(http.StatusOK, gin.H{
			"columns": snap.Columns,
			"roles":   snap.Schema.Labels(),
		})
	})

	router.GET("/map.geojson", func(c *gin.Context) {
		_, spots := catalog.Query(queryFromRequest(c))
		spotQueriesCounter.Inc()
		c.Header("Content-Type", "application/geo+json")
		c.JSON(http.StatusOK, services.NewFeatureCollection(spots))
	})
}

func setupReloadRoutes(router *gin.Engine, cfg *config.Config, catalog *services.Catalog, logging *zap.Logger) {
	router.POST("/reload", apiKeyAuthMiddleware(cfg), func(c *gin.Context) {
		if err := reloadCatalog(c.Request.Context(), catalog, logging); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": catalog.Snapshot().Err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"spots": len(catalog.Snapshot().Spots)})
	})
}
