package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/vedic-weekly/internal/domain/digest"
	"github.com/yanqian/vedic-weekly/internal/domain/janampatri"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/domain/verses"
	"github.com/yanqian/vedic-weekly/internal/infra/config"
	"github.com/yanqian/vedic-weekly/internal/infra/corpus"
	"github.com/yanqian/vedic-weekly/internal/infra/digestcache"
	"github.com/yanqian/vedic-weekly/internal/infra/ephemeris"
	"github.com/yanqian/vedic-weekly/internal/infra/ephemeris/swissapi"
	"github.com/yanqian/vedic-weekly/internal/infra/match"
	"github.com/yanqian/vedic-weekly/internal/infra/runlog"
)

func provideLocation(cfg *config.Config) panchang.GeoLocation {
	return panchang.GeoLocation{
		Name:           cfg.Location.Name,
		Latitude:       cfg.Location.Latitude,
		Longitude:      cfg.Location.Longitude,
		UTCOffsetHours: cfg.Location.UTCOffsetHours,
	}
}

func providePositionSource(cfg *config.Config) *swissapi.Client {
	return swissapi.NewClient(cfg.Ephemeris.APIBaseURL, cfg.Ephemeris.Timeout)
}

func provideCorpus(cfg *config.Config, logger *slog.Logger) ([]verses.VerseRecord, error) {
	switch cfg.Corpus.Source {
	case "postgres":
		pool, err := buildCorpusPool(cfg)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		records, err := corpus.LoadPostgres(ctx, pool)
		if err != nil {
			return nil, err
		}
		logger.Info("verse corpus loaded from postgres", "count", len(records))
		return records, nil
	case "object":
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		records, err := corpus.LoadObjectStore(ctx, corpus.ObjectStoreConfig{
			Endpoint:  cfg.Corpus.Object.Endpoint,
			AccessKey: cfg.Corpus.Object.AccessKey,
			SecretKey: cfg.Corpus.Object.SecretKey,
			Bucket:    cfg.Corpus.Object.Bucket,
			Key:       cfg.Corpus.Object.Key,
			Region:    cfg.Corpus.Object.Region,
		})
		if err != nil {
			return nil, err
		}
		logger.Info("verse corpus loaded from object store", "bucket", cfg.Corpus.Object.Bucket, "count", len(records))
		return records, nil
	default:
		records, err := corpus.LoadFile(cfg.Corpus.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("verse corpus loaded from file", "path", cfg.Corpus.Path, "count", len(records))
		return records, nil
	}
}

func buildCorpusPool(cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.Corpus.Postgres.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Corpus.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Corpus.Postgres.MaxConns
	}
	if cfg.Corpus.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Corpus.Postgres.MinConns
	}
	return pgxpool.NewWithConfig(context.Background(), poolConfig)
}

func provideScorer(cfg *config.Config, logger *slog.Logger) verses.Scorer {
	if cfg.Matching.Backend == "vector" {
		logger.Info("vector matching backend enabled", "dimension", cfg.Matching.Dimension)
		return match.NewVectorScorer(match.NewDeterministicEmbedder(cfg.Matching.Dimension))
	}
	return verses.NewTokenScorer()
}

func provideRecommender(cfg *config.Config, records []verses.VerseRecord, scorer verses.Scorer, logger *slog.Logger) (verses.Recommender, error) {
	return verses.NewRecommender(records, scorer, cfg.Corpus.DefaultVerseID, logger)
}

func provideRunLog(cfg *config.Config) (*runlog.Writer, error) {
	return runlog.NewWriter(cfg.RunLog.Path)
}

func provideDigestCache(cfg *config.Config, logger *slog.Logger) digest.Cache {
	if cfg.DigestCache.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory cache", "error", err)
			return digestcache.NewMemoryCache(cfg.DigestCache.TTL)
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory cache", "error", err)
			return digestcache.NewMemoryCache(cfg.DigestCache.TTL)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory cache", "error", err)
		} else {
			logger.Info("digest valkey cache enabled", "addr", cfg.DigestCache.Valkey.Addr)
			return digestcache.NewValkeyCache(client, cfg.DigestCache.Valkey.Prefix, cfg.DigestCache.TTL)
		}
	}
	return digestcache.NewMemoryCache(cfg.DigestCache.TTL)
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.DigestCache.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.DigestCache.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.DigestCache.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideJanamPatriService(cfg *config.Config, eph *ephemeris.Adapter, recommender verses.Recommender, sink *runlog.Writer, logger *slog.Logger) janampatri.Service {
	if !cfg.JanamPatri.Enabled {
		return nil
	}
	return janampatri.NewService(janampatri.Config{
		BirthDate: cfg.JanamPatri.BirthDate,
		BirthTime: cfg.JanamPatri.BirthTime,
		BirthPlace: panchang.GeoLocation{
			Name:           cfg.JanamPatri.BirthPlace.Name,
			Latitude:       cfg.JanamPatri.BirthPlace.Latitude,
			Longitude:      cfg.JanamPatri.BirthPlace.Longitude,
			UTCOffsetHours: cfg.JanamPatri.BirthPlace.UTCOffsetHours,
		},
		Override: janampatri.Override{
			Nakshatra: cfg.JanamPatri.Override.Nakshatra,
			Rashi:     cfg.JanamPatri.Override.Rashi,
		},
		VerseTopK: cfg.JanamPatri.VerseTopK,
	}, eph, recommender, sink, logger)
}
