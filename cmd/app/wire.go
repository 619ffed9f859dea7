//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/vedic-weekly/internal/bootstrap"
	"github.com/yanqian/vedic-weekly/internal/domain/digest"
	"github.com/yanqian/vedic-weekly/internal/domain/janampatri"
	"github.com/yanqian/vedic-weekly/internal/domain/panchang"
	"github.com/yanqian/vedic-weekly/internal/infra/config"
	"github.com/yanqian/vedic-weekly/internal/infra/ephemeris"
	"github.com/yanqian/vedic-weekly/internal/infra/ephemeris/swissapi"
	"github.com/yanqian/vedic-weekly/internal/infra/runlog"
	httpiface "github.com/yanqian/vedic-weekly/internal/interface/http"
	"github.com/yanqian/vedic-weekly/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideLocation,
		providePositionSource,
		provideCorpus,
		provideScorer,
		provideRecommender,
		provideRunLog,
		provideDigestCache,
		provideJanamPatriService,
		ephemeris.NewAdapter,
		panchang.NewService,
		digest.NewService,
		wire.Bind(new(ephemeris.PositionSource), new(*swissapi.Client)),
		wire.Bind(new(panchang.EphemerisClient), new(*ephemeris.Adapter)),
		wire.Bind(new(digest.RunSink), new(*runlog.Writer)),
		wire.Bind(new(janampatri.RunSink), new(*runlog.Writer)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
