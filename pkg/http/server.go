package http

import (
	"context"

	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	http_router "github.com/lockcole/OpenLevelUp-sub000/pkg/http/router"
	http_server "github.com/lockcole/OpenLevelUp-sub000/pkg/http/server"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/http/usecases"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/metrics"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use serves the routing API over eng until ctx is canceled.
func (s *Server) Use(
	ctx context.Context,
	eng *engine.Engine,
	reg *metrics.Registry,
) error {
	config := http_server.Config{
		Port:    viper.GetInt("API_PORT"),
		Timeout: viper.GetDuration("API_TIMEOUT"),
	}
	limit := http_router.RateLimit{
		Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
		RPS:     viper.GetFloat64("RATE_LIMIT_RPS"),
		Burst:   viper.GetInt("RATE_LIMIT_BURST"),
	}

	routingService := usecases.NewRoutingService(s.Log, eng)
	api := http_router.NewAPI(s.Log, reg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return api.Run(gctx, config, limit, routingService)
	})
	return g.Wait()
}
