package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/justinas/alice"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/http/router/controllers"
	router_helper "github.com/lockcole/OpenLevelUp-sub000/pkg/http/router/routerhelper"
	http_server "github.com/lockcole/OpenLevelUp-sub000/pkg/http/server"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/metrics"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RateLimit struct {
	Enabled bool
	RPS     float64
	Burst   int
}

type API struct {
	log     *zap.Logger
	metrics *metrics.Registry
}

func NewAPI(log *zap.Logger, reg *metrics.Registry) *API {
	return &API{log: log, metrics: reg}
}

//	@title			OpenLevelUp routing API
//	@version		1.0
//	@description	Indoor multi-level routing over OpenStreetMap data.

// @host		localhost
// @BasePath	/api
func (api *API) Handler(limit RateLimit, routingService controllers.RoutingService) http.Handler {
	router := httprouter.New()

	corsHandler := cors.New(cors.Options{ //nolint:gocritic // ignore
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", headerRequestID},
		ExposedHeaders:   []string{"Link", headerRequestID},
		AllowCredentials: true,
		MaxAge:           300, //nolint:mnd // ignore
	})

	router.GET("/doc/*any", swaggerHandler)
	router.Handler(http.MethodGet, "/metrics", api.metrics.Handler())

	group := router_helper.NewRouteGroup(router, "/api")
	routingRoutes := controllers.New(routingService, api.log)
	routingRoutes.Routes(group)

	mwChain := []alice.Constructor{corsHandler.Handler, EnforceJSONHandler, api.recoverPanic,
		RealIP, Heartbeat("healthz"), RequestID, Logger(api.log), Metrics(api.metrics)}
	if limit.Enabled {
		mwChain = append(mwChain, Limit(limit.RPS, limit.Burst))
	}
	return alice.New(mwChain...).Then(router)
}

// Run serves the API until ctx is canceled or the server fails.
func (api *API) Run(
	ctx context.Context,
	config http_server.Config,
	limit RateLimit,
	routingService controllers.RoutingService,
) error {
	api.log.Info("Run httprouter API")

	srv := http_server.New(ctx, api.Handler(limit, routingService), config)
	api.log.Info(fmt.Sprintf("API run on port %d", config.Port))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		api.log.Info("HTTP server stopped", zap.Error(err))
		return err
	case <-ctx.Done():
		api.log.Info("Context canceled, shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.Timeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	}
}

func swaggerHandler(res http.ResponseWriter, req *http.Request, p httprouter.Params) {
	httpSwagger.WrapHandler(res, req)
}
