package engine

import (
	"context"
	"errors"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/concurrent"
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/level"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/metrics"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/osmparser"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Config struct {
	CacheSize      int
	SearchRadius   float64
	PrewarmWorkers int
	Builder        osmparser.BuilderConfig
	Level          level.Config
}

func DefaultConfig() Config {
	return Config{
		CacheSize:      8,
		SearchRadius:   routing.DEFAULT_SEARCH_RADIUS,
		PrewarmWorkers: 4,
		Builder:        osmparser.DefaultBuilderConfig(),
		Level:          level.DefaultConfig(),
	}
}

// Engine owns the element set and one routing graph per avoidance policy. Graphs are built on
// first use and kept in an LRU cache; a cached graph is never mutated.
type Engine struct {
	elements []da.Element
	levels   []float64
	builder  *osmparser.GraphBuilder
	build    func(elements []da.Element, avoid da.AvoidSet) *da.Graph
	cache    *lru.Cache[da.AvoidSet, *routing.Router]
	group    singleflight.Group
	cfg      Config
	metrics  *metrics.Registry
	log      *zap.Logger
}

func NewEngine(elements []da.Element, cfg Config, reg *metrics.Registry, log *zap.Logger) (*Engine, error) {
	if cfg.CacheSize < 1 {
		cfg.CacheSize = 1
	}
	cache, err := lru.New[da.AvoidSet, *routing.Router](cfg.CacheSize)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "graph cache")
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	levelParser := level.NewParser(cfg.Level, log)
	e := &Engine{
		elements: elements,
		builder:  osmparser.NewGraphBuilder(cfg.Builder, levelParser, log),
		cache:    cache,
		cfg:      cfg,
		metrics:  reg,
		log:      log,
	}
	e.build = e.builder.Build
	e.levels = collectLevels(elements, levelParser)
	return e, nil
}

// NewEngineFromFile loads an OSM extract and creates an engine over it.
func NewEngineFromFile(ctx context.Context, path string, cfg Config, reg *metrics.Registry,
	log *zap.Logger) (*Engine, error) {
	elements, err := osmparser.NewLoader(log).LoadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewEngine(elements, cfg, reg, log)
}

func collectLevels(elements []da.Element, p *level.Parser) []float64 {
	all := make([]float64, 0)
	for i := range elements {
		if elements[i].Type == da.GROUP {
			continue
		}
		all = append(all, p.ParseElement(elements[i].Tags, elements[i].Memberships)...)
	}
	return util.SortedUnique(all)
}

// Levels returns every level any point or path of the data lives on.
func (e *Engine) Levels() []float64 {
	return e.levels
}

func (e *Engine) NumberOfElements() int {
	return len(e.elements)
}

// Router returns the router over the graph built for avoid, building it when not cached.
// A failed build is not cached.
func (e *Engine) Router(avoid da.AvoidSet) (*routing.Router, error) {
	if r, ok := e.cache.Get(avoid); ok {
		e.metrics.RecordCacheLookup(true)
		return r, nil
	}
	e.metrics.RecordCacheLookup(false)

	// concurrent misses for the same policy share one build
	v, err, _ := e.group.Do(avoid.String(), func() (interface{}, error) {
		if r, ok := e.cache.Peek(avoid); ok {
			return r, nil
		}
		g, err := e.buildGraph(avoid)
		if err != nil {
			return nil, err
		}
		r := routing.NewRouter(g, e.cfg.SearchRadius, e.log)
		e.cache.Add(avoid, r)
		return r, nil
	})
	if err != nil {
		return nil, err
	}
	r, ok := v.(*routing.Router)
	if !ok {
		return nil, util.NewErrorf(util.ErrInternalServerError, "graph cache returned %T", v)
	}
	return r, nil
}

func (e *Engine) buildGraph(avoid da.AvoidSet) (g *da.Graph, err error) {
	defer func() {
		if p := recover(); p != nil {
			e.log.Error("graph build failed", zap.String("avoid", avoid.String()), zap.Any("panic", p))
			err = util.NewErrorf(util.ErrInternalServerError, "graph build (avoid=%q): %v", avoid.String(), p)
		}
	}()
	start := time.Now()
	g = e.build(e.elements, avoid)
	e.metrics.RecordGraphBuild(avoid.String(), time.Since(start), g.NumberOfNodes(), g.NumberOfEdges())
	return g, nil
}

func (e *Engine) Graph(avoid da.AvoidSet) (*da.Graph, error) {
	r, err := e.Router(avoid)
	if err != nil {
		return nil, err
	}
	return r.GetGraph(), nil
}

type RouteRequest struct {
	routing.Query
	Avoid da.AvoidSet
}

func (e *Engine) Route(req RouteRequest) (*routing.Path, error) {
	r, err := e.Router(req.Avoid)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	path, err := r.Route(req.Query)
	nodes := 0
	if path != nil {
		nodes = len(path.Nodes)
	}
	e.metrics.RecordRouteQuery(routeStatus(err), time.Since(start), nodes)
	if err != nil {
		e.log.Debug("route query failed", zap.Error(err))
		return nil, err
	}
	return path, nil
}

func routeStatus(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, routing.ErrNoStartNode):
		return "no_start_node"
	case errors.Is(err, routing.ErrNoEndNode):
		return "no_end_node"
	case errors.Is(err, routing.ErrNoRoute):
		return "no_route"
	case errors.Is(err, routing.ErrInvalidQuery):
		return "invalid"
	default:
		return "error"
	}
}

// Prewarm builds the graphs of several avoidance policies concurrently.
func (e *Engine) Prewarm(ctx context.Context, avoidSets []da.AvoidSet) error {
	pool := concurrent.NewWorkerPool[da.AvoidSet, int](e.cfg.PrewarmWorkers)
	sizes, err := pool.Run(ctx, avoidSets, func(_ context.Context, avoid da.AvoidSet) (int, error) {
		g, err := e.Graph(avoid)
		if err != nil {
			return 0, err
		}
		return g.NumberOfNodes(), nil
	})
	if err != nil {
		return err
	}
	for i, avoid := range avoidSets {
		e.log.Sugar().Infof("prewarmed graph (avoid=%q): %d nodes", avoid.String(), sizes[i])
	}
	return nil
}
