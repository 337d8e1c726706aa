package cli

import (
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/spf13/viper"
)

func engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if n := viper.GetInt("GRAPH_CACHE_SIZE"); n > 0 {
		cfg.CacheSize = n
	}
	if r := viper.GetFloat64("NEAREST_SEARCH_RADIUS"); r > 0 {
		cfg.SearchRadius = r
	}
	if n := viper.GetInt("PREWARM_WORKERS"); n > 0 {
		cfg.PrewarmWorkers = n
	}
	if p := viper.GetFloat64("LEVEL_PENALTY"); p >= 0 && viper.IsSet("LEVEL_PENALTY") {
		cfg.Builder.LevelPenalty = p
	}
	return cfg
}
