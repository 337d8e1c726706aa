package cli

import (
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	pkghttp "github.com/lockcole/OpenLevelUp-sub000/pkg/http"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/metrics"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		configFile string
		dataFile   string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the routing HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := loggerFromContext(ctx)

			if err := util.ReadConfig(configFile); err != nil {
				return err
			}
			if dataFile != "" {
				viper.Set("DATA_FILE", dataFile)
			}

			reg := metrics.DefaultRegistry()
			eng, err := engine.NewEngineFromFile(ctx, viper.GetString("DATA_FILE"), engineConfig(), reg, log)
			if err != nil {
				return err
			}
			log.Info("loaded OSM data",
				zap.String("file", viper.GetString("DATA_FILE")),
				zap.Int("elements", eng.NumberOfElements()),
				zap.Float64s("levels", eng.Levels()))

			avoidSets, err := parseAvoidList(viper.GetStringSlice("PREWARM_AVOID"))
			if err != nil {
				return err
			}
			if err := eng.Prewarm(ctx, avoidSets); err != nil {
				return err
			}

			err = pkghttp.NewServer(log).Use(ctx, eng, reg)
			log.Info("routing server stopped")
			return err
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file (default ./data/config.yaml)")
	cmd.Flags().StringVarP(&dataFile, "file", "f", "", "OSM file to load, overrides DATA_FILE")
	return cmd
}
