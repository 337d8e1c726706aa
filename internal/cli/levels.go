package cli

import (
	"fmt"

	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"github.com/spf13/cobra"
)

func newLevelsCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the levels present in an OSM file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			eng, err := engine.NewEngineFromFile(ctx, file, engineConfig(), nil, loggerFromContext(ctx))
			if err != nil {
				return err
			}
			for _, l := range eng.Levels() {
				fmt.Fprintln(cmd.OutOrStdout(), util.FormatFloat(l))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "OSM file (.osm, .pbf, .json, optionally .bz2)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
