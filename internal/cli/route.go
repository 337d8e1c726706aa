package cli

import (
	"encoding/json"
	"fmt"
	"io"

	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/engine/routing"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/geo"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type routeNode struct {
	Lat        float64 `json:"lat" yaml:"lat"`
	Lon        float64 `json:"lon" yaml:"lon"`
	Level      float64 `json:"level" yaml:"level"`
	Kind       string  `json:"kind,omitempty" yaml:"kind,omitempty"`
	Name       string  `json:"name,omitempty" yaml:"name,omitempty"`
	Transition string  `json:"transition,omitempty" yaml:"transition,omitempty"`
	Synthetic  bool    `json:"synthetic,omitempty" yaml:"synthetic,omitempty"`
}

type routeOutput struct {
	Cost     float64     `json:"cost" yaml:"cost"`
	Levels   []float64   `json:"levels" yaml:"levels"`
	Polyline string      `json:"polyline" yaml:"polyline"`
	Nodes    []routeNode `json:"nodes" yaml:"nodes"`
}

const (
	outputJSON = "json"
	outputYAML = "yaml"
	outputText = "text"
)

func writeRoute(w io.Writer, format string, out routeOutput) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	case outputText:
		return renderRouteText(w, out)
	default:
		return fmt.Errorf("unknown output format %q (json, yaml, text)", format)
	}
}

func newRouteOutput(p *routing.Path) routeOutput {
	out := routeOutput{
		Cost:   p.Cost,
		Levels: p.Levels(),
		Nodes:  make([]routeNode, 0, len(p.Nodes)),
	}
	latLons := make([][]float64, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		rn := routeNode{
			Lat:       n.Coord.Lat,
			Lon:       n.Coord.Lon,
			Level:     n.Level,
			Kind:      n.Kind.String(),
			Name:      n.Name,
			Synthetic: n.IsSynthetic(),
		}
		if n.Transition != da.TRANSITION_NONE {
			rn.Transition = n.Transition.String()
		}
		out.Nodes = append(out.Nodes, rn)
		latLons = append(latLons, []float64{n.Coord.Lat, n.Coord.Lon})
	}
	out.Polyline = geo.PolylineFromCoords(latLons)
	return out
}

func newRouteCmd() *cobra.Command {
	var (
		file      string
		from      string
		to        string
		avoid     string
		normalize bool
		output    string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Compute one route and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if output != outputJSON && output != outputYAML && output != outputText {
				return fmt.Errorf("unknown output format %q (json, yaml, text)", output)
			}
			log := loggerFromContext(ctx)

			start, startLevel, err := parsePoint(from)
			if err != nil {
				return err
			}
			end, endLevel, err := parsePoint(to)
			if err != nil {
				return err
			}
			avoidSet, err := da.ParseAvoidSet(avoid)
			if err != nil {
				return err
			}

			eng, err := engine.NewEngineFromFile(ctx, file, engineConfig(), nil, log)
			if err != nil {
				return err
			}
			q := routing.NewQuery(start, startLevel, end, endLevel)
			q.Normalize = normalize
			path, err := eng.Route(engine.RouteRequest{Query: q, Avoid: avoidSet})
			if err != nil {
				return err
			}

			return writeRoute(cmd.OutOrStdout(), output, newRouteOutput(path))
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "OSM file (.osm, .pbf, .json, optionally .bz2)")
	cmd.Flags().StringVar(&from, "from", "", "start as lat,lon,level")
	cmd.Flags().StringVar(&to, "to", "", "end as lat,lon,level")
	cmd.Flags().StringVar(&avoid, "avoid", "", "comma separated transitions to avoid: elevator, escalator, stairs")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "collapse area crossings and add off-graph endpoints")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output format: json, yaml or text")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
