package osmparser

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported map file format")

type Format int

const (
	FORMAT_XML Format = iota
	FORMAT_PBF
	FORMAT_JSON
)

// DetectFormat picks the format from the file extension. A trailing .bz2 is reported
// separately.
func DetectFormat(path string) (Format, bool, error) {
	name := strings.ToLower(path)
	compressed := strings.HasSuffix(name, ".bz2")
	name = strings.TrimSuffix(name, ".bz2")
	switch {
	case strings.HasSuffix(name, ".osm"), strings.HasSuffix(name, ".xml"):
		return FORMAT_XML, compressed, nil
	case strings.HasSuffix(name, ".pbf"):
		return FORMAT_PBF, compressed, nil
	case strings.HasSuffix(name, ".json"):
		return FORMAT_JSON, compressed, nil
	}
	return 0, false, util.WrapErrorf(ErrUnsupportedFormat, util.ErrBadParamInput, "file %s", path)
}

type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile reads an OSM extract from disk.
func (l *Loader) LoadFile(ctx context.Context, path string) ([]da.Element, error) {
	format, compressed, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open map file %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if compressed {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrInternalServerError, "bzip2 reader")
		}
		defer bz.Close()
		r = bz
	}
	elements, err := l.Load(ctx, r, format)
	if err != nil {
		return nil, err
	}
	l.log.Sugar().Infof("loaded %d elements from %s", len(elements), path)
	return elements, nil
}

// Load converts an OSM stream into elements ordered as points, paths then groups, each
// sorted by id.
func (l *Loader) Load(ctx context.Context, r io.Reader, format Format) ([]da.Element, error) {
	o := &osm.OSM{}
	switch format {
	case FORMAT_XML:
		scanner := osmxml.New(ctx, r)
		defer scanner.Close()
		if err := collect(scanner, o); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "scan osm xml")
		}
	case FORMAT_PBF:
		// must not be parallel
		scanner := osmpbf.New(ctx, r, 1)
		defer scanner.Close()
		if err := collect(scanner, o); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "scan osm pbf")
		}
	case FORMAT_JSON:
		if err := json.NewDecoder(r).Decode(o); err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decode osm json")
		}
	default:
		return nil, ErrUnsupportedFormat
	}
	return l.convert(o), nil
}

type objectScanner interface {
	Scan() bool
	Object() osm.Object
	Err() error
}

func collect(scanner objectScanner, o *osm.OSM) error {
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			o.Nodes = append(o.Nodes, obj)
		case *osm.Way:
			o.Ways = append(o.Ways, obj)
		case *osm.Relation:
			o.Relations = append(o.Relations, obj)
		}
	}
	return scanner.Err()
}

func (l *Loader) convert(o *osm.OSM) []da.Element {
	sort.Slice(o.Nodes, func(i, j int) bool { return o.Nodes[i].ID < o.Nodes[j].ID })
	sort.Slice(o.Ways, func(i, j int) bool { return o.Ways[i].ID < o.Ways[j].ID })
	sort.Slice(o.Relations, func(i, j int) bool { return o.Relations[i].ID < o.Relations[j].ID })

	memberships := make(map[int64][]da.Membership)
	for _, rel := range o.Relations {
		tags := da.Tags(rel.Tags.Map())
		for _, m := range rel.Members {
			if m.Type != osm.TypeNode {
				continue
			}
			memberships[m.Ref] = append(memberships[m.Ref], da.Membership{RelationID: int64(rel.ID), Tags: tags})
		}
	}

	elements := make([]da.Element, 0, len(o.Nodes)+len(o.Ways)+len(o.Relations))
	for _, n := range o.Nodes {
		elements = append(elements, da.NewPointElement(int64(n.ID), da.NewCoordinate(n.Lat, n.Lon),
			da.Tags(n.Tags.Map()), memberships[int64(n.ID)]...))
	}
	for _, w := range o.Ways {
		if len(w.Nodes) < 2 {
			l.log.Debug("skipping way with less than two nodes", zap.Int64("way", int64(w.ID)))
			continue
		}
		ids := make([]int64, len(w.Nodes))
		for i, wn := range w.Nodes {
			ids[i] = int64(wn.ID)
		}
		elements = append(elements, da.NewPathElement(int64(w.ID), ids, da.Tags(w.Tags.Map())))
	}
	for _, rel := range o.Relations {
		elements = append(elements, da.NewGroupElement(int64(rel.ID), da.Tags(rel.Tags.Map())))
	}
	return elements
}
