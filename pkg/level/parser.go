// Package level extracts the numeric floor levels an indoor map element lives on.
package level

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lockcole/OpenLevelUp-sub000/pkg"
	da "github.com/lockcole/OpenLevelUp-sub000/pkg/datastructure"
	"github.com/lockcole/OpenLevelUp-sub000/pkg/util"
	"go.uber.org/zap"
)

var (
	semicolonListRe = regexp.MustCompile(`^-?\d+(\.\d+)?(\s*;\s*-?\d+(\.\d+)?)*$`)
	commaListRe     = regexp.MustCompile(`^-?\d+(\.\d+)?(\s*,\s*-?\d+(\.\d+)?)+$`)
	hyphenRangeRe   = regexp.MustCompile(`^(-?\d+)\s*-\s*(-?\d+)$`)
	toRangeRe       = regexp.MustCompile(`^(-?\d+)\s+to\s+(-?\d+)$`)
)

// Config names the tags the parser reads. It is immutable once handed to NewParser.
type Config struct {
	LevelKey          string
	RepeatOnKey       string
	MinLevelKey       string
	MaxLevelKey       string
	FloorRangeKey     string
	RelationTypeKey   string
	RelationTypeLevel string
	RelationLevelKey  string
}

func DefaultConfig() Config {
	return Config{
		LevelKey:          pkg.TAG_LEVEL,
		RepeatOnKey:       pkg.TAG_REPEAT_ON,
		MinLevelKey:       pkg.TAG_MIN_LEVEL,
		MaxLevelKey:       pkg.TAG_MAX_LEVEL,
		FloorRangeKey:     pkg.TAG_FLOOR_RANGE,
		RelationTypeKey:   pkg.TAG_TYPE,
		RelationTypeLevel: pkg.RELATION_TYPE_LEVEL,
		RelationLevelKey:  pkg.TAG_LEVEL,
	}
}

type Parser struct {
	cfg Config
	log *zap.Logger
}

func NewParser(cfg Config, log *zap.Logger) *Parser {
	return &Parser{cfg: cfg, log: log}
}

// ParseElement returns the sorted, duplicate-free levels of an element. The first tag
// present decides; level relations are only consulted when no tag is present.
func (p *Parser) ParseElement(tags da.Tags, memberships []da.Membership) []float64 {
	if v, ok := tags.Get(p.cfg.LevelKey); ok {
		return p.parseTag(p.cfg.LevelKey, v)
	}
	if v, ok := tags.Get(p.cfg.RepeatOnKey); ok {
		return p.parseTag(p.cfg.RepeatOnKey, v)
	}
	minLevel, okMin := tags.Get(p.cfg.MinLevelKey)
	maxLevel, okMax := tags.Get(p.cfg.MaxLevelKey)
	if okMin && okMax {
		return p.parseTag(p.cfg.MinLevelKey, strings.TrimSpace(minLevel)+"-"+strings.TrimSpace(maxLevel))
	}
	if v, ok := tags.Get(p.cfg.FloorRangeKey); ok {
		return p.parseTag(p.cfg.FloorRangeKey, v)
	}

	levels := make([]float64, 0)
	for _, m := range memberships {
		if !m.Tags.Is(p.cfg.RelationTypeKey, p.cfg.RelationTypeLevel) {
			continue
		}
		relLevels, _ := ParseList(m.Tags.Value(p.cfg.RelationLevelKey))
		if len(relLevels) != 1 {
			p.log.Warn("level relation rejected: it must hold exactly one level",
				zap.Int64("relation", m.RelationID), zap.String("level", m.Tags.Value(p.cfg.RelationLevelKey)))
			continue
		}
		levels = append(levels, relLevels[0])
	}
	return util.SortedUnique(levels)
}

func (p *Parser) parseTag(key, value string) []float64 {
	levels, ok := ParseList(value)
	if !ok {
		p.log.Debug("unparseable level value", zap.String("key", key), zap.String("value", value))
		return []float64{}
	}
	return levels
}

// ParseList understands "1;2;3", "1,2,3", "-1-3" and "-2 to 6". Interval bounds must be
// integers. The result is sorted and duplicate-free; false means the string matched none
// of the forms.
func ParseList(s string) ([]float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}

	switch {
	case semicolonListRe.MatchString(s):
		return parseDelimited(s, ";")
	case commaListRe.MatchString(s):
		return parseDelimited(s, ",")
	}

	if m := hyphenRangeRe.FindStringSubmatch(s); m != nil {
		return expandInterval(m[1], m[2])
	}
	if m := toRangeRe.FindStringSubmatch(s); m != nil {
		return expandInterval(m[1], m[2])
	}
	return nil, false
}

func parseDelimited(s, sep string) ([]float64, bool) {
	parts := strings.Split(s, sep)
	levels := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := util.StringToFloat64(strings.TrimSpace(part))
		if err != nil {
			return nil, false
		}
		levels = append(levels, v)
	}
	return util.SortedUnique(levels), true
}

func expandInterval(from, to string) ([]float64, bool) {
	lo, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return nil, false
	}
	hi, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return nil, false
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < -pkg.MAX_LEVEL_ABS || hi > pkg.MAX_LEVEL_ABS {
		return nil, false
	}

	levels := make([]float64, 0, hi-lo+1)
	for l := lo; l <= hi; l++ {
		levels = append(levels, float64(l))
	}
	return levels, true
}
