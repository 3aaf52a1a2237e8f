package mines

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gorilla/schema"
)

// Rule selects how the flood fill treats flagged neighbors.
type Rule int8

const (
	// RuleStrict stops the fill at flagged cells.
	RuleStrict Rule = iota
	// RuleThroughFlags reveals flagged safe cells reached by the fill.
	RuleThroughFlags
	// RuleNoCascade opens only the requested cell.
	RuleNoCascade
)

var ruleNames = map[Rule]string{
	RuleStrict:       "strict",
	RuleThroughFlags: "through-flags",
	RuleNoCascade:    "no-cascade",
}

func (r Rule) String() string {
	if name, ok := ruleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rule(%d)", int8(r))
}

func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for r, name := range ruleNames {
		if name == s {
			return r, nil
		}
	}
	return RuleStrict, fmt.Errorf("unknown reveal rule %q", s)
}

type GameParams struct {
	Width     int  `schema:"width"`
	Height    int  `schema:"height"`
	MineCount int  `schema:"mine_count"`
	Rule      Rule `schema:"rule"`
}

func (p GameParams) Unpack() (w int, h int, mc int, r Rule) {
	return p.Width, p.Height, p.MineCount, p.Rule
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d) %s", p.Width, p.Height, p.MineCount, p.Rule)
}

func (p GameParams) PointInBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

// Validate returns a [*ConfigurationError] unless the board has a positive
// size and 0 < MineCount < Width*Height.
func (p GameParams) Validate() error {
	width, height, mineCount, rule := p.Unpack()
	fail := func(reason string) error {
		return &ConfigurationError{
			Width: width, Height: height, MineCount: mineCount,
			Reason: reason,
		}
	}
	switch {
	case width <= 0 || height <= 0:
		return fail("board dimensions must be positive")
	case mineCount <= 0:
		return fail("mine count must be positive")
	case mineCount >= width*height:
		return fail("mine count must be less than the number of cells")
	}
	if _, ok := ruleNames[rule]; !ok {
		return fail("unknown reveal rule " + rule.String())
	}
	return nil
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dec.RegisterConverter(RuleStrict, func(s string) reflect.Value {
		r, err := ParseRule(s)
		if err != nil {
			return reflect.Value{}
		}
		return reflect.ValueOf(r)
	})
	return dec
}

// ParseGameParams decodes query-string style parameters
// (width=16&height=16&mine_count=40&rule=strict) over defaults. Keys that
// are absent keep their default value.
func ParseGameParams(src map[string][]string, defaults GameParams) (GameParams, error) {
	p := defaults
	if err := decoder.Decode(&p, src); err != nil {
		return defaults, fmt.Errorf("unable to decode game params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return defaults, err
	}
	return p, nil
}
