package cli

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// profileFile is looked up in the working directory.
const profileFile = "washicut.toml"

// profile is a named tape preset from washicut.toml. Each top-level TOML
// table is one profile:
//
//	[gold-15]
//	tape_width = 15.0
//	shrink = 0.2
//	style = "print"
//
// Zero values mean "not set" and keep whatever the flags carry.
type profile struct {
	TapeWidth  float64 `toml:"tape_width"`
	Unit       string  `toml:"unit"`
	Shrink     float64 `toml:"shrink"`
	Gap        float64 `toml:"gap"`
	Margin     float64 `toml:"margin"`
	Duplicates int     `toml:"duplicates"`
	Style      string  `toml:"style"`
	Labels     bool    `toml:"labels"`
}

// loadProfile reads the named profile from the TOML file at path.
func loadProfile(path, name string) (profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile{}, fmt.Errorf("read profiles: %w", err)
	}
	var profiles map[string]profile
	if err := toml.Unmarshal(data, &profiles); err != nil {
		return profile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p, ok := profiles[name]
	if !ok {
		names := slices.Sorted(maps.Keys(profiles))
		return profile{}, fmt.Errorf("profile %q not found in %s (have: %s)", name, path, strings.Join(names, ", "))
	}
	return p, nil
}

// apply copies preset values onto opts. changed reports whether the user set
// the named flag explicitly; explicit flags always win over the profile.
func (p profile) apply(opts *wrapOpts, changed func(name string) bool) {
	if p.TapeWidth > 0 && !changed("tape-width") {
		opts.tapeWidth = p.TapeWidth
	}
	if p.Unit != "" && !changed("unit") {
		opts.unit = p.Unit
	}
	if p.Shrink > 0 && !changed("shrink") {
		opts.shrink = p.Shrink
	}
	if p.Gap > 0 && !changed("gap") {
		opts.gap = p.Gap
	}
	if p.Margin > 0 && !changed("margin") {
		opts.margin = p.Margin
	}
	if p.Duplicates > 0 && !changed("duplicates") {
		opts.duplicates = p.Duplicates
	}
	if p.Style != "" && !changed("style") {
		opts.style = p.Style
	}
	if p.Labels && !changed("labels") {
		opts.labels = true
	}
}
