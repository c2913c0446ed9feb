// Copyright (c) 2026, The Tappable Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tappable

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultLongPressDuration is how long the pointer must stay
	// pressed before a long press is recognized, when not configured.
	DefaultLongPressDuration = 500 * time.Millisecond

	// DefaultLongPressActionName is the accessibility action name for
	// the synthesized long-press action, when not configured.
	DefaultLongPressActionName = "Open Menu"

	// DefaultMoveTolerance is the movement slop in dots beyond which a
	// press is cancelled, when not configured.
	DefaultMoveTolerance = float32(8)
)

// Options are the host-settable interaction parameters of a [Label].
type Options struct {

	// LongPressDuration is how long the pointer must stay pressed
	// within one region before the long-press listener fires.
	LongPressDuration time.Duration `toml:"long-press-duration"`

	// LongPressAccessibilityActionName is the localized name announced
	// for the synthesized long-press accessibility action. An empty
	// value means [DefaultLongPressActionName].
	LongPressAccessibilityActionName string `toml:"long-press-accessibility-action-name"`

	// MoveTolerance is the movement slop in dots: a pressed pointer
	// moving further than this from its start point cancels the press,
	// even within the same region.
	MoveTolerance float32 `toml:"move-tolerance"`
}

// Defaults sets default option values.
func (o *Options) Defaults() {
	o.LongPressDuration = DefaultLongPressDuration
	o.LongPressAccessibilityActionName = DefaultLongPressActionName
	o.MoveTolerance = DefaultMoveTolerance
}

// longPressActionName returns the effective accessibility action name,
// falling back to the default for an empty value.
func (o *Options) longPressActionName() string {
	if o.LongPressAccessibilityActionName == "" {
		return DefaultLongPressActionName
	}
	return o.LongPressAccessibilityActionName
}

// OpenOptions reads options from the given TOML file, on top of
// defaults. The returned options are usable even on error.
func OpenOptions(filename string) (*Options, error) {
	o := &Options{}
	o.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return o, err
	}
	if err := toml.Unmarshal(b, o); err != nil {
		return o, err
	}
	if o.LongPressDuration <= 0 {
		o.LongPressDuration = DefaultLongPressDuration
	}
	if o.MoveTolerance <= 0 {
		o.MoveTolerance = DefaultMoveTolerance
	}
	return o, nil
}

// Save writes the options to the given TOML file.
func (o *Options) Save(filename string) error {
	b, err := toml.Marshal(o)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
