// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// optionsAsset is the name of the optional bundled configuration file.
const optionsAsset = "droidglue.yaml"

// Options tunes the bridge. It is loaded from the droidglue.yaml asset
// during android_main, when present.
type Options struct {
	// LogTag is the logcat tag for redirected stdout/stderr and
	// WriteLog.
	LogTag string `yaml:"logtag"`
	// EventBuffer is the endpoint capacity used by Subscribe when
	// the caller passes a non-positive buffer.
	EventBuffer int `yaml:"eventbuffer"`
}

func defaultOptions() Options {
	return Options{
		LogTag:      "droidglue",
		EventBuffer: 16,
	}
}

// loadOptions reads the configuration asset through the asset loader.
// A missing or unmappable asset yields the defaults; an asset that
// exists but does not parse is an error.
func loadOptions(mgr assetManager) (Options, error) {
	o := defaultOptions()
	data, err := loadAsset(mgr, optionsAsset)
	switch {
	case errors.Is(err, ErrAssetMissing), errors.Is(err, ErrEmptyBuffer):
		return o, nil
	case err != nil:
		return o, err
	}
	if err := yaml.Unmarshal(data, &o); err != nil {
		return Options{}, fmt.Errorf("app: parse %s: %w", optionsAsset, err)
	}
	if o.LogTag == "" {
		o.LogTag = defaultOptions().LogTag
	}
	if o.EventBuffer <= 0 {
		o.EventBuffer = defaultOptions().EventBuffer
	}
	return o, nil
}
