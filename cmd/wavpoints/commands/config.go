// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/pflag"

	"github.com/ik5/wavpoints"
	"github.com/ik5/wavpoints/waveform"
)

// decodeConfig is the options file layout. Zero values mean "not set".
type decodeConfig struct {
	Kind       string `yaml:"kind"`
	ByteOrder  string `yaml:"byte_order"`
	MaxWidth   int    `yaml:"max_width"`
	MaxHeight  int    `yaml:"max_height"`
	BlockSize  int    `yaml:"block_size"`
	Decimation int    `yaml:"decimation"`
}

func loadConfig(path string) (decodeConfig, error) {
	var cfg decodeConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read options file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return cfg, nil
}

// merge overrides cfg with every flag the user set explicitly.
func (cfg decodeConfig) merge(flags *pflag.FlagSet, set decodeConfig) decodeConfig {
	if flags.Changed("kind") {
		cfg.Kind = set.Kind
	}
	if flags.Changed("byte-order") {
		cfg.ByteOrder = set.ByteOrder
	}
	if flags.Changed("max-width") {
		cfg.MaxWidth = set.MaxWidth
	}
	if flags.Changed("max-height") {
		cfg.MaxHeight = set.MaxHeight
	}
	if flags.Changed("block-size") {
		cfg.BlockSize = set.BlockSize
	}
	if flags.Changed("decimation") {
		cfg.Decimation = set.Decimation
	}
	return cfg
}

// resolve picks the container reader and builds decoder options for path.
// Without an explicit kind the file extension decides.
func (cfg decodeConfig) resolve(path string) (waveform.Opener, waveform.Options, error) {
	var (
		opener waveform.Opener
		kind   waveform.ContainerKind
	)
	if cfg.Kind != "" {
		k, err := waveform.ParseContainerKind(cfg.Kind)
		if err != nil {
			return nil, waveform.Options{}, err
		}
		kind, opener = k, wavpoints.OpenerFor(k)
	} else {
		f, err := wavpoints.DefaultRegistry().ForPath(path)
		if err != nil {
			return nil, waveform.Options{}, fmt.Errorf("%w (use --kind)", err)
		}
		kind, opener = f.Kind, f.Opener
	}

	order, err := waveform.ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return nil, waveform.Options{}, err
	}

	opts := waveform.Options{
		Kind:       kind,
		ByteOrder:  order,
		MaxWidth:   cfg.MaxWidth,
		MaxHeight:  cfg.MaxHeight,
		BlockSize:  cfg.BlockSize,
		Decimation: cfg.Decimation,
		Logger:     slog.Default(),
	}
	if err := opts.Validate(); err != nil {
		return nil, waveform.Options{}, err
	}
	return opener, opts, nil
}
