// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorconv

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/colorconv/base/logx"
	"cogentcore.org/colorconv/cie"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options is the configuration bundle passed to every conversion.
// It is a plain value: conversions never modify it, and [Options.Resolve]
// returns a new record rather than changing the receiver. Use
// [DefaultOptions] or [NewOptions] to get one with the standard defaults.
type Options struct {

	// Round is whether to round outputs to integers where the
	// representation is conventionally discrete (RGB channels,
	// hue degrees, percentages, normalized YIQ, YCbCr).
	Round bool `default:"true" toml:"round" yaml:"round"`

	// BitDepth is the target (or source, for legal range RGB) bit depth
	// of RGB family values; max = 2^BitDepth - 1. Zero means unspecified:
	// the conversion keeps the source bit depth or uses its own default.
	BitDepth int `toml:"bitDepth" yaml:"bitDepth"`

	// BitRate is an alias of BitDepth; see [Options.Resolve].
	BitRate int `toml:"bitRate" yaml:"bitRate"`

	// Normalized selects the integer scaled YIQ representation
	// (y in [0,255], i and q in [-128,128]) instead of the fractional one.
	Normalized bool `default:"true" toml:"normalized" yaml:"normalized"`

	// ColorSpace is the RGB working space used by XYZ family conversions,
	// matched case-insensitively with aliases (see [cie.ParseSpace]).
	// Empty means the source value's own space, or sRGB.
	ColorSpace string `default:"srgb" toml:"colorSpace" yaml:"colorSpace"`

	// ReferenceWhite is the white point used by XYZ family conversions
	// (see [cie.ParseWhite]). Empty means the source value's own
	// reference white, or D65.
	ReferenceWhite string `default:"d65" toml:"referenceWhite" yaml:"referenceWhite"`

	// Kb and Kr are the luma coefficients of YPbPr / YCbCr conversions.
	// They have no default and are required when converting from RGB.
	Kb float64 `toml:"kb" yaml:"kb"`
	Kr float64 `toml:"kr" yaml:"kr"`

	// YLower and YUpper are the legal range bounds of YCbCr luma.
	YLower float64 `default:"16" toml:"yLower" yaml:"yLower"`
	YUpper float64 `default:"235" toml:"yUpper" yaml:"yUpper"`

	// CLower and CUpper are the legal range bounds of YCbCr chroma.
	CLower float64 `default:"16" toml:"cLower" yaml:"cLower"`
	CUpper float64 `default:"240" toml:"cUpper" yaml:"cUpper"`

	// Gamma is the gamma applied to nonzero channels of wavelength conversions.
	Gamma float64 `default:"0.8" toml:"gamma" yaml:"gamma"`
}

// DefaultOptions returns a new [Options] value with the standard defaults.
// ColorSpace and ReferenceWhite are left empty so that conversions from
// CIE values keep the source's own space and white; empty resolves to
// sRGB and D65 otherwise.
func DefaultOptions() Options {
	return Options{
		Round:      true,
		Normalized: true,
		YLower:     16,
		YUpper:     235,
		CLower:     16,
		CUpper:     240,
		Gamma:      0.8,
	}
}

// Option sets a field of [Options]; see [NewOptions].
type Option func(o *Options)

// NewOptions returns [DefaultOptions] with the given options applied
// and resolved (see [Options.Resolve]).
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o.Resolve()
}

// Resolve returns a copy of the options with aliases folded in:
// BitRate fills BitDepth when BitDepth is unspecified (BitDepth wins
// when both are given), and unset YCbCr bounds and wavelength gamma
// take their defaults.
func (o Options) Resolve() Options {
	r := o
	if r.BitDepth == 0 && r.BitRate != 0 {
		logx.Logger().Debug("colorconv: bitRate resolved as bitDepth", "bitRate", r.BitRate)
		r.BitDepth = r.BitRate
	}
	r.BitRate = 0
	d := DefaultOptions()
	if r.YLower == 0 && r.YUpper == 0 {
		r.YLower, r.YUpper = d.YLower, d.YUpper
	}
	if r.CLower == 0 && r.CUpper == 0 {
		r.CLower, r.CUpper = d.CLower, d.CUpper
	}
	if r.Gamma == 0 {
		r.Gamma = d.Gamma
	}
	return r
}

// bitDepth returns the resolved bit depth, or def when unspecified.
func (o Options) bitDepth(def int) int {
	if bd := o.Resolve().BitDepth; bd > 0 {
		return bd
	}
	return def
}

// space returns the color space, or def when unspecified.
func (o Options) space(def cie.Space) (cie.Space, error) {
	if o.ColorSpace == "" {
		return def, nil
	}
	return cie.ParseSpace(o.ColorSpace)
}

// white returns the reference white, or def when unspecified.
func (o Options) white(def cie.White) (cie.White, error) {
	if o.ReferenceWhite == "" {
		return def, nil
	}
	return cie.ParseWhite(o.ReferenceWhite)
}

// spaceWhite resolves both the color space and the reference white.
func (o Options) spaceWhite(defSpace cie.Space, defWhite cie.White) (cie.Space, cie.White, error) {
	s, err := o.space(defSpace)
	if err != nil {
		return s, 0, err
	}
	w, err := o.white(defWhite)
	return s, w, err
}

// WithRound sets [Options.Round].
func WithRound(round bool) Option {
	return func(o *Options) { o.Round = round }
}

// WithBitDepth sets [Options.BitDepth].
func WithBitDepth(bitDepth int) Option {
	return func(o *Options) { o.BitDepth = bitDepth }
}

// WithBitRate sets [Options.BitRate], the alias of BitDepth.
func WithBitRate(bitRate int) Option {
	return func(o *Options) { o.BitRate = bitRate }
}

// WithNormalized sets [Options.Normalized].
func WithNormalized(normalized bool) Option {
	return func(o *Options) { o.Normalized = normalized }
}

// WithColorSpace sets [Options.ColorSpace].
func WithColorSpace(space string) Option {
	return func(o *Options) { o.ColorSpace = space }
}

// WithReferenceWhite sets [Options.ReferenceWhite].
func WithReferenceWhite(white string) Option {
	return func(o *Options) { o.ReferenceWhite = white }
}

// WithLuma sets the [Options.Kb] and [Options.Kr] luma coefficients.
func WithLuma(kb, kr float64) Option {
	return func(o *Options) { o.Kb, o.Kr = kb, kr }
}

// WithYBounds sets [Options.YLower] and [Options.YUpper].
func WithYBounds(lower, upper float64) Option {
	return func(o *Options) { o.YLower, o.YUpper = lower, upper }
}

// WithCBounds sets [Options.CLower] and [Options.CUpper].
func WithCBounds(lower, upper float64) Option {
	return func(o *Options) { o.CLower, o.CUpper = lower, upper }
}

// WithGamma sets [Options.Gamma].
func WithGamma(gamma float64) Option {
	return func(o *Options) { o.Gamma = gamma }
}

// WithOptions replaces all options with the given ones,
// for example options read with [OpenOptions].
func WithOptions(opts Options) Option {
	return func(o *Options) { *o = opts }
}

// Encoding is the format of an options file.
type Encoding string

const (
	TOML Encoding = "toml"
	YAML Encoding = "yaml"
)

// ReadOptions reads options in the given encoding from r.
// Keys that are absent keep their [DefaultOptions] values.
func ReadOptions(r io.Reader, enc Encoding) (Options, error) {
	o := DefaultOptions()
	var err error
	switch enc {
	case TOML:
		err = toml.NewDecoder(r).Decode(&o)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&o)
		if err == io.EOF {
			err = nil
		}
	default:
		return o, fmt.Errorf("colorconv.ReadOptions: unsupported encoding %q", enc)
	}
	if err != nil {
		return o, fmt.Errorf("colorconv.ReadOptions: %w", err)
	}
	if _, err := cie.ParseSpace(o.ColorSpace); err != nil {
		return o, logConfigError(fmt.Errorf("colorconv.ReadOptions: %w", err))
	}
	if _, err := cie.ParseWhite(o.ReferenceWhite); err != nil {
		return o, logConfigError(fmt.Errorf("colorconv.ReadOptions: %w", err))
	}
	return o.Resolve(), nil
}

// OpenOptions reads options from the given file, selecting the encoding
// from its extension (.toml, .yaml or .yml). A leading ~ in the name
// is expanded to the home directory.
func OpenOptions(filename string) (Options, error) {
	var enc Encoding
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		enc = TOML
	case ".yaml", ".yml":
		enc = YAML
	default:
		return DefaultOptions(), fmt.Errorf("colorconv.OpenOptions: unknown file extension for %q", filename)
	}
	path, err := homedir.Expand(filename)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("colorconv.OpenOptions: %w", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return DefaultOptions(), err
	}
	return ReadOptions(bytes.NewReader(b), enc)
}

// WriteOptions writes the options to w in the given encoding.
func WriteOptions(w io.Writer, o Options, enc Encoding) error {
	switch enc {
	case TOML:
		return toml.NewEncoder(w).Encode(o)
	case YAML:
		e := yaml.NewEncoder(w)
		if err := e.Encode(o); err != nil {
			return err
		}
		return e.Close()
	}
	return fmt.Errorf("colorconv.WriteOptions: unsupported encoding %q", enc)
}
