// Package config holds the tool settings and the reference name lists the
// classification pipeline consults.
package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	"github.com/shsift/shsift/core/classify"
)

//go:embed default/config.yaml
var defaultConfigData []byte

// ConfigurationName is the file name looked up in the config directory.
const ConfigurationName = "shsift.yaml"

type Configuration struct {
	// MaxScriptBytes rejects scripts larger than this before scanning.
	MaxScriptBytes int64 `json:"max_script_bytes" validate:"gt=0"`

	// Engine selects the default extraction engine: the heuristic
	// character scanner or the bash AST walker.
	Engine string `json:"engine" validate:"oneof=scanner ast"`

	// LegacyEscapes keeps the historical single-character quote-escape
	// check instead of the corrected backslash-run parity check.
	LegacyEscapes bool `json:"legacy_escapes"`

	// Color enables colored reports.
	Color bool `json:"color"`

	Sets ReferenceLists `json:"sets"`
}

// ReferenceLists are the literal-name collections, in classification
// order. Locally declared identifiers are computed per script and always
// run before these.
type ReferenceLists struct {
	// ReservedWords covers shell keywords, built-ins and conventional
	// here-document markers.
	ReservedWords []string `json:"reserved_words" validate:"required,min=1,unique"`

	// StandardUtilities are expected on any POSIX-ish system.
	StandardUtilities []string `json:"standard_utilities" validate:"required,min=1,unique"`

	// ExtensionUtilities are common but not universal.
	ExtensionUtilities []string `json:"extension_utilities" validate:"unique"`

	// PlatformUtilities exist only on particular platforms.
	PlatformUtilities []string `json:"platform_utilities" validate:"unique"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// ReferenceSets returns the configured sets in classification order.
func (c *Configuration) ReferenceSets() []classify.ReferenceSet {
	return []classify.ReferenceSet{
		classify.NewReferenceSet("reserved words", c.Sets.ReservedWords),
		classify.NewReferenceSet("standard utilities", c.Sets.StandardUtilities),
		classify.NewReferenceSet("extension utilities", c.Sets.ExtensionUtilities),
		classify.NewReferenceSet("platform utilities", c.Sets.PlatformUtilities),
	}
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err) // the embedded default must always load
	}
	return &out
}
