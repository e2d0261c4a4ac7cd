package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	validator "github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"bgc/gradient"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	FamilyConfig struct {
		Slice string `yaml:"slice"`
	}

	RadialFamilyConfig struct {
		Slice         string `yaml:"slice"`
		IntrinsicSize string `yaml:"intrinsic_size"`
	}

	GeneratorConfig struct {
		Linear          FamilyConfig       `yaml:"linear"`
		Radial          RadialFamilyConfig `yaml:"radial"`
		RepeatingLinear FamilyConfig       `yaml:"repeating_linear"`
		RepeatingRadial RadialFamilyConfig `yaml:"repeating_radial"`
	}

	OutputConfig struct {
		NameTemplate  string `yaml:"name_template" validate:"required"`
		Transliterate bool   `yaml:"transliterate"`
		Banner        string `yaml:"banner"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Generator GeneratorConfig `yaml:"generator"`
		Output    OutputConfig    `yaml:"output"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, these are expanded later
	// with values known only at generation time
	OutputNameTemplateFieldName TemplateFieldName = "name_template"
	BannerTemplateFieldName     TemplateFieldName = "banner"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(BannerTemplateFieldName)),
)

// checkGenerator makes sure radial families know which size they could leave
// out, empty value would silently elide nothing.
func checkGenerator(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(Config)
	if cfg.Generator.Radial.IntrinsicSize == "" {
		sl.ReportError(cfg.Generator.Radial.IntrinsicSize, "Generator.Radial.IntrinsicSize", "IntrinsicSize", "required", "")
	}
	if cfg.Generator.RepeatingRadial.IntrinsicSize == "" {
		sl.ReportError(cfg.Generator.RepeatingRadial.IntrinsicSize, "Generator.RepeatingRadial.IntrinsicSize", "IntrinsicSize", "required", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkGenerator)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// GeneratorOptions converts configuration into gradient generator options.
func (conf *GeneratorConfig) GeneratorOptions() gradient.Options {
	return gradient.Options{
		Linear:          gradient.FamilyOptions{Slice: conf.Linear.Slice},
		Radial:          gradient.FamilyOptions{Slice: conf.Radial.Slice, IntrinsicSize: conf.Radial.IntrinsicSize},
		RepeatingLinear: gradient.FamilyOptions{Slice: conf.RepeatingLinear.Slice},
		RepeatingRadial: gradient.FamilyOptions{Slice: conf.RepeatingRadial.Slice, IntrinsicSize: conf.RepeatingRadial.IntrinsicSize},
	}
}
