package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"movetest/internal/model"
	"movetest/internal/runner"
	"movetest/pkg/logging"
)

// Load reads the YAML configuration file at path, merges it over the
// compiled-in defaults, validates the result, and returns it. An empty
// path or a missing file is not an error — it produces the defaults
// unchanged (§6: "no config file" is a supported mode, not a failure).
func Load(path string) (FileConfig, error) {
	fc := DefaultFileConfig()
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("config", "no config file at %s, using defaults", path)
			return fc, nil
		}
		return FileConfig{}, ConfigurationError{FilePath: path, Message: "reading config file", Cause: err}
	}

	overlay := FileConfig{}
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return FileConfig{}, ConfigurationError{FilePath: path, Message: "parsing YAML", Cause: err}
	}
	merge(&fc, overlay)

	if err := Validate(fc); err != nil {
		return FileConfig{}, ConfigurationError{FilePath: path, Message: "validating configuration", Cause: err}
	}

	logging.Info("config", "loaded configuration from %s", path)
	return fc, nil
}

// merge overlays non-zero fields from src onto dst. Slices and maps replace
// rather than append: a config file that sets source_files: [] means zero
// source files, not "keep the default".
func merge(dst *FileConfig, src FileConfig) {
	if src.GasLimit != 0 {
		dst.GasLimit = src.GasLimit
	}
	if src.NumThreads != 0 {
		dst.NumThreads = src.NumThreads
	}
	if src.CheckReferenceVM != nil {
		dst.CheckReferenceVM = src.CheckReferenceVM
	}
	if src.Verbose != nil {
		dst.Verbose = src.Verbose
	}
	if src.ReportStacktraceOnAbort != nil {
		dst.ReportStacktraceOnAbort = src.ReportStacktraceOnAbort
	}
	if src.SourceFiles != nil {
		dst.SourceFiles = src.SourceFiles
	}
	if src.DepFiles != nil {
		dst.DepFiles = src.DepFiles
	}
	if src.NamedAddresses != nil {
		dst.NamedAddresses = src.NamedAddresses
	}
	if src.ReportFormat != "" {
		dst.ReportFormat = src.ReportFormat
	}
	if src.ReportTemplate != "" {
		dst.ReportTemplate = src.ReportTemplate
	}
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// ToRunnerConfig converts the loaded file configuration into the
// runner.Config the core engine consumes (§6). Named addresses are widened
// from their YAML string form into model.Address here, at the config/core
// boundary, so the core package never parses raw strings itself.
func (fc FileConfig) ToRunnerConfig() runner.Config {
	addrs := make(map[string]model.Address, len(fc.NamedAddresses))
	for alias, addr := range fc.NamedAddresses {
		addrs[alias] = model.Address(addr)
	}

	return runner.Config{
		GasLimit:                fc.GasLimit,
		NumThreads:              fc.NumThreads,
		CheckReferenceVM:        boolOr(fc.CheckReferenceVM, false),
		Verbose:                 boolOr(fc.Verbose, false),
		ReportStacktraceOnAbort: boolOr(fc.ReportStacktraceOnAbort, false),
		SourceFiles:             fc.SourceFiles,
		DepFiles:                fc.DepFiles,
		NamedAddressValues:      addrs,
		ReportFormat:            fc.ReportFormat,
	}
}
