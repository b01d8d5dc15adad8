// Package config loads the YAML configuration file named in §6 and merges
// it over compiled-in defaults to produce a runner.Config.
//
// # Layers
//
// Configuration is resolved in two layers, later overriding earlier:
//
//  1. DefaultFileConfig() — gas_limit 1,000,000, check_reference_vm false,
//     report_format "table", num_threads 0 (GOMAXPROCS).
//  2. The YAML file passed via --config, if any.
//
// The cmd package applies a third layer on top by setting fields directly
// on the runner.Config returned by ToRunnerConfig, so that command-line
// flags always win over both.
//
// # Usage
//
//	fc, err := config.Load(configPath)
//	if err != nil {
//	    return err
//	}
//	cfg := fc.ToRunnerConfig()
package config
