package config

// FileConfig is the on-disk shape of the layered YAML configuration file
// (§6). Every field is optional; zero values fall through to the compiled
// defaults in defaults.go and are then overridden by any flags the CLI
// layer passes in on top.
type FileConfig struct {
	GasLimit                uint64            `yaml:"gas_limit,omitempty"`
	NumThreads              int               `yaml:"num_threads,omitempty"`
	CheckReferenceVM        *bool             `yaml:"check_reference_vm,omitempty"`
	Verbose                 *bool             `yaml:"verbose,omitempty"`
	ReportStacktraceOnAbort *bool             `yaml:"report_stacktrace_on_abort,omitempty"`
	SourceFiles             []string          `yaml:"source_files,omitempty"`
	DepFiles                []string          `yaml:"dep_files,omitempty"`
	NamedAddresses          map[string]string `yaml:"named_addresses,omitempty"`
	ReportFormat            string            `yaml:"report_format,omitempty"`
	ReportTemplate          string            `yaml:"report_template,omitempty"`
}
