package config

const (
	defaultGasLimit     = 1_000_000
	defaultReportFormat = "table"
)

// DefaultFileConfig returns the compiled-in configuration, used when no
// config file is present and no flags override a given field.
//
// check_reference_vm defaults to false: dual-backend mode requires a real
// reference VM collaborator to be wired into the embedding binary, and
// defaulting it on would otherwise report every test as a cross-VM
// mismatch once a real primary VM is compared against
// backend.UnconfiguredReferenceVM.
func DefaultFileConfig() FileConfig {
	falseVal := false
	return FileConfig{
		GasLimit:         defaultGasLimit,
		NumThreads:       0, // runtime.GOMAXPROCS(0), resolved by runner.Config
		CheckReferenceVM: &falseVal,
		ReportFormat:     defaultReportFormat,
	}
}
