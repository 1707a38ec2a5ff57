package ports

// ModuleInfoPort is the module-metadata oracle. IsModule reports
// whether name is a known build module. The oracle is read-only;
// implementations may cache answers for the whole invocation.
type ModuleInfoPort interface {
	IsModule(name string) bool
}
