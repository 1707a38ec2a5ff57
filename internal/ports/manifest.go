package ports

// PushManifestPort reads named push-group manifests from the configured
// manifest directory. Read returns the manifest's lines verbatim.
type PushManifestPort interface {
	Read(name string) ([]string, error)
}
