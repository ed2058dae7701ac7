package ports

type LicenseStorePort interface {
	// WriteAccepted records acceptance of the known SDK license hashes
	// under the SDK root.
	WriteAccepted(root string) error

	// Accepted reports whether the license file under root carries the
	// expected hashes.
	Accepted(root string) (bool, error)
}
