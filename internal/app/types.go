package app

type InstallRequest struct {
	// Packages are sdk-style paths, e.g. "build-tools;30.0.3".
	Packages []string

	// Root is the SDK root to install under.
	Root string

	// Refresh forces a fresh manifest fetch even when a cached copy
	// exists.
	Refresh bool
}

type PackageOutcome struct {
	Package    string
	InstallDir string
	Skipped    bool
	Err        error
}

type InstallResult struct {
	Outcomes []PackageOutcome
	Failed   int
}

type ListRequest struct {
	Root    string
	Refresh bool
}

type ListResult struct {
	// Available holds every known package name, sorted.
	Available []string

	// Installed holds package install directories found under the
	// root, relative to it.
	Installed []string
}

type LicensesRequest struct {
	Root string

	// Accept writes the license acceptance files without prompting.
	Accept bool
}

type LicensesResult struct {
	AlreadyAccepted bool
	Written         bool
}

type WriteIndexRequest struct {
	Path    string
	Refresh bool
}

type WriteIndexResult struct {
	Packages int
}
