package update

// Finding represents one outdated action reference or one reference that
// couldn't be resolved. Findings feed the diff output, the SARIF report, and
// the pull request description.
type Finding struct {
	File       string
	Line       int
	OldLine    string
	NewLine    string
	Action     string
	OldVersion string
	NewVersion string
	Message    string
}
