package domain

const (
	// DefaultDepsDir is where rig-deps places cloned repositories.
	DefaultDepsDir = "deps"

	// ManifestJSONName is the primary dependency manifest file name.
	ManifestJSONName = "repo_list.json"

	// ManifestYAMLName and ManifestYMLName are accepted alternatives.
	ManifestYAMLName = "repo_list.yaml"
	ManifestYMLName  = "repo_list.yml"

	// GitTool is the version-control client rig-deps drives.
	GitTool = "git"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// CompactCols and CompactLines are the console size requested by --compact.
	CompactCols  = 100
	CompactLines = 30
)

// ManifestCandidates returns the manifest file names searched in the working
// directory, in priority order.
func ManifestCandidates() []string {
	return []string{ManifestJSONName, ManifestYAMLName, ManifestYMLName}
}
