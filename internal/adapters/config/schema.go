package config

// Manifest represents the structure of the repo_list.json dependency manifest
// and its YAML variants.
// It maps a requested name to the repository that provides it.
type Manifest map[string]*RepoDTO

// RepoDTO represents a repository entry in the manifest.
type RepoDTO struct {
	Link      string `json:"link"      yaml:"link"`
	Branch    string `json:"branch"    yaml:"branch"`
	Depth     int    `json:"depth"     yaml:"depth"`
	Unshallow bool   `json:"unshallow" yaml:"unshallow"`
}
