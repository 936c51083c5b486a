package config

// CatalogConfig points the service at an emission factor override file.
type CatalogConfig struct {
	// Path is an optional YAML or JSON factor file layered over the builtin
	// table. Empty keeps the builtin factors.
	Path string `json:"path"`
}
