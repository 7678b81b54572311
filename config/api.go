package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// HTML table and GraphQL read surface are public; the REST API is not
	return []string{"/", "/graphql", "/playground"}
}
