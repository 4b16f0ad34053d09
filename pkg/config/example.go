package config

// ExampleConfig returns a configuration suitable for writing out as a
// starting point. It mirrors the defaults and fills in the release section
// with placeholder values.
func ExampleConfig() *Config {
	cfg := Default()
	cfg.Release = ReleaseConfig{
		GitHub: GitHubConfig{
			Owner: "your-github-user",
			Repo:  "your-repo",
			Draft: true,
		},
	}
	return cfg
}
