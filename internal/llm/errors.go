package llm

// ConfigError indicates the provider is not usable as configured, e.g. a
// missing API key or an unconfigured model tier. It is fatal at first use.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return "llm config error: " + e.Message
}
