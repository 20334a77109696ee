package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-empty values from source are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	set := func(dst *string, v, key string) {
		if v == "" {
			return
		}
		*dst = v
		target.Sources[key] = sourceType
	}
	set(&target.LogLevel, source.LogLevel, KeyLogLevel)
	set(&target.LogFormat, source.LogFormat, KeyLogFormat)
	set(&target.Output, source.Output, KeyOutput)
	set(&target.Database, source.Database, KeyDatabase)
	set(&target.Tag, source.Tag, KeyTag)
}
