package config

import "github.com/spf13/viper"

// applyEnvOverrides layers STYLESCAN_*-prefixed environment variables over
// cfg, the way pyscn's clone/dead-code config loaders layer viper defaults
// under a TOML read — here used for the env layer instead, since this
// package's main Config already parses TOML by hand (toml_loader.go)
// against typed sections pyscn's viper.UnmarshalKey pattern doesn't fit as
// cleanly. Precedence above this layer (explicit CLI flags) is applied by
// callers after LoadConfig returns.
func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix("STYLESCAN")
	v.AutomaticEnv()

	if val := v.GetString("OUTPUT_FORMAT"); val != "" {
		cfg.Output.Format = val
	}
	if val := v.GetString("OUTPUT_DIRECTORY"); val != "" {
		cfg.Output.Directory = val
	}
	if v.IsSet("OUTPUT_MINIFY") {
		cfg.Output.Minify = v.GetBool("OUTPUT_MINIFY")
	}
	if val := v.GetString("SERVE_HOST"); val != "" {
		cfg.Serve.Host = val
	}
	if v.IsSet("SERVE_PORT") {
		cfg.Serve.Port = v.GetInt("SERVE_PORT")
	}
	if v.IsSet("WATCH_DEBOUNCE_MS") {
		cfg.Watch.DebounceMillis = v.GetInt("WATCH_DEBOUNCE_MS")
	}
}
