package config

import "sort"

var Presets = map[string]func(*Config){
	"default": func(*Config) {},
	"slow": func(c *Config) {
		c.AdvanceInterval = 1.0
	},
	"fast": func(c *Config) {
		c.AdvanceInterval = 0.1
	},
	"still": func(c *Config) {
		c.Spin = AnglesConfig{}
	},
	"lowpower": func(c *Config) {
		c.FPS = 20
		c.Spin = AnglesConfig{Z: 1.5}
	},
}

// GetPreset returns the default config with the named preset applied, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
