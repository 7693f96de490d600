package config

// InputConfig describes where the fix table comes from.
type InputConfig struct {
	// Source is an http(s) URL or a local file path.
	Source string `yaml:"source" validate:"omitempty"`
	// Delimiter overrides delimiter sniffing when set to a single rune.
	Delimiter string `yaml:"delimiter" validate:"omitempty,max=1"`
}

// OutputConfig describes where results are written.
type OutputConfig struct {
	GeoJSONPath string `yaml:"geojson" validate:"omitempty"`
	RejectsPath string `yaml:"rejects" validate:"omitempty"`
}

// ThresholdsConfig holds the trip segmentation gap limits.
type ThresholdsConfig struct {
	MaxGapSeconds float64 `yaml:"maxGapSeconds" validate:"gte=0"`
	MaxJumpKM     float64 `yaml:"maxJumpKM" validate:"gte=0"`
}

// Config is the root configuration structure.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	LogLevel   string           `yaml:"logLevel" validate:"omitempty,oneof=debug info warn error"`
}
