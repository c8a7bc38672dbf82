// Package config handles facet configuration loading and management.
package config

// Config holds all facet settings.
type Config struct {
	Kernel  KernelConfig  `yaml:"kernel"`
	Random  RandomConfig  `yaml:"random"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// KernelConfig selects and tunes the geometry backend.
type KernelConfig struct {
	Name      string `yaml:"name"`       // halfspace, sdfx or manifold
	SdfxCells int    `yaml:"sdfx_cells"` // marching cubes resolution
}

// RandomConfig drives random plans when no script or plan file is given.
type RandomConfig struct {
	Cuts        int     `yaml:"cuts"` // 0 picks a count at random
	Seed        int64   `yaml:"seed"`
	StockSize   float64 `yaml:"stock_size"`
	MinDepth    float64 `yaml:"min_depth"`
	DepthJitter float64 `yaml:"depth_jitter"`
	Extent      float64 `yaml:"extent"`
}

// OutputConfig holds mesh output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`   // empty writes JSON to stdout
	Format string `yaml:"format"` // stl or json
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Kernel: KernelConfig{
			Name:      "halfspace",
			SdfxCells: 200,
		},
		Random: RandomConfig{
			Cuts:        0,
			Seed:        1,
			StockSize:   3,
			MinDepth:    1,
			DepthJitter: 0.25,
			Extent:      10,
		},
		Output: OutputConfig{
			Path:   "",
			Format: "stl",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
