package config

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

type Config struct {
	App struct {
		Addr    string `yaml:"addr" json:"addr"`
		DataDir string `yaml:"data_dir" json:"data_dir"`
	} `yaml:"app" json:"app"`

	Log struct {
		Level  string `yaml:"level" json:"level"`   // debug | info | warn | error
		Format string `yaml:"format" json:"format"` // text | json
	} `yaml:"log" json:"log"`

	Catalog struct {
		Path string `yaml:"path" json:"path"`
	} `yaml:"catalog" json:"catalog"`

	Contact struct {
		RatePerSecond     float64 `yaml:"rate_per_second" json:"rate_per_second"`
		Burst             int     `yaml:"burst" json:"burst"`
		MaxMessageLen     int     `yaml:"max_message_len" json:"max_message_len"`
		ResetAfterSeconds int     `yaml:"reset_after_seconds" json:"reset_after_seconds"`
	} `yaml:"contact" json:"contact"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins" json:"allow_origins"`
	} `yaml:"cors" json:"cors"`
}

// Default returns the configuration shipped with the binary.
func Default() Config {
	var cfg Config
	// default.yml is part of the build; a decode failure is a programming error
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: bad embedded default.yml: " + err.Error())
	}
	return cfg
}

// Load reads path on top of the defaults, so keys missing from the file keep
// their shipped values.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
