package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gte=0"`
}

// OutputConfig contains output artifact configuration
type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Pretty bool   `yaml:"pretty"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
}
