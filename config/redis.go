package config

// Redis Redis配置信息
type Redis struct {
	Address  string `json:"address" yaml:"address"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password" env:"SUIVI_REDIS_PASSWORD"`
	Database int    `json:"database" yaml:"database"`
}
