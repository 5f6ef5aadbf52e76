package config

import "time"

const (
	CacheOff    = "off"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// DirectoryConfig points at the external people / organisation / tag search.
type DirectoryConfig struct {
	BaseURL          string        `json:"base_url" yaml:"base_url" env:"SUIVI_DIRECTORY_URL"`
	APIKey           string        `json:"api_key" yaml:"api_key" env:"SUIVI_DIRECTORY_API_KEY"`
	PersonPath       string        `json:"person_path" yaml:"person_path"`
	OrganisationPath string        `json:"organisation_path" yaml:"organisation_path"`
	TagPath          string        `json:"tag_path" yaml:"tag_path"`
	QueryParam       string        `json:"query_param" yaml:"query_param"`
	ResultsPath      string        `json:"results_path" yaml:"results_path"`
	Timeout          time.Duration `json:"timeout" yaml:"timeout"`
	Cache            string        `json:"cache" yaml:"cache"`
	CacheTTL         time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
}
