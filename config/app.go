package config

type App struct {
	Env          string `json:"env" yaml:"env" env:"APP_ENV"`
	Debug        bool   `json:"debug" yaml:"debug" env:"SUIVI_DEBUG"`
	BaseURL      string `json:"base_url" yaml:"base_url" env:"SUIVI_BASE_URL"`
	MarketingURL string `json:"marketing_url" yaml:"marketing_url" env:"SUIVI_MARKETING_URL"`
	PageTitle    string `json:"page_title" yaml:"page_title"`
}
