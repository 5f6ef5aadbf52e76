package config

type QRCodeConfig struct {
	DefaultSize int     `json:"default_size" yaml:"default_size"`
	MinSize     int     `json:"min_size" yaml:"min_size"`
	MaxSize     int     `json:"max_size" yaml:"max_size"`
	DarkColor   string  `json:"dark_color" yaml:"dark_color"`
	LightColor  string  `json:"light_color" yaml:"light_color"`
	LogoScale   float64 `json:"logo_scale" yaml:"logo_scale"`
}

type FrameConfig struct {
	// QRRatio is the QR width as a fraction of the frame width.
	QRRatio   float64 `json:"qr_ratio" yaml:"qr_ratio"`
	FontSize  float64 `json:"font_size" yaml:"font_size"`
	TextColor string  `json:"text_color" yaml:"text_color"`
}

// AssetsConfig paths accept local files or oss://<object key>.
type AssetsConfig struct {
	FramePath    string `json:"frame" yaml:"frame" env:"SUIVI_FRAME_PATH"`
	LogoPath     string `json:"logo" yaml:"logo" env:"SUIVI_LOGO_PATH"`
	TemplatePath string `json:"template" yaml:"template"`
	StaticDir    string `json:"static_dir" yaml:"static_dir"`
}
