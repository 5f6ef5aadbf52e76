package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App        *App             `json:"app" yaml:"app"`
	Server     *Server          `json:"server" yaml:"server"`
	Redis      *Redis           `json:"redis" yaml:"redis"`
	Oss        *OssConfig       `json:"oss" yaml:"oss"`
	RocketMQ   *RocketMQConfig  `json:"rocketmq" yaml:"rocketmq"`
	Directory  *DirectoryConfig `json:"directory" yaml:"directory"`
	QRCode     *QRCodeConfig    `json:"qrcode" yaml:"qrcode"`
	Frame      *FrameConfig     `json:"frame" yaml:"frame"`
	Assets     *AssetsConfig    `json:"assets" yaml:"assets"`
	Messengers []*Messenger     `json:"messengers" yaml:"messengers"`
}

type Server struct {
	Http int `json:"http" yaml:"http" env:"SUIVI_HTTP_PORT"`
}

// New loads the yaml file, fills defaults, then applies SUIVI_* environment overrides.
func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}

	return conf
}

func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}
	conf.applyDefaults()

	if err := env.Parse(&conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &conf, nil
}

// Default returns a configuration usable without a file, mostly for tests and the render command.
func Default() *Config {
	var conf Config
	conf.applyDefaults()
	return &conf
}

func (c *Config) applyDefaults() {
	if c.App == nil {
		c.App = &App{}
	}
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.App.BaseURL == "" {
		c.App.BaseURL = "http://localhost:8080"
	}
	if c.App.MarketingURL == "" {
		c.App.MarketingURL = "https://example.org"
	}
	if c.App.PageTitle == "" {
		c.App.PageTitle = "Suivi"
	}

	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}

	if c.Directory == nil {
		c.Directory = &DirectoryConfig{}
	}
	d := c.Directory
	if d.PersonPath == "" {
		d.PersonPath = "/people/search"
	}
	if d.OrganisationPath == "" {
		d.OrganisationPath = "/organisations/search"
	}
	if d.TagPath == "" {
		d.TagPath = "/tags/search"
	}
	if d.QueryParam == "" {
		d.QueryParam = "q"
	}
	if d.ResultsPath == "" {
		d.ResultsPath = "results"
	}
	if d.Cache == "" {
		d.Cache = CacheOff
	}
	if d.CacheTTL == 0 {
		d.CacheTTL = 10 * time.Minute
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	q := c.QRCode
	if q.DefaultSize == 0 {
		q.DefaultSize = 512
	}
	if q.MinSize == 0 {
		q.MinSize = 64
	}
	if q.MaxSize == 0 {
		q.MaxSize = 2048
	}
	if q.DarkColor == "" {
		q.DarkColor = "#000000"
	}
	if q.LightColor == "" {
		q.LightColor = "#ffffff"
	}
	if q.LogoScale == 0 {
		q.LogoScale = 0.22
	}

	if c.Frame == nil {
		c.Frame = &FrameConfig{}
	}
	if c.Frame.QRRatio == 0 {
		c.Frame.QRRatio = 0.5
	}
	if c.Frame.FontSize == 0 {
		c.Frame.FontSize = 40
	}
	if c.Frame.TextColor == "" {
		c.Frame.TextColor = "#1d1d1b"
	}

	if c.Assets == nil {
		c.Assets = &AssetsConfig{}
	}
	if c.Assets.StaticDir == "" {
		c.Assets.StaticDir = "assets"
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}

// Production reports whether side effects such as analytics publishing are enabled.
func (c *Config) Production() bool {
	return c.App.Env == "prod"
}

// Messenger looks up a configured messenger by name.
func (c *Config) Messenger(name string) (*Messenger, bool) {
	for _, m := range c.Messengers {
		if m != nil && m.Name == name {
			return m, true
		}
	}
	return nil, false
}
