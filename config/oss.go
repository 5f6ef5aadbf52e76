package config

type OssConfig struct {
	Endpoint        string `json:"endpoint" yaml:"endpoint"`
	Region          string `json:"region" yaml:"region"`
	Bucket          string `json:"bucket" yaml:"bucket"`
	AccessKeyID     string `json:"ak" yaml:"ak" env:"SUIVI_OSS_AK"`
	AccessKeySecret string `json:"sk" yaml:"sk" env:"SUIVI_OSS_SK"`
}
