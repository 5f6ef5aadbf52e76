package oss

import (
	"Suivi/config"
	"context"
	"io"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// Bucket reads objects from one OSS bucket.
type Bucket struct {
	Client *oss.Client
	Name   string
}

// NewBucket returns nil when no bucket is configured.
func NewBucket(conf *config.Config) *Bucket {
	if conf.Oss == nil || conf.Oss.Bucket == "" {
		return nil
	}

	var provider credentials.CredentialsProvider
	if conf.Oss.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(conf.Oss.AccessKeyID, conf.Oss.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithEndpoint(conf.Oss.Endpoint).WithRegion(conf.Oss.Region)

	return &Bucket{
		Client: oss.NewClient(cfg),
		Name:   conf.Oss.Bucket,
	}
}

// Open 下载为流
func (b *Bucket) Open(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	out, err := b.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(b.Name),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}
