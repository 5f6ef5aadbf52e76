//go:build wireinject
// +build wireinject

package main

import (
	"Suivi/config"
	"Suivi/dao/cache"
	"Suivi/handler"
	"Suivi/pkg/assets"
	"Suivi/pkg/client"
	"Suivi/pkg/directory"
	"Suivi/pkg/oss"
	"Suivi/pkg/qrcode"
	"Suivi/pkg/rocketmq"
	"Suivi/pkg/server"
	"Suivi/service"

	"github.com/google/wire"
)

var renderSet = wire.NewSet(
	client.NewRedisClient,
	cache.ProviderSet,
	directory.NewClient,
	oss.NewBucket,
	assets.Load,
	qrcode.NewEncoder,
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		renderSet,
		rocketmq.InitProducer,
		service.ProviderSet,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.QRCode), "*"),
		wire.Struct(new(handler.Page), "*"),
		wire.Struct(new(handler.Redirect), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil, nil
}

func InitRenderer(cfg *config.Config) (*Renderer, error) {
	wire.Build(
		renderSet,
		wire.Struct(new(service.DirectoryService), "*"),
		wire.Bind(new(service.IDirectoryService), new(*service.DirectoryService)),
		wire.Struct(new(service.ResolverService), "*"),
		wire.Bind(new(service.IResolverService), new(*service.ResolverService)),
		wire.Struct(new(service.RenderService), "*"),
		wire.Bind(new(service.IRenderService), new(*service.RenderService)),
		wire.Struct(new(Renderer), "*"),
	)
	return nil, nil
}
