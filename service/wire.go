package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(DirectoryService), "*"),
	wire.Bind(new(IDirectoryService), new(*DirectoryService)),

	wire.Struct(new(ResolverService), "*"),
	wire.Bind(new(IResolverService), new(*ResolverService)),

	wire.Struct(new(RenderService), "*"),
	wire.Bind(new(IRenderService), new(*RenderService)),

	NewPageService,
	wire.Bind(new(IPageService), new(*PageService)),

	wire.Struct(new(AnalyticsService), "*"),
	wire.Bind(new(IAnalyticsService), new(*AnalyticsService)),
)
