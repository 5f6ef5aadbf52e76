package main

import (
	"Suivi/config"
	"Suivi/pkg/log"
	"Suivi/pkg/server"
	"Suivi/service"
	"Suivi/types"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Renderer is the offline half of the server: resolve a target and write its QR image.
type Renderer struct {
	Config   *config.Config
	Resolver service.IResolverService
	Render   service.IRenderService
}

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())

	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "follow QR codes and landing pages",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "render",
				Usage: "render one QR image to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "person, \"first last\""},
					&cli.StringFlag{Name: "organisation-id", Usage: "organisation external id"},
					&cli.StringFlag{Name: "function-tag", Usage: "function tag"},
					&cli.StringFlag{Name: "size", Usage: "pixel size, only with --frame=false"},
					&cli.StringFlag{Name: "frame", Value: "true"},
					&cli.StringFlag{Name: "verify", Value: "true"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "qrcode.png"},
				},
				Action: func(ctx *cli.Context) error {
					r, err := InitRenderer(cfg)
					if err != nil {
						return err
					}
					return r.Run(ctx)
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}

func (r *Renderer) Run(ctx *cli.Context) error {
	opts, err := r.Render.Options(ctx.String("size"), ctx.String("frame"))
	if err != nil {
		return err
	}
	target, err := r.Resolver.Resolve(ctx.Context, types.TargetQuery{
		Name:           ctx.String("name"),
		OrganisationID: ctx.String("organisation-id"),
		FunctionTag:    ctx.String("function-tag"),
		Verify:         ctx.String("verify"),
	})
	if err != nil {
		return err
	}

	png, err := r.Render.Render(ctx.Context, types.RenderRequest{
		URL:   service.FollowURL(r.Config.App.BaseURL, target),
		Size:  opts.Size,
		Frame: opts.Frame,
		Label: target.CanonicalLabel,
	})
	if err != nil {
		return err
	}
	out := ctx.String("out")
	if err := os.WriteFile(out, png, 0o644); err != nil {
		return err
	}
	log.L.Info("qrcode written", zap.String("file", out), zap.String("label", target.CanonicalLabel),
		zap.Bool("verified", target.Verified))
	return nil
}
