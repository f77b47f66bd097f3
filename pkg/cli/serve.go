package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/khalid-nowaf/runetrie/pkg/server"
)

type ServeCmd struct {
	Addr string   `help:"Address to listen on, defaults to the configuration."`
	CORS []string `name:"cors" help:"Allowed CORS origins, defaults to the configuration."`
	WordsFlags
}

func (cmd *ServeCmd) Run(ctx *Context) error {
	t, err := cmd.load(ctx)
	if err != nil {
		return err
	}

	origins := cmd.CORS
	if len(origins) == 0 {
		origins = ctx.Config.Server.CORSOrigins
	}

	srv := server.NewServer(server.NewStore(t), server.Options{
		Addr:         firstNonEmpty(cmd.Addr, ctx.Config.Server.Addr),
		CORSOrigins:  origins,
		WriteTimeout: ctx.Config.Server.WriteTimeout,
		Logger:       ctx.Logger,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(runCtx)
}
