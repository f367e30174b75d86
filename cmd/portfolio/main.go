package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/jvrel/portfolio/internal/clock"
	"github.com/jvrel/portfolio/internal/config"
	"github.com/jvrel/portfolio/internal/contact"
	"github.com/jvrel/portfolio/internal/logger"
	"github.com/jvrel/portfolio/internal/providers/email"
	"github.com/jvrel/portfolio/internal/server"
	"github.com/jvrel/portfolio/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		email.Module,
		contact.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
