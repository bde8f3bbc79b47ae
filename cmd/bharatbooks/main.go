package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"

	"github.com/bharatbooks/bharatbooks/internal/clock"
	"github.com/bharatbooks/bharatbooks/internal/config"
	"github.com/bharatbooks/bharatbooks/internal/logger"
	"github.com/bharatbooks/bharatbooks/internal/migration"
	"github.com/bharatbooks/bharatbooks/internal/server"
	"github.com/bharatbooks/bharatbooks/pkg/db"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,
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
