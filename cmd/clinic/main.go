package main

import (
	"github.com/TabariqAwabUllah/Clinic-Management/internal/config"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/logger"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/migration"
	"github.com/TabariqAwabUllah/Clinic-Management/internal/server"
	"github.com/TabariqAwabUllah/Clinic-Management/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
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
