package main

import (
	"flag"

	"github.com/romana/rlog"
	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
	"order_management/custom/util"
	"order_management/model"
)

// Generates a type-safe query API for the order tables into ./dal.
func main() {
	configFile := flag.String("config", "./config/config.yaml", "server config file")
	outPath := flag.String("out", "./dal", "output directory")
	flag.Parse()

	serverConfig := util.ServerConfig{}
	if _, err := serverConfig.GetConf(*configFile); err != nil {
		rlog.Critical(err.Error())
		return
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: *outPath,
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface, // generate mode
	})

	db, err := gorm.Open(postgres.Open(serverConfig.Postgres.DSN()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	g.UseDB(db) // reuse your gorm db

	g.ApplyBasic(model.AllTables...)

	g.Execute()
}
