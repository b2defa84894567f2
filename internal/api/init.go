package api

import (
	"deltadesk/conf"
	"deltadesk/internal/consts"
	"deltadesk/internal/handler/portfolio"
	"deltadesk/internal/handler/settings"
	"deltadesk/internal/ledger"
	"deltadesk/internal/model"
	"deltadesk/internal/router"
	"deltadesk/internal/store"
	"deltadesk/pkg/db"
	"deltadesk/pkg/logger"
)

// InitRouter 组装存储、台账和各个handler
func InitRouter() (Router, *ledger.Ledger) {
	appCfg := conf.AppConfig

	st := initStore(appCfg)

	defaults := model.Settings{
		ContractsPerOption: appCfg.Portfolio.ContractsPerOption,
		Currency:           appCfg.Portfolio.Currency,
		TransactionFee:     appCfg.Portfolio.TransactionFee,
	}

	// 组合台账，启动时从快照恢复
	l := ledger.New(st, defaults)

	ph := portfolio.NewHandler(l)
	sh := settings.NewHandler(l)

	apiRouter := router.NewApiRouter(ph, sh)

	return apiRouter, l
}

func initStore(appCfg conf.Config) store.Store {
	switch appCfg.Store.Driver {
	case consts.StoreDriverMysql:
		datasource := db.Init(db.NewConfig(
			appCfg.Db.Username,
			appCfg.Db.Password,
			appCfg.Db.Host,
			appCfg.Db.Port,
			appCfg.Db.DbName,
		))
		st, err := store.NewGormStore(datasource)
		if err != nil {
			logger.Fatalf("init mysql store: %v", err)
		}
		return st
	default:
		path := appCfg.Store.DataFile
		if path == "" {
			path = "data/portfolio_data.json"
		}
		return store.NewFileStore(path)
	}
}
