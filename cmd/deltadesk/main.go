package main

import (
	"deltadesk/conf"
	"deltadesk/internal/api"
	"deltadesk/pkg/logger"
	"flag"
	"log"
)

// 启动delta中性组合面板服务

/*
测试

curl -X POST http://localhost:8080/api/v1/options \
  -H "Content-Type: application/json" \
  -d '{"position_type":"long","delta":0.5,"quantity":2,"price":3.2,"symbol":"AAPL","strike":150}'

curl http://localhost:8080/api/v1/portfolio/hedge
*/

func main() {
	configPath := flag.String("config", "conf/config.yaml", "config file path")
	flag.Parse()

	// 加载配置文件
	if err := conf.LoadConfig(*configPath); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(conf.AppConfig.Log)
	defer logger.Sync()

	apiRouter, l := api.InitRouter()

	srv := api.NewServer(&conf.AppConfig)
	// 退出时补一次落库，避免最后一次保存失败导致内存状态丢失
	srv.RegisterOnShutdown(func() {
		if err := l.Close(); err != nil {
			logger.Errorf("final snapshot save failed: %v", err)
		}
	})

	srv.Run(apiRouter)
}
