package conf

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// 配置加载（监听端口、存储方式等）

type PortfolioConfig struct {
	ContractsPerOption int     `yaml:"contracts-per-option"` // 每张期权合约对应的标的数量，默认100
	Currency           string  `yaml:"currency"`             // 展示用货币单位
	TransactionFee     float64 `yaml:"transaction-fee"`      // 每笔交易手续费
}

type StoreConfig struct {
	Driver   string `yaml:"driver"`    // file 或者 mysql
	DataFile string `yaml:"data-file"` // file模式下的快照文件路径
}

type Db struct {
	DbName   string `yaml:"dbname"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Portfolio PortfolioConfig `yaml:"portfolio"`
	Store     StoreConfig     `yaml:"store"`
	Db        `yaml:"database"`
	Log       LogConfig `yaml:"log"`
}

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	return nil
}
