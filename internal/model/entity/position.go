package entity

import (
	"time"

	"gorm.io/datatypes"
)

// mysql存储的仓位行。快照是全量替换写入，seq列保持插入顺序

type OptionPosition struct {
	ID           string         `gorm:"primaryKey;type:varchar(32)"`
	Seq          int            `gorm:"column:seq;not null;index"`
	PositionType string         `gorm:"column:position_type;type:varchar(10);not null"` // long/short
	Delta        float64        `gorm:"type:decimal(15,8);not null"`
	Quantity     int            `gorm:"not null"`
	Price        float64        `gorm:"type:decimal(15,8);not null"`
	NetDelta     float64        `gorm:"column:net_delta;type:decimal(20,8);not null"`
	DateAdded    time.Time      `gorm:"column:date_added;type:timestamp;not null"`
	Extra        datatypes.JSON `gorm:"column:extra;type:json"` // 透传字段原样存JSON
}

func (OptionPosition) TableName() string {
	return "option_positions"
}

type UnderlyingPosition struct {
	ID           string         `gorm:"primaryKey;type:varchar(32)"`
	Seq          int            `gorm:"column:seq;not null;index"`
	PositionType string         `gorm:"column:position_type;type:varchar(10);not null"`
	Quantity     int            `gorm:"not null"`
	Price        float64        `gorm:"type:decimal(15,8);not null"`
	NetDelta     float64        `gorm:"column:net_delta;type:decimal(20,8);not null"`
	DateAdded    time.Time      `gorm:"column:date_added;type:timestamp;not null"`
	Extra        datatypes.JSON `gorm:"column:extra;type:json"`
}

func (UnderlyingPosition) TableName() string {
	return "underlying_positions"
}

// Settings 单行配置表
type Settings struct {
	ID                 uint    `gorm:"primaryKey"`
	ContractsPerOption int     `gorm:"column:contracts_per_option;not null"`
	Currency           string  `gorm:"type:varchar(10);not null"`
	TransactionFee     float64 `gorm:"column:transaction_fee;type:decimal(15,8);not null"`
}

func (Settings) TableName() string {
	return "portfolio_settings"
}
