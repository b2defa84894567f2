package model

import "time"

// 持仓模型。期权仓位和标的仓位的必需字段显式建模，
// 调用方传入的其他描述性字段（symbol、strike、expiry等）统一放进Extra透传，核心不解释

type OptionPosition struct {
	ID           string    `json:"id"`            // 创建时分配，不可变
	PositionType string    `json:"position_type"` // long/short
	Delta        float64   `json:"delta"`         // 单份合约delta，由调用方提供
	Quantity     int       `json:"quantity"`      // 合约张数
	Price        float64   `json:"price"`         // 每张权利金
	NetDelta     float64   `json:"net_delta"`     // delta * quantity * contracts_per_option，short取反
	DateAdded    time.Time `json:"date_added"`

	Extra map[string]interface{} `json:"extra,omitempty"` // 透传字段
}

type UnderlyingPosition struct {
	ID           string    `json:"id"`
	PositionType string    `json:"position_type"` // long/short
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	NetDelta     float64   `json:"net_delta"` // ±quantity，与合约乘数无关
	DateAdded    time.Time `json:"date_added"`

	Extra map[string]interface{} `json:"extra,omitempty"`
}

type Settings struct {
	ContractsPerOption int     `json:"contracts_per_option"` // 合约乘数，默认100
	Currency           string  `json:"currency"`             // 仅做展示标签
	TransactionFee     float64 `json:"transaction_fee"`      // 目前没有参与任何计算，保留字段
}

// Snapshot 持久化的全量快照
type Snapshot struct {
	Options    []OptionPosition     `json:"options"`
	Underlying []UnderlyingPosition `json:"underlying"`
	Settings   Settings             `json:"settings"`
}

// PositionListReq 仓位列表的过滤参数
type PositionListReq struct {
	PositionType string `form:"position_type" binding:"omitempty,oneof=long short"`
}
