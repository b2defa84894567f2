package model

// Summary 组合概览，纯读取，不落库
type Summary struct {
	TotalDelta      float64 `json:"total_delta"`
	IsDeltaNeutral  bool    `json:"is_delta_neutral"` // |total_delta| < 1.0
	OptionValue     float64 `json:"option_value"`
	UnderlyingValue float64 `json:"underlying_value"`
	TotalValue      float64 `json:"total_value"`
	OptionCount     int     `json:"option_count"`
	UnderlyingCount int     `json:"underlying_count"`
}

// HedgeRecommendation 对冲建议
type HedgeRecommendation struct {
	Action       string  `json:"action"`             // none/buy/sell
	Quantity     int     `json:"quantity,omitempty"` // action为none时省略
	Message      string  `json:"message"`
	CurrentDelta float64 `json:"current_delta"`
}
