package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"

	DateLayout   = "2006-01-02"
	TimeLayout   = "2006-01-02 15:04:05"
	TimeLayoutMs = "2006-01-02 15:04:05.000"
)

// 持仓方向
const (
	PositionTypeLong  = "long"
	PositionTypeShort = "short"
)

// 对冲动作
const (
	HedgeActionNone = "none"
	HedgeActionBuy  = "buy"
	HedgeActionSell = "sell"
)

// 存储驱动
const (
	StoreDriverFile  = "file"
	StoreDriverMysql = "mysql"
)

const (
	// DefaultContractsPerOption 标准期权合约乘数
	DefaultContractsPerOption = 100
	DefaultCurrency           = "USD"
	DefaultTransactionFee     = 0.75

	// DeltaNeutralThreshold 总delta绝对值小于该阈值视为中性（固定值，不可配置）
	DeltaNeutralThreshold = 1.0
)
