package ledger

import (
	"fmt"
	"math"
	"sync"
	"time"

	"deltadesk/internal/consts"
	"deltadesk/internal/model"
	"deltadesk/internal/store"
	"deltadesk/pkg/errors"
	"deltadesk/pkg/errors/ecode"
	"deltadesk/pkg/logger"
	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

// Ledger 组合台账，持有期权仓位、标的仓位和设置三块状态。
// 所有变更操作在锁内完成 读取-修改-落库 序列，HTTP层可以并发调用

type Ledger struct {
	mu    sync.RWMutex
	store store.Store
	node  *snowflake.Node

	options    []model.OptionPosition
	underlying []model.UnderlyingPosition
	settings   model.Settings

	dirty bool // 上次落库失败，内存状态还没持久化
}

// New 从存储加载快照构建台账。快照缺失或损坏时记录日志并用默认值启动
func New(st store.Store, defaults model.Settings) *Ledger {
	snap, err := st.Load()
	if err != nil {
		logger.Errorf("load portfolio snapshot failed, starting empty: %v", err)
		snap = model.Snapshot{}
	}

	if defaults.ContractsPerOption <= 0 {
		defaults.ContractsPerOption = consts.DefaultContractsPerOption
	}
	if defaults.Currency == "" {
		defaults.Currency = consts.DefaultCurrency
	}
	if snap.Settings.ContractsPerOption <= 0 {
		snap.Settings = defaults
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatalf("init snowflake node: %v", err)
	}

	return &Ledger{
		store:      st,
		node:       node,
		options:    snap.Options,
		underlying: snap.Underlying,
		settings:   snap.Settings,
	}
}

// AddOption 新增期权仓位。data里除必需字段外的键原样透传。
// 校验失败时不改内存也不落库
func (l *Ledger) AddOption(data map[string]interface{}) (model.OptionPosition, error) {
	positionType, err := parsePositionType(data)
	if err != nil {
		return model.OptionPosition{}, err
	}
	delta, err := requireFloat(data, "delta")
	if err != nil {
		return model.OptionPosition{}, err
	}
	quantity, err := requireQuantity(data)
	if err != nil {
		return model.OptionPosition{}, err
	}
	price, err := requirePrice(data)
	if err != nil {
		return model.OptionPosition{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	pos := model.OptionPosition{
		ID:           l.node.Generate().String(),
		PositionType: positionType,
		Delta:        delta,
		Quantity:     quantity,
		Price:        price,
		NetDelta:     optionNetDelta(delta, quantity, positionType, l.settings.ContractsPerOption),
		DateAdded:    time.Now(),
		Extra:        extraFields(data, "position_type", "delta", "quantity", "price"),
	}

	l.options = append(l.options, pos)
	l.persist()
	return pos, nil
}

// RemoveOption 按id删除期权仓位。id不存在时静默成功，但同样落库
func (l *Ledger) RemoveOption(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.options[:0]
	for _, pos := range l.options {
		if pos.ID != id {
			kept = append(kept, pos)
		}
	}
	l.options = kept
	l.persist()
}

// AddUnderlying 新增标的仓位。net_delta只看方向：long为+quantity，short为-quantity
func (l *Ledger) AddUnderlying(data map[string]interface{}) (model.UnderlyingPosition, error) {
	positionType, err := parsePositionType(data)
	if err != nil {
		return model.UnderlyingPosition{}, err
	}
	quantity, err := requireQuantity(data)
	if err != nil {
		return model.UnderlyingPosition{}, err
	}
	price, err := requirePrice(data)
	if err != nil {
		return model.UnderlyingPosition{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	pos := model.UnderlyingPosition{
		ID:           l.node.Generate().String(),
		PositionType: positionType,
		Quantity:     quantity,
		Price:        price,
		NetDelta:     underlyingNetDelta(quantity, positionType),
		DateAdded:    time.Now(),
		Extra:        extraFields(data, "position_type", "quantity", "price"),
	}

	l.underlying = append(l.underlying, pos)
	l.persist()
	return pos, nil
}

// RemoveUnderlying 按id删除标的仓位，语义同RemoveOption
func (l *Ledger) RemoveUnderlying(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.underlying[:0]
	for _, pos := range l.underlying {
		if pos.ID != id {
			kept = append(kept, pos)
		}
	}
	l.underlying = kept
	l.persist()
}

// Options 返回全部期权仓位的副本
func (l *Ledger) Options() []model.OptionPosition {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.OptionPosition, len(l.options))
	copy(out, l.options)
	return out
}

// Underlying 返回全部标的仓位的副本
func (l *Ledger) Underlying() []model.UnderlyingPosition {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.UnderlyingPosition, len(l.underlying))
	copy(out, l.underlying)
	return out
}

func (l *Ledger) Settings() model.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.settings
}

// Summary 组合概览。纯读取，不触发落库
func (l *Ledger) Summary() model.Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totalDelta := l.totalDelta()

	var optionValue float64
	for _, pos := range l.options {
		optionValue += pos.Price * float64(pos.Quantity) * float64(l.settings.ContractsPerOption)
	}
	var underlyingValue float64
	for _, pos := range l.underlying {
		underlyingValue += pos.Price * float64(pos.Quantity)
	}

	return model.Summary{
		TotalDelta:      totalDelta,
		IsDeltaNeutral:  math.Abs(totalDelta) < consts.DeltaNeutralThreshold,
		OptionValue:     optionValue,
		UnderlyingValue: underlyingValue,
		TotalValue:      optionValue + underlyingValue,
		OptionCount:     len(l.options),
		UnderlyingCount: len(l.underlying),
	}
}

// HedgeRecommendation 计算让组合回到delta中性需要的标的交易。
// 股数取整用math.Round，恰好.5时远离零方向进位
func (l *Ledger) HedgeRecommendation() model.HedgeRecommendation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totalDelta := l.totalDelta()

	if math.Abs(totalDelta) < consts.DeltaNeutralThreshold {
		return model.HedgeRecommendation{
			Action:       consts.HedgeActionNone,
			Message:      "Portfolio is already delta neutral",
			CurrentDelta: totalDelta,
		}
	}

	if totalDelta > 0 {
		// 正delta，做空标的
		quantity := int(math.Round(totalDelta))
		return model.HedgeRecommendation{
			Action:       consts.HedgeActionSell,
			Quantity:     quantity,
			Message:      fmt.Sprintf("Sell %d shares of the underlying to achieve delta neutrality", quantity),
			CurrentDelta: totalDelta,
		}
	}

	// 负delta，买入标的
	quantity := int(math.Round(math.Abs(totalDelta)))
	return model.HedgeRecommendation{
		Action:       consts.HedgeActionBuy,
		Quantity:     quantity,
		Message:      fmt.Sprintf("Buy %d shares of the underlying to achieve delta neutrality", quantity),
		CurrentDelta: totalDelta,
	}
}

// UpdateSettings 部分更新设置。只覆盖识别的键，未知键静默忽略。
// contracts_per_option变化时重算所有期权仓位的net_delta
func (l *Ledger) UpdateSettings(updates map[string]interface{}) (model.Settings, error) {
	contractsChanged := false

	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.settings
	if raw, ok := updates["contracts_per_option"]; ok {
		contracts, err := cast.ToIntE(raw)
		if err != nil {
			return l.settings, errors.WithCode(ecode.ValidateErr, "contracts_per_option must be an integer")
		}
		if contracts <= 0 {
			return l.settings, errors.WithCode(ecode.ValidateErr, "contracts_per_option must be positive")
		}
		next.ContractsPerOption = contracts
		contractsChanged = true
	}
	if raw, ok := updates["currency"]; ok {
		currency, err := cast.ToStringE(raw)
		if err != nil {
			return l.settings, errors.WithCode(ecode.ValidateErr, "currency must be a string")
		}
		next.Currency = currency
	}
	if raw, ok := updates["transaction_fee"]; ok {
		fee, err := cast.ToFloat64E(raw)
		if err != nil {
			return l.settings, errors.WithCode(ecode.ValidateErr, "transaction_fee must be numeric")
		}
		next.TransactionFee = fee
	}

	l.settings = next
	if contractsChanged {
		l.recalculateOptionDeltas()
	}
	l.persist()
	return l.settings, nil
}

// Close 收尾，上次保存失败的话补一次落库
func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.dirty {
		return nil
	}
	return l.store.Save(l.snapshot())
}

// 调用方需持有读锁
func (l *Ledger) totalDelta() float64 {
	var total float64
	for _, pos := range l.options {
		total += pos.NetDelta
	}
	for _, pos := range l.underlying {
		total += pos.NetDelta
	}
	return total
}

// 调用方需持有写锁
func (l *Ledger) recalculateOptionDeltas() {
	for i := range l.options {
		pos := &l.options[i]
		pos.NetDelta = optionNetDelta(pos.Delta, pos.Quantity, pos.PositionType, l.settings.ContractsPerOption)
	}
}

// persist 落库当前状态。存储出错只记录日志，不回滚内存变更，
// 等下一次成功保存或进程退出时的Close补上
func (l *Ledger) persist() {
	if err := l.store.Save(l.snapshot()); err != nil {
		l.dirty = true
		logger.Errorf("save portfolio snapshot failed: %v", err)
		return
	}
	l.dirty = false
}

func (l *Ledger) snapshot() model.Snapshot {
	options := make([]model.OptionPosition, len(l.options))
	copy(options, l.options)
	underlying := make([]model.UnderlyingPosition, len(l.underlying))
	copy(underlying, l.underlying)
	return model.Snapshot{
		Options:    options,
		Underlying: underlying,
		Settings:   l.settings,
	}
}

func optionNetDelta(delta float64, quantity int, positionType string, contractsPerOption int) float64 {
	if positionType == consts.PositionTypeShort {
		delta = -delta
	}
	return delta * float64(quantity) * float64(contractsPerOption)
}

func underlyingNetDelta(quantity int, positionType string) float64 {
	if positionType == consts.PositionTypeShort {
		return -float64(quantity)
	}
	return float64(quantity)
}

func parsePositionType(data map[string]interface{}) (string, error) {
	raw, ok := data["position_type"]
	if !ok {
		return "", errors.WithCode(ecode.ValidateErr, "position_type is required")
	}
	positionType, err := cast.ToStringE(raw)
	if err != nil {
		return "", errors.WithCode(ecode.ValidateErr, "position_type must be a string")
	}
	if positionType != consts.PositionTypeLong && positionType != consts.PositionTypeShort {
		return "", errors.WithCode(ecode.ValidateErr, "position_type must be long or short")
	}
	return positionType, nil
}

func requireFloat(data map[string]interface{}, key string) (float64, error) {
	raw, ok := data[key]
	if !ok {
		return 0, errors.WithCode(ecode.ValidateErr, key+" is required")
	}
	value, err := cast.ToFloat64E(raw)
	if err != nil {
		return 0, errors.WithCode(ecode.ValidateErr, key+" must be numeric")
	}
	return value, nil
}

func requireQuantity(data map[string]interface{}) (int, error) {
	raw, ok := data["quantity"]
	if !ok {
		return 0, errors.WithCode(ecode.ValidateErr, "quantity is required")
	}
	quantity, err := cast.ToIntE(raw)
	if err != nil {
		return 0, errors.WithCode(ecode.ValidateErr, "quantity must be an integer")
	}
	if quantity < 0 {
		return 0, errors.WithCode(ecode.ValidateErr, "quantity must be non-negative")
	}
	return quantity, nil
}

func requirePrice(data map[string]interface{}) (float64, error) {
	price, err := requireFloat(data, "price")
	if err != nil {
		return 0, err
	}
	if price < 0 {
		return 0, errors.WithCode(ecode.ValidateErr, "price must be non-negative")
	}
	return price, nil
}

// extraFields 摘出透传字段，识别过的键不重复存
func extraFields(data map[string]interface{}, known ...string) map[string]interface{} {
	knownSet := make(map[string]bool, len(known))
	for _, key := range known {
		knownSet[key] = true
	}

	var extra map[string]interface{}
	for key, value := range data {
		if knownSet[key] {
			continue
		}
		if extra == nil {
			extra = make(map[string]interface{})
		}
		extra[key] = value
	}
	return extra
}
