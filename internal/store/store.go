package store

import (
	"deltadesk/internal/model"
)

// Store 快照持久化。每次变更后全量替换写入，不做增量
type Store interface {
	// Load 返回上次保存的快照；文件不存在时返回空快照，数据损坏时返回空快照和错误
	Load() (model.Snapshot, error)
	// Save 全量写入快照
	Save(snap model.Snapshot) error
}
