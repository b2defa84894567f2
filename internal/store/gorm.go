package store

import (
	"fmt"

	"deltadesk/internal/model"
	"deltadesk/internal/model/entity"
	"github.com/goccy/go-json"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// mysql快照存储。和文件存储语义一致：Save整体替换，Load整体读出

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&entity.OptionPosition{},
		&entity.UnderlyingPosition{},
		&entity.Settings{},
	); err != nil {
		return nil, fmt.Errorf("migrate portfolio tables error: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load() (model.Snapshot, error) {
	var snap model.Snapshot

	var (
		opts       []entity.OptionPosition
		unds       []entity.UnderlyingPosition
		settingRow entity.Settings
	)
	if err := s.db.Order("seq").Find(&opts).Error; err != nil {
		return snap, fmt.Errorf("load option positions error: %w", err)
	}
	if err := s.db.Order("seq").Find(&unds).Error; err != nil {
		return snap, fmt.Errorf("load underlying positions error: %w", err)
	}
	if err := s.db.Limit(1).Find(&settingRow).Error; err != nil {
		return snap, fmt.Errorf("load settings error: %w", err)
	}

	for _, row := range opts {
		snap.Options = append(snap.Options, model.OptionPosition{
			ID:           row.ID,
			PositionType: row.PositionType,
			Delta:        row.Delta,
			Quantity:     row.Quantity,
			Price:        row.Price,
			NetDelta:     row.NetDelta,
			DateAdded:    row.DateAdded,
			Extra:        decodeExtra(row.Extra),
		})
	}
	for _, row := range unds {
		snap.Underlying = append(snap.Underlying, model.UnderlyingPosition{
			ID:           row.ID,
			PositionType: row.PositionType,
			Quantity:     row.Quantity,
			Price:        row.Price,
			NetDelta:     row.NetDelta,
			DateAdded:    row.DateAdded,
			Extra:        decodeExtra(row.Extra),
		})
	}
	if settingRow.ID != 0 {
		snap.Settings = model.Settings{
			ContractsPerOption: settingRow.ContractsPerOption,
			Currency:           settingRow.Currency,
			TransactionFee:     settingRow.TransactionFee,
		}
	}
	return snap, nil
}

func (s *GormStore) Save(snap model.Snapshot) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.OptionPosition{}).Error; err != nil {
			return err
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.UnderlyingPosition{}).Error; err != nil {
			return err
		}

		for i, pos := range snap.Options {
			row := entity.OptionPosition{
				ID:           pos.ID,
				Seq:          i,
				PositionType: pos.PositionType,
				Delta:        pos.Delta,
				Quantity:     pos.Quantity,
				Price:        pos.Price,
				NetDelta:     pos.NetDelta,
				DateAdded:    pos.DateAdded,
				Extra:        encodeExtra(pos.Extra),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for i, pos := range snap.Underlying {
			row := entity.UnderlyingPosition{
				ID:           pos.ID,
				Seq:          i,
				PositionType: pos.PositionType,
				Quantity:     pos.Quantity,
				Price:        pos.Price,
				NetDelta:     pos.NetDelta,
				DateAdded:    pos.DateAdded,
				Extra:        encodeExtra(pos.Extra),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		// 配置单行同样整体替换，避免gorm Save对不存在的行只执行UPDATE
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&entity.Settings{}).Error; err != nil {
			return err
		}
		row := entity.Settings{
			ID:                 1,
			ContractsPerOption: snap.Settings.ContractsPerOption,
			Currency:           snap.Settings.Currency,
			TransactionFee:     snap.Settings.TransactionFee,
		}
		return tx.Create(&row).Error
	})
}

func encodeExtra(extra map[string]interface{}) datatypes.JSON {
	if len(extra) == 0 {
		return nil
	}
	data, err := json.Marshal(extra)
	if err != nil {
		return nil
	}
	return data
}

func decodeExtra(data datatypes.JSON) map[string]interface{} {
	if len(data) == 0 {
		return nil
	}
	var extra map[string]interface{}
	if err := json.Unmarshal(data, &extra); err != nil {
		return nil
	}
	return extra
}
