package store

import (
	"fmt"
	"os"
	"path/filepath"

	"deltadesk/internal/model"
	"github.com/goccy/go-json"
	"go.uber.org/multierr"
)

// JSON 文件快照存储

type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path,
	}
}

func (s *FileStore) Load() (model.Snapshot, error) {
	var snap model.Snapshot

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			// 首次启动还没有数据文件，不算错误
			return snap, nil
		}
		return snap, fmt.Errorf("read snapshot file error %w", err)
	}

	if err := json.Unmarshal(data, &snap); err != nil {
		// 文件损坏，丢弃内容，调用方记录日志后用空快照继续
		return model.Snapshot{}, fmt.Errorf("unmarshal snapshot error: %w", err)
	}
	return snap, nil
}

func (s *FileStore) Save(snap model.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal snapshot error: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data dir error: %w", err)
		}
	}

	// 先写临时文件再rename，避免写一半进程挂掉弄坏快照
	tmp := s.Path + ".tmp"
	file, err := os.OpenFile(tmp, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open snapshot tmp file error: %w", err)
	}

	_, werr := file.Write(data)
	if err := multierr.Append(werr, file.Close()); err != nil {
		return fmt.Errorf("write snapshot error: %w", err)
	}

	return os.Rename(tmp, s.Path)
}
