package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"deltadesk/internal/model"
)

func testSnapshot() model.Snapshot {
	added := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)
	return model.Snapshot{
		Options: []model.OptionPosition{
			{
				ID:           "1933224411414937600",
				PositionType: "short",
				Delta:        0.5,
				Quantity:     2,
				Price:        3.2,
				NetDelta:     -100,
				DateAdded:    added,
				Extra:        map[string]interface{}{"symbol": "AAPL", "strike": 150.0},
			},
		},
		Underlying: []model.UnderlyingPosition{
			{
				ID:           "1933224411414937601",
				PositionType: "long",
				Quantity:     100,
				Price:        148.3,
				NetDelta:     100,
				DateAdded:    added,
			},
		},
		Settings: model.Settings{
			ContractsPerOption: 100,
			Currency:           "USD",
			TransactionFee:     0.75,
		},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	st := NewFileStore(path)

	want := testSnapshot()
	if err := st.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
	}
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	snap, err := st.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if len(snap.Options) != 0 || len(snap.Underlying) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestFileStore_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	st := NewFileStore(path)
	snap, err := st.Load()
	if err == nil {
		t.Fatal("corrupt file should report an error")
	}
	// 损坏时返回空快照，调用方记录日志后用默认值继续
	if len(snap.Options) != 0 || len(snap.Underlying) != 0 {
		t.Errorf("expected empty snapshot on corruption, got %+v", snap)
	}
}

func TestFileStore_SaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio_data.json")
	st := NewFileStore(path)

	if err := st.Save(testSnapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// 第二次保存是全量替换，不是追加
	empty := model.Snapshot{Settings: model.Settings{ContractsPerOption: 1, Currency: "EUR"}}
	if err := st.Save(empty); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Options) != 0 || got.Settings.Currency != "EUR" {
		t.Errorf("second save not a full replacement: %+v", got)
	}
}

func TestFileStore_CreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "deep", "portfolio_data.json")
	st := NewFileStore(path)
	if err := st.Save(testSnapshot()); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot file not created: %v", err)
	}
}
