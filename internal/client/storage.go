package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// 與瀏覽器 localStorage 相同的 key
const (
	KeyAPIBase      = "api_base"
	KeyCart         = "medicine_cart"
	KeyConsults     = "consults"
	KeyAppointments = "appointments"
	KeyPayments     = "payments"
)

// Storage 是以單一 JSON 檔保存的 key/value，每次寫入都整檔重寫
type Storage struct {
	mu     sync.Mutex
	path   string
	values map[string]json.RawMessage
}

// OpenStorage 檔案不存在時視為空白
func OpenStorage(path string) (*Storage, error) {
	s := &Storage{path: path, values: map[string]json.RawMessage{}}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("OpenStorage: %w", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s.values); err != nil {
		return nil, fmt.Errorf("OpenStorage %s: %w", path, err)
	}
	return s, nil
}

// Get 將 key 的值解碼到 out；key 不存在或內容損毀時回傳 false
func (s *Storage) Get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (s *Storage) Set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("Storage.Set %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.flush()
}

func (s *Storage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// flush 先寫暫存檔再 rename 成正式檔名
func (s *Storage) flush() error {
	raw, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("Storage.flush: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("Storage.flush: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".clinic-*.json")
	if err != nil {
		return fmt.Errorf("Storage.flush: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("Storage.flush: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("Storage.flush: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("Storage.flush: %w", err)
	}
	return nil
}
