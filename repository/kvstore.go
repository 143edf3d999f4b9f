package repository

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/SuperCup/pms-bd-process/utils"
)

// 持久化配置键
const (
	OptionConfigKey   = "OPPORTUNITY_OPTION_CONFIG"
	KAFilterConfigKey = "KA_FILTER_CONFIG"
)

// BlobStore 基于本地文件的键值存储，每个键对应一个JSON文件
// 读到无法解析的内容时按"不存在"处理，只记日志，不向调用方抛错
type BlobStore struct {
	mu  sync.Mutex
	dir string
}

// NewBlobStore 打开（必要时创建）存储目录
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &BlobStore{dir: dir}, nil
}

func (b *BlobStore) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get 读取指定键的JSON内容并反序列化到out
// 返回 false 表示键不存在或内容损坏
func (b *BlobStore) Get(key string, out interface{}) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			utils.LogError(err, map[string]interface{}{"key": key}, "读取配置失败")
		}
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		// 损坏的持久化内容按不存在处理
		utils.LogError(err, map[string]interface{}{"key": key}, "解析配置失败，按未配置处理")
		return false
	}
	return true
}

// Set 序列化并写入指定键
func (b *BlobStore) Set(key string, value interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(b.path(key), data, 0o644)
}

// Delete 删除指定键；不存在时为空操作
func (b *BlobStore) Delete(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = os.Remove(b.path(key))
}
