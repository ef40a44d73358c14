package cartsession

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-redis/redis/v8"
	"gopkg.in/yaml.v3"
)

// MemoryStore хранит значения в памяти процесса
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", ErrNotFound
	}

	return v, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// FileStore - yaml-файл с парами ключ/значение, аналог localStorage браузера
type FileStore struct {
	Path string

	mu sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// DefaultFilePath - файл в пользовательском каталоге конфигурации
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "teranga-storefront", "storage.yaml"), nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}

	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}

	return v, nil
}

func (s *FileStore) Set(_ context.Context, key string, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode storage file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	// пишем во временный файл и переименовываем, чтобы не оставить полфайла
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return os.Rename(tmp, s.Path)
}

func (s *FileStore) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return values, nil
		}
		return nil, fmt.Errorf("read storage file: %w", err)
	}

	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode storage file: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}

	return values, nil
}

// RedisStore - общее хранилище для нескольких клиентов (киоски, SSR)
type RedisStore struct {
	RedisClient *redis.Client
	// Namespace добавляется перед ключом, чтобы клиенты не пересекались
	Namespace string
}

func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		RedisClient: client,
		Namespace:   namespace,
	}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := s.RedisClient.Get(ctx, s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}

	return v, nil
}

// Set пишет без TTL: срок жизни корзины определяет сервер
func (s *RedisStore) Set(ctx context.Context, key string, value string) error {
	return s.RedisClient.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisStore) key(key string) string {
	if s.Namespace == "" {
		return key
	}

	return s.Namespace + ":" + key
}
