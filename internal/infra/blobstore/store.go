package blobstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// UploadsPrefix каталог скриншотов оплаты внутри хранилища
	UploadsPrefix = "uploads"

	maxFileNameLength = 100
	defaultFileName   = "screenshot"
)

// Store хранилище файлов на диске с публичными ссылками.
// Объект "uploads/a.png" лежит в <root>/uploads/a.png и доступен по <baseURL>/uploads/a.png.
type Store struct {
	root    string
	baseURL string
}

// New создает хранилище
func New(root, baseURL string) *Store {
	return &Store{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Root корневой каталог, из которого раздаются файлы
func (s *Store) Root() string {
	return s.root
}

// Upload сохраняет данные по относительному пути и возвращает сохраненный путь.
// Существующий объект не перезаписывается.
func (s *Store) Upload(ctx context.Context, data []byte, objectPath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cleaned, err := cleanObjectPath(objectPath)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(s.root, filepath.FromSlash(cleaned))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("%w: create directory: %v", ErrWrite, err)
	}

	f, err := os.OpenFile(fullPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, cleaned)
		}
		return "", fmt.Errorf("%w: open %s: %v", ErrWrite, cleaned, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: write %s: %v", ErrWrite, cleaned, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("%w: close %s: %v", ErrWrite, cleaned, err)
	}

	return cleaned, nil
}

// PublicURL публичная ссылка на сохраненный объект
func (s *Store) PublicURL(storedPath string) string {
	return s.baseURL + "/" + strings.TrimLeft(storedPath, "/")
}

// NewObjectPath путь для скриншота оплаты: uploads/<unix-millis>-<uuid>-<имя файла>
func NewObjectPath(now time.Time, fileName string) string {
	return fmt.Sprintf("%s/%d-%s-%s", UploadsPrefix, now.UnixMilli(), uuid.NewString(), SanitizeFileName(fileName))
}

// SanitizeFileName оставляет в имени файла только латиницу, цифры, точку, дефис и подчеркивание
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), ".")
	if sanitized == "" || sanitized == "_" {
		return defaultFileName
	}
	if len(sanitized) > maxFileNameLength {
		sanitized = sanitized[len(sanitized)-maxFileNameLength:]
	}
	return sanitized
}

func cleanObjectPath(objectPath string) (string, error) {
	if strings.TrimSpace(objectPath) == "" {
		return "", ErrInvalidPath
	}
	cleaned := path.Clean("/" + objectPath)[1:]
	if cleaned == "" || cleaned != strings.TrimPrefix(objectPath, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, objectPath)
	}
	return cleaned, nil
}
