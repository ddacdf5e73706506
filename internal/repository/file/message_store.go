package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go-ishop-backend/internal/domain"
)

type messageStore struct {
	dir string
}

// NewMessageStore returns a MessageStore writing one JSON file per accepted
// contact submission into dir. The directory is created on first use.
func NewMessageStore(dir string) domain.MessageStore {
	return &messageStore{dir: dir}
}

// Save writes the record as message_<unix-seconds>.json. The timestamp has
// second resolution: two submissions landing in the same second reuse the
// name and the later write replaces the earlier file.
func (s *messageStore) Save(ctx context.Context, record *domain.MessageRecord) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create messages dir: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return "", fmt.Errorf("encode message record: %w", err)
	}

	filename := fmt.Sprintf("message_%d.json", time.Now().Unix())
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("write message record: %w", err)
	}

	return filename, nil
}
