package service

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/spf13/afero"
)

const (
	backupPrefix     = "kuittikone_backup_"
	backupTimeLayout = "20060102_150405"
)

// BackupService writes snapshots of the store document and restores them
type BackupService struct {
	store *DocumentStore
	fs    afero.Fs
	dir   string
	now   func() time.Time
}

// NewBackupService creates a backup service writing to dir. An empty dir
// uses the backup directory of the store settings.
func NewBackupService(store *DocumentStore, fs afero.Fs, dir string) *BackupService {
	return &BackupService{store: store, fs: fs, dir: dir, now: time.Now}
}

// BackupInfo describes one snapshot file
type BackupInfo struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// Dir returns the directory snapshots go to
func (s *BackupService) Dir() string {
	if s.dir != "" {
		return s.dir
	}
	var dir string
	s.store.View(func(doc *entity.Document) {
		dir = doc.Settings.BackupDirectory
	})
	return dir
}

// Export writes the whole store document to a timestamped file in dir, or
// in Dir() when dir is empty, and returns its path
func (s *BackupService) Export(ctx context.Context, dir string) (string, error) {
	if dir == "" {
		dir = s.Dir()
	}
	doc := s.store.Snapshot()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", apperror.NewPersistenceError("export", err)
	}
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", apperror.NewPersistenceError("export", errors.Wrapf(err, "create %s", dir))
	}

	path := filepath.Join(dir, backupPrefix+s.now().Format(backupTimeLayout)+".json")
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", apperror.NewPersistenceError("export", errors.Wrapf(err, "write %s", path))
	}

	log.Info().Str("path", path).Int("bytes", len(data)).Msg("backup written")
	return path, nil
}

// Restore replaces the whole store document with the snapshot at path.
// Every profile in the snapshot must be valid; nothing is merged.
func (s *BackupService) Restore(ctx context.Context, path string) error {
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return apperror.NewNotFoundError("Backup")
		}
		return apperror.NewPersistenceError("read backup", err)
	}

	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperror.NewBadRequestError("Invalid backup file: " + err.Error())
	}
	for _, id := range doc.PresetIDs() {
		if err := doc.Presets[id].Validate(); err != nil {
			return err
		}
	}

	if err := s.store.Replace(ctx, &doc); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("profiles", len(doc.Presets)).Msg("backup restored")
	return nil
}

// List returns the snapshots in dir, or in Dir() when dir is empty, newest
// first
func (s *BackupService) List(dir string) ([]BackupInfo, error) {
	if dir == "" {
		dir = s.Dir()
	}
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []BackupInfo{}, nil
		}
		return nil, apperror.NewPersistenceError("list backups", err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, backupPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, backupPrefix), ".json")
		created, err := time.ParseInLocation(backupTimeLayout, stamp, time.Local)
		if err != nil {
			created = e.ModTime()
		}
		backups = append(backups, BackupInfo{
			Name:      name,
			Path:      filepath.Join(dir, name),
			Size:      e.Size(),
			CreatedAt: created,
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name > backups[j].Name
	})
	return backups, nil
}
