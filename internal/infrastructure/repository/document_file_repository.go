package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	domainRepo "github.com/sangkips/kuittikone/internal/domain/repository"
	"github.com/spf13/afero"
)

type documentFileRepository struct {
	fs   afero.Fs
	path string
}

// NewDocumentFileRepository stores the document as indented JSON at path
func NewDocumentFileRepository(fs afero.Fs, path string) domainRepo.DocumentRepository {
	return &documentFileRepository{fs: fs, path: path}
}

func (r *documentFileRepository) Load(ctx context.Context) (*entity.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(r.fs, r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", r.path)
	}

	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, "decode %s", r.path)
	}
	log.Debug().Str("path", r.path).Int("presets", len(doc.Presets)).Msg("store loaded")
	return &doc, nil
}

// Save writes a temporary file and renames it over the target
func (r *documentFileRepository) Save(ctx context.Context, doc *entity.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode document")
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := r.fs.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}
	tmp := r.path + ".tmp"
	if err := afero.WriteFile(r.fs, tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		return errors.Wrapf(err, "replace %s", r.path)
	}
	log.Debug().Str("path", r.path).Int("bytes", len(data)).Msg("store saved")
	return nil
}
