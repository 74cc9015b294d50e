// Package storage guarda em disco os artefatos gerados para cada upload
package storage

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insight-api/internal/domain"
)

const reportsDir = "reports"

// ArtifactStore organiza os artefatos em um diretório por relatório e
// mantém o último artefato publicado de cada tipo
type ArtifactStore struct {
	baseDir string
	now     func() time.Time

	mu     sync.RWMutex
	latest map[domain.ArtifactKind]string
}

// NewArtifactStore cria o diretório base, se necessário
func NewArtifactStore(baseDir string) (*ArtifactStore, error) {
	if err := os.MkdirAll(filepath.Join(baseDir, reportsDir), 0o755); err != nil {
		return nil, errors.Wrapf(err, "storage: create %s", baseDir)
	}

	return &ArtifactStore{
		baseDir: baseDir,
		now:     time.Now,
		latest:  make(map[domain.ArtifactKind]string),
	}, nil
}

// NewReportDir cria o diretório de um relatório
func (s *ArtifactStore) NewReportDir(reportID string) (string, error) {
	dir := filepath.Join(s.baseDir, reportsDir, reportID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "storage: create report dir %s", reportID)
	}
	return dir, nil
}

// Publish marca os artefatos como os mais recentes de cada tipo
func (s *ArtifactStore) Publish(artifacts *domain.ReportArtifacts) {
	if artifacts == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for kind, path := range artifacts.Paths {
		s.latest[kind] = path
	}
}

// Latest retorna o último artefato publicado do tipo, se ainda existir em disco
func (s *ArtifactStore) Latest(kind domain.ArtifactKind) (string, bool) {
	s.mu.RLock()
	path, ok := s.latest[kind]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

// Sweep remove diretórios de relatório mais antigos que maxAge.
// Diretórios que contêm um artefato publicado como mais recente são mantidos.
func (s *ArtifactStore) Sweep(maxAge time.Duration) (int, error) {
	root := filepath.Join(s.baseDir, reportsDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		return 0, errors.Wrap(err, "storage: list reports")
	}

	keep := s.latestDirs()
	cutoff := s.now().Add(-maxAge)

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		if _, ok := keep[dir]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return removed, errors.Wrapf(err, "storage: stat %s", dir)
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.RemoveAll(dir); err != nil {
			return removed, errors.Wrapf(err, "storage: remove %s", dir)
		}
		removed++
	}

	return removed, nil
}

func (s *ArtifactStore) latestDirs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirs := make(map[string]struct{}, len(s.latest))
	for _, path := range s.latest {
		dirs[filepath.Dir(path)] = struct{}{}
	}
	return dirs
}
