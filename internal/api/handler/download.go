package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/vfg2006/sales-insight-api/internal/domain"
	"github.com/vfg2006/sales-insight-api/internal/usecases/insighting"
	"github.com/vfg2006/sales-insight-api/pkg/log"
)

// DownloadArtifact envia como anexo o último artefato gerado do tipo
func DownloadArtifact(service insighting.Insighter, kind domain.ArtifactKind, notFound string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		path, ok := service.LatestArtifact(kind)
		if !ok {
			logger.WithField("report_artifact", kind).Info("download: nenhum artefato disponível")
			writeJSON(w, http.StatusNotFound, map[string]string{"error": notFound}, logger)
			return
		}

		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))
		http.ServeFile(w, r, path)
	})
}
