package handlers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/weihan-tan/touchpoint/internal/infra/http/middleware"
	"github.com/weihan-tan/touchpoint/internal/infra/importer"
	"github.com/weihan-tan/touchpoint/internal/usecase"
)

const maxImportSize = 10 << 20 // 10 MiB upload cap

type ImportHandler struct {
	UC *usecase.ImportProspectsUseCase
}

func NewImportHandler(uc *usecase.ImportProspectsUseCase) *ImportHandler {
	return &ImportHandler{UC: uc}
}

// Handle accepts a multipart "file" field, picks the decoder from the file
// extension and runs the import. The reference date for due comparisons and
// date fallbacks is fixed once here, not read inside the core.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart form: " + err.Error()})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "missing file field"})
		return
	}
	defer file.Close()

	var rows []usecase.RawRow
	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".csv":
		rows, err = importer.DecodeCSV(file)
	case ".xlsx", ".xls":
		rows, err = importer.DecodeWorkbook(file)
	default:
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported file type, use .csv, .xlsx or .xls"})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	report := h.UC.Execute(r.Context(), rows, time.Now().UTC())
	middleware.RecordImport(report.Created, report.Skipped, report.DateDefaults)

	respondJSON(w, http.StatusOK, report)
}
