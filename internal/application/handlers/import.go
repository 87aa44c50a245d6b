package handlers

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/services"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/parsers"
)

// ImportHandler merges characters from export and links files into the roster.
type ImportHandler struct {
	service *services.ImportService
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service *services.ImportService) *ImportHandler {
	return &ImportHandler{service: service}
}

// ImportOptions selects the file format and how id clashes are merged.
type ImportOptions struct {
	Format     string                    // "json", "links", or "auto" to pick by extension
	DryRun     bool                      // report without saving
	OnConflict services.ConflictStrategy // defaults to skip
}

// ImportResult reports what an import did, or would do, to the roster.
type ImportResult struct {
	Format     string // format the file was read as
	OnConflict services.ConflictStrategy
	DryRun     bool
	Records    int // characters found in the file, valid or not
	Imported   int
	Skipped    int
	Errors     []services.ImportError
	RosterSize int
}

// Handle reads filePath and imports every valid character in it. Rejected
// records are listed in the result. The returned error may be a
// PERSISTENCE_WRITE warning accompanying a valid result.
func (h *ImportHandler) Handle(ctx context.Context, filePath string, opts ImportOptions) (*ImportResult, error) {
	if opts.OnConflict == "" {
		opts.OnConflict = services.ConflictSkip
	}
	if !opts.OnConflict.IsValid() {
		return nil, entities.ValidationError("unknown conflict strategy %q (valid: skip, overwrite, new-id)", opts.OnConflict)
	}

	format, parser, err := pickParser(filePath, opts.Format)
	if err != nil {
		return nil, err
	}

	records, err := readRecords(filePath, parser)
	if err != nil {
		return nil, err
	}

	summary, err := h.service.Import(ctx, records, services.ImportOptions{
		DryRun:     opts.DryRun,
		OnConflict: opts.OnConflict,
	})
	if summary == nil {
		return nil, err
	}

	return &ImportResult{
		Format:     format,
		OnConflict: opts.OnConflict,
		DryRun:     opts.DryRun,
		Records:    len(records),
		Imported:   summary.Imported,
		Skipped:    summary.Skipped,
		Errors:     summary.Errors,
		RosterSize: summary.RosterSize,
	}, err
}

// pickParser resolves "auto" from the file extension and returns the
// concrete format name with its parser.
func pickParser(filePath, format string) (string, parsers.Parser, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == "auto" {
		format = parsers.FormatForFile(filePath)
		if format == "" {
			return "", nil, entities.ValidationError("unsupported format for file: %s (use --format json or --format links)", filePath)
		}
	}

	parser := parsers.ForFormat(format)
	if parser == nil {
		return "", nil, entities.ValidationError("unknown import format %q (valid: json, links, auto)", format)
	}
	return format, parser, nil
}

func readRecords(filePath string, parser parsers.Parser) ([]parsers.RawRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	records, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	return records, nil
}
