package services

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/domain/entities"
	"github.com/simoesconsultoriaammao-lab/Ficha-de-Nova-Eden-Jogadores/internal/infrastructure/parsers"
)

// ConflictStrategy defines how to handle characters whose id is already in the roster.
type ConflictStrategy string

const (
	// ConflictSkip skips characters that already exist (by ID).
	ConflictSkip ConflictStrategy = "skip"
	// ConflictOverwrite replaces existing characters with the imported data.
	ConflictOverwrite ConflictStrategy = "overwrite"
	// ConflictNewID imports the character as a copy under a fresh id.
	ConflictNewID ConflictStrategy = "new-id"
)

// IsValid checks if s is a known strategy.
func (s ConflictStrategy) IsValid() bool {
	switch s {
	case ConflictSkip, ConflictOverwrite, ConflictNewID:
		return true
	}
	return false
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun     bool             // Validate without saving
	OnConflict ConflictStrategy // How to handle existing characters
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Line number (1-indexed, 0 if unknown)
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Imported   int
	Skipped    int
	Errors     []ImportError
	RosterSize int // characters in the roster afterwards, or that a dry run would leave
}

// ImportService adds characters from exports and share links to the roster.
type ImportService struct {
	roster *RosterService
	share  *ShareService
}

// NewImportService creates a new import service.
func NewImportService(roster *RosterService, share *ShareService) *ImportService {
	return &ImportService{
		roster: roster,
		share:  share,
	}
}

// Import validates raw records and adds the valid ones to the roster.
// Invalid records are reported in the result and never abort the import.
// A storage failure is returned alongside the result as a PERSISTENCE_WRITE
// warning.
func (s *ImportService) Import(ctx context.Context, records []parsers.RawRecord, opts ImportOptions) (*ImportResult, error) {
	if opts.OnConflict == "" {
		opts.OnConflict = ConflictSkip
	}
	if !opts.OnConflict.IsValid() {
		return nil, entities.ValidationError("unknown conflict strategy %q", opts.OnConflict)
	}

	result := &ImportResult{}
	chars := make([]entities.Character, 0, len(records))
	for _, rec := range records {
		c, err := s.decode(rec)
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Line: rec.LineNum, Message: err.Error()})
			continue
		}
		if n := utf8.RuneCountInString(c.History); n > entities.MaxHistoryLength {
			result.Errors = append(result.Errors, ImportError{
				Line:    rec.LineNum,
				Message: fmt.Sprintf("history is %d characters, the limit is %d", n, entities.MaxHistoryLength),
			})
			continue
		}
		chars = append(chars, *c)
	}

	result.RosterSize = s.roster.Count()
	if len(chars) == 0 {
		return result, nil
	}

	if opts.DryRun {
		s.preview(chars, opts.OnConflict, result)
		return result, nil
	}

	imported, skipped, err := s.roster.Import(ctx, chars, opts.OnConflict)
	result.Imported = imported
	result.Skipped = skipped
	result.RosterSize = s.roster.Count()
	return result, err
}

// preview fills result with what Import would do, without touching the roster.
func (s *ImportService) preview(chars []entities.Character, onConflict ConflictStrategy, result *ImportResult) {
	for _, c := range chars {
		_, exists := s.roster.Get(c.ID)
		switch {
		case exists && onConflict == ConflictSkip:
			result.Skipped++
		case exists && onConflict == ConflictOverwrite:
			result.Imported++
		default:
			result.Imported++
			result.RosterSize++
		}
	}
}

func (s *ImportService) decode(rec parsers.RawRecord) (*entities.Character, error) {
	if rec.Token != "" {
		return s.share.Decode(s.share.TokenFromLink(rec.Token))
	}
	return s.share.DecodeJSON(rec.Data)
}
