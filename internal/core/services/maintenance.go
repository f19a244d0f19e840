package services

import (
	"context"
	"fmt"

	"github.com/Quan631/PBL-6/internal/core/domain"
	"github.com/Quan631/PBL-6/internal/core/ports/driven"
	"github.com/Quan631/PBL-6/internal/core/ports/driving"
	"github.com/Quan631/PBL-6/internal/logger"
)

// Ensure MaintenanceService implements the interface.
var _ driving.MaintenanceService = (*MaintenanceService)(nil)

// MaintenanceService performs the destructive reset actions.
type MaintenanceService struct {
	store driven.DocumentStore
	files driven.FileStore
}

// NewMaintenanceService creates a new maintenance service.
func NewMaintenanceService(store driven.DocumentStore, files driven.FileStore) *MaintenanceService {
	return &MaintenanceService{store: store, files: files}
}

// Reset wipes stored state. Soft mode drops and recreates the store
// tables, leaving files on disk. Hard mode closes the store and
// deletes the whole data directory.
func (s *MaintenanceService) Reset(ctx context.Context, mode driving.ResetMode) error {
	switch mode {
	case driving.ResetSoft:
		logger.Info("Resetting store, keeping files")
		if err := s.store.Reset(ctx); err != nil {
			return fmt.Errorf("resetting store: %w", err)
		}
		return nil

	case driving.ResetHard:
		logger.Info("Deleting data directory %s", s.files.DataDir())
		// The store file lives inside the data directory, so it must
		// be closed before the tree goes.
		if err := s.store.Close(); err != nil {
			return fmt.Errorf("closing store: %w", err)
		}
		if err := s.files.RemoveAll(); err != nil {
			return fmt.Errorf("deleting data directory: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown reset mode %q", domain.ErrInvalidInput, mode)
	}
}
