package driving

import "context"

// ResetMode selects how much state a reset wipes.
type ResetMode string

const (
	// ResetSoft drops and recreates the store tables, keeping files.
	ResetSoft ResetMode = "soft"
	// ResetHard deletes the entire data directory, store included.
	ResetHard ResetMode = "hard"
)

// MaintenanceService performs the destructive reset actions. Neither
// documents nor images are ever deleted individually; deletion is
// all-or-nothing.
type MaintenanceService interface {
	Reset(ctx context.Context, mode ResetMode) error
}
