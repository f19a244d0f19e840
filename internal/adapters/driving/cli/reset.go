package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Quan631/PBL-6/internal/core/ports/driving"
)

var (
	resetHard bool
	resetYes  bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all documents",
	Long: `Deletes all stored documents and images. By default only the database
is wiped and uploaded files stay on disk; --hard deletes the entire
data directory.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetHard, "hard", false, "also delete the data directory")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	mode := driving.ResetSoft
	what := "all database records"
	if resetHard {
		mode = driving.ResetHard
		what = "the entire data directory"
	}

	if !resetYes {
		ok, err := confirm(cmd, fmt.Sprintf("This deletes %s. Continue? [y/N] ", what))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Aborted.")
			return nil
		}
	}

	if err := maintenanceService.Reset(context.Background(), mode); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}
	cmd.Println("Done.")
	return nil
}

// confirm asks on the terminal. A non-interactive stdin requires --yes.
func confirm(cmd *cobra.Command, prompt string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, errors.New("stdin is not a terminal, pass --yes to confirm")
	}

	cmd.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
