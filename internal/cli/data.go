package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kupikrutcher/relationship-app/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the whole journal as a JSON envelope (- for stdout)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the journal with a JSON envelope or bare state file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runExport(cmd *cobra.Command, args []string) error {
	return withJournal(cmd.Context(), func(j *journal) error {
		data, err := store.EncodeSnapshot(j.Snapshot())
		if err != nil {
			return err
		}
		if args[0] == "-" {
			_, err := cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(args[0], data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", args[0])
		return nil
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}
	snap, err := store.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	if err := snap.Validate(); err != nil {
		return fmt.Errorf("import %s: %w", args[0], err)
	}

	return withJournal(cmd.Context(), func(j *journal) error {
		j.Replace(snap)
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d events, %d wishes, %d reminders, %d moods\n",
			len(snap.Events), len(snap.Wishes), len(snap.Reminders), len(snap.MoodEntries))
		return nil
	})
}
