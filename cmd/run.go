package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/arjunm/violino/internal/app"
	"github.com/arjunm/violino/internal/progression"
	"github.com/arjunm/violino/internal/store"
	"github.com/spf13/cobra"
)

// openService opens the store and rebuilds the progression service
// from the latest snapshot. A missing or unreadable snapshot starts a
// fresh player rather than failing.
func openService(cmd *cobra.Command) (*store.Store, *progression.Service, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	var data *store.SnapshotData
	snap, err := st.SnapshotRepo().Latest(cmd.Context())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not read saved progress, starting fresh:", err)
	} else if snap != nil {
		data = &snap.Data
	}

	svc := progression.NewService(data, st.SnapshotRepo(), st.EventRepo())
	return st, svc, nil
}

// runApp opens the store, restores progress, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	noSplash, _ := cmd.Flags().GetBool("no-splash")

	return app.Run(app.Options{
		Service:     svc,
		EventRepo:   st.EventRepo(),
		Version:     version,
		SkipWelcome: noSplash,
	})
}

// flushAndClose persists the final state before closing the store.
func flushAndClose(st *store.Store, svc *progression.Service) {
	if err := svc.Flush(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}
	_ = st.Close()
}
