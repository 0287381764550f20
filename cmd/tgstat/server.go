package tgstat

import (
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/whoamihappyhacking/tgstat/internal/store"
	"github.com/whoamihappyhacking/tgstat/internal/tgstat/database"
	tgstathttp "github.com/whoamihappyhacking/tgstat/internal/tgstat/http"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the HTTP statistics service",
	RunE:  runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func dbPath() string {
	if filepath.IsAbs(appConf.DBFile) {
		return appConf.DBFile
	}
	return filepath.Join(appConf.DataDir, appConf.DBFile)
}

func runServer(cmd *cobra.Command, args []string) error {
	st, err := store.Open(dbPath())
	if err != nil {
		return err
	}
	defer st.Close()

	db, err := database.NewService(appConf, st)
	if err != nil {
		return err
	}
	defer db.Stop()

	if appConf.IsAutoWatch() {
		if err := db.StartWatch(); err != nil {
			return err
		}
	}

	svc := tgstathttp.NewService(appConf, db)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := svc.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		return err
	}

	return svc.Stop()
}
