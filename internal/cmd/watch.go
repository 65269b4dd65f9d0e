package cmd

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vanpelt/handoff/internal/config"
	"github.com/vanpelt/handoff/internal/logger"
	"github.com/vanpelt/handoff/internal/session/paths"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "👀 Watch the sessions directory for changes",
	Long: `# 👀 Watch Sessions

**Log create/write/remove events for session files** in the sessions
directory until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()

		dir := config.Runtime.SessionsDir
		if err := watcher.Add(dir); err != nil {
			return err
		}
		logger.Infof("watching %s", dir)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				// Only session files are interesting; editors drop temp
				// files in the same directory.
				if paths.ParseFilename(filepath.Base(event.Name)) == nil {
					continue
				}
				l := logger.WithField("op", event.Op.String())
				l.Info().Msg(event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warnf("watch error: %v", err)
			case <-sigCh:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
