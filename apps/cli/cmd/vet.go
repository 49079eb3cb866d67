package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abelmx/affirm/packages/marker"
	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var vetCmd = &cobra.Command{
	Use:   "vet <dir...>",
	Short: "Validate marker configuration in Go source",
	Long: `Validate marker directives without running any tests.

A declaration carrying two markers of the same kind is ambiguous and is
reported as an error.

Examples:
  affirm vet ./tests
  affirm vet ./tests ./integration --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: vetCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var watchFlag bool

func init() {
	vetCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch directories and re-validate on change")
}

func vetCommand(cmd *cobra.Command, args []string) error {
	dirs, err := collectDirs(args)
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		return fmt.Errorf("no Go source directories found")
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	vetOnce := func() bool {
		ok := true
		for _, dir := range dirs {
			if _, err := marker.Load(dir); err != nil {
				fmt.Fprintf(cmd.OutOrStderr(), "%s %v\n", red("✗"), err)
				ok = false
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", green("✓"), dir)
		}
		return ok
	}

	ok := vetOnce()
	if !watchFlag {
		if !ok {
			os.Exit(ExitMarkerError)
		}
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "failed to watch %s: %v\n", dir, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	// Event bursts (editor save storms) collapse into one re-run.
	limiter := rate.NewLimiter(rate.Every(time.Second), 1)
	var debounceTimer *time.Timer

	for {
		select {
		case event, eventOk := <-watcher.Events:
			if !eventOk {
				return nil
			}
			if !event.Has(fsnotify.Write) || !strings.HasSuffix(event.Name, ".go") {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				if !limiter.Allow() {
					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\n\n", event.Name)
				vetOnce()
				fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
			})

		case err, errOk := <-watcher.Errors:
			if !errOk {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStderr(), "watcher error: %v\n", err)
		}
	}
}

// collectDirs expands arguments into the set of directories containing
// Go source files.
func collectDirs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if !info.IsDir() {
			if strings.HasSuffix(arg, ".go") {
				add(filepath.Dir(arg))
			}
			continue
		}

		err = filepath.Walk(arg, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() && strings.HasSuffix(path, ".go") {
				add(filepath.Dir(path))
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return dirs, nil
}
