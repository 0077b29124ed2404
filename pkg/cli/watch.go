package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/githubnext/agentlint/pkg/console"
	"github.com/githubnext/agentlint/pkg/logger"
)

var watchLog = logger.New("cli:watch")

// debounceInterval coalesces bursts of file system events (editors often
// emit several per save) into one validation pass.
const debounceInterval = 250 * time.Millisecond

// RunValidateWatch validates once, then re-validates whenever a markdown
// file under the agents directory changes. It blocks until the context is
// canceled.
func RunValidateWatch(ctx context.Context, config ValidateConfig) error {
	root := config.Dir
	if root == "" {
		root = DefaultAgentsDir
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watchRecursive(watcher, root); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, console.FormatInfoMessage(fmt.Sprintf("Watching %s for changes (Ctrl+C to stop)", root)))
	revalidate(config, root)

	var debounce *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			watchLog.Printf("File system event: %s", event)

			// New directories must be added to the watch set.
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchRecursive(watcher, event.Name); err != nil {
						watchLog.Printf("Failed to watch new directory %s: %v", event.Name, err)
					}
				}
			}

			if !strings.HasSuffix(event.Name, ".md") {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceInterval, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			revalidate(config, root)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Printf("Watcher error: %v", err)
		}
	}
}

// revalidate re-discovers the file set and runs one validation pass,
// reporting but never aborting on failure.
func revalidate(config ValidateConfig, root string) {
	files, err := CollectAgentFiles(nil, root)
	if err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		return
	}

	pass := config
	pass.Files = files
	run := runValidation(pass)
	if err := RenderRunResult(os.Stdout, run, pass); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
	}
}

// watchRecursive adds a directory and all its subdirectories to the watcher.
func watchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("failed to watch %s: %w", path, err)
			}
		}
		return nil
	})
}
