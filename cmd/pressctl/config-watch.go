package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/pressroom/pressroom/pkg/config"
)

// configWatchCmd represents the config watch command
var configWatchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch the config file and validate it on change",
	Long: `Watch the config file and validate it when it changes.

Each time the file is written, the configuration is reloaded and validated,
and the result is printed. Use this while editing the config file to catch
mistakes before restarting the server.

If no file is given, the default config file location is watched.

Example:
  pressctl config watch
  pressctl config watch /etc/pressroom/pressroom.yml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := defaultConfigPath()
		if len(args) > 0 {
			filename = args[0]
		}

		if err := watchConfig(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch config: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.AddCommand(configWatchCmd)
}

func defaultConfigPath() string {
	dir := os.Getenv("PRESSROOM_CONFIG_DIR")
	if dir == "" {
		dir = config.DefaultConfigDir
	}
	return filepath.Join(dir, config.ConfigFileName)
}

func watchConfig(filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory so edits that replace the file (the usual editor
	// save pattern) are still seen.
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(filename), err)
	}

	fmt.Printf("Watching %s for configuration changes\n", filename)
	checkConfig(filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, revalidating...\n", time.Now().Format(time.RFC3339))
				checkConfig(filename)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func checkConfig(filename string) {
	cfg, err := config.LoadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration invalid: %v\n", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration incomplete: %v\n", err)
		return
	}
	fmt.Println("Configuration OK")
}
