package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ctruct/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove the token cache",
	Long: `Remove the on-disk token cache. With a ctruct.toml that sets [cache].dir,
that directory is removed; otherwise $XDG_CACHE_HOME/ctruct.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	base := "."
	if len(args) > 0 && args[0] != "" {
		base = args[0]
	}
	dir, err := resolveCacheDir(base)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "cache directory not found")
			}
			return nil
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	cache, err := driver.OpenDiskCacheAt(dir)
	if err != nil {
		return err
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to remove %q: %w", dir, err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", dir)
	}
	return nil
}

// resolveCacheDir: [cache].dir из ctruct.toml, иначе стандартный каталог.
func resolveCacheDir(base string) (string, error) {
	manifest, ok, err := loadProjectManifest(base)
	if err != nil {
		return "", err
	}
	if ok {
		if dir := manifest.cacheDir(); dir != "" {
			return dir, nil
		}
	}
	cacheBase := os.Getenv("XDG_CACHE_HOME")
	if cacheBase == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cache dir: %w", err)
		}
		cacheBase = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheBase, "ctruct"), nil
}
