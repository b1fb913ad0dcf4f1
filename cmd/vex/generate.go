package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vexlang/vex/internal/config"
	"github.com/vexlang/vex/internal/debug"
	"github.com/vexlang/vex/internal/vexgen"
)

// runGenerate implements the generate subcommand.
// It processes .vex files and generates corresponding Go source files.
func runGenerate(args []string) error {
	verbose := false
	var paths []string

	// Parse arguments
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	// Default to current directory if no paths specified
	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectVexFiles(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no .vex files found")
	}

	if verbose {
		fmt.Printf("Found %d .vex file(s)\n", len(files))
	}
	if debug.Enabled() {
		debug.Logf("generate: %d file(s) from %s", len(files), strings.Join(paths, " "))
	}

	configs := newConfigCache()

	// Compile files in parallel; each output file is independent.
	var (
		group      errgroup.Group
		mu         sync.Mutex
		errorCount int
	)
	group.SetLimit(8)

	for _, inputPath := range files {
		inputPath := inputPath
		group.Go(func() error {
			cfg, err := configs.forDir(filepath.Dir(inputPath))
			if err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				errorCount++
				mu.Unlock()
				return nil
			}

			outputPath := outputFileName(inputPath, cfg.Suffix)
			if verbose {
				mu.Lock()
				fmt.Printf("Processing %s -> %s\n", inputPath, outputPath)
				mu.Unlock()
			}

			if err := generateFile(inputPath, outputPath, cfg); err != nil {
				mu.Lock()
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				errorCount++
				mu.Unlock()
			}
			return nil
		})
	}
	group.Wait()

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Printf("Successfully generated %d file(s)\n", len(files))
	}

	return nil
}

// configCache loads each directory's vex.yaml at most once.
type configCache struct {
	mu      sync.Mutex
	configs map[string]config.Config
}

func newConfigCache() *configCache {
	return &configCache{configs: make(map[string]config.Config)}
}

func (c *configCache) forDir(dir string) (config.Config, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cfg, ok := c.configs[dir]; ok {
		return cfg, nil
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return cfg, err
	}
	c.configs[dir] = cfg
	return cfg, nil
}

// collectVexFiles finds all .vex files from the given paths.
// Supports:
//   - Direct file paths: "header.vex"
//   - Directory paths: "./views"
//   - Recursive pattern: "./..."
func collectVexFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && strings.HasSuffix(p, ".vex") {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Collect all .vex files in directory (non-recursive)
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".vex") {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if strings.HasSuffix(path, ".vex") {
			files = append(files, path)
		}
	}

	return files, nil
}

// outputFileName converts a .vex filename to its output .go filename.
// Examples:
//
//	header.vex   -> header_vex.go
//	user-card.vex -> user_card_vex.go
func outputFileName(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	base := filepath.Base(inputPath)

	name := strings.TrimSuffix(base, ".vex")

	// Go source filenames should not contain hyphens
	name = strings.ReplaceAll(name, "-", "_")

	return filepath.Join(dir, name+suffix)
}

// generateFile parses a .vex file and generates the corresponding Go file.
func generateFile(inputPath, outputPath string, cfg config.Config) error {
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	// Just the filename for error messages and the header comment
	filename := filepath.Base(inputPath)

	doc, err := vexgen.Parse(filename, string(source))
	if err != nil {
		return err
	}

	gen := vexgen.NewGenerator()
	gen.PackageName = packageNameFor(inputPath, cfg)
	gen.HandlerPrefix = cfg.HandlerPrefix

	output, err := gen.Generate(doc, filename)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	if err := os.WriteFile(outputPath, output, 0644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	debug.Logf("generated %s from %s", outputPath, inputPath)
	return nil
}

// packageNameFor picks the generated file's package name: the configured
// one, or the containing directory's name.
func packageNameFor(inputPath string, cfg config.Config) string {
	if cfg.Package != "" {
		return cfg.Package
	}

	dir, err := filepath.Abs(filepath.Dir(inputPath))
	if err != nil {
		return "views"
	}
	name := strings.ReplaceAll(filepath.Base(dir), "-", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "views"
	}
	return name
}
