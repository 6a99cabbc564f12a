package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yacobolo/stylec"
)

// Build is the main bundler entry point: it discovers style manifests,
// compiles each one, and assembles a single stylesheet with the layer
// ordering statement on top and one block per layer in cascade order.
// Identical compiled blocks (same component name and CSS payload) are
// emitted once; a dedup scope brackets the whole build.
func Build(config Config) (*BuildResult, error) {
	result := &BuildResult{
		ClassMaps: make(map[string]map[string]string),
	}

	// 1. Discover manifests
	files, stats, err := discoverManifests(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.FilesScanned = stats.FilesScanned

	if config.Verbose {
		fmt.Printf("Found %d style manifests\n", len(files))
	}

	// 2. Parse all manifests; a broken file is a warning, not a failed build
	var manifests []*Manifest
	for _, file := range files {
		if config.Verbose {
			fmt.Printf("Parsing %s\n", file)
		}
		m, err := loadManifest(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		manifests = append(manifests, m)
	}

	// 3. Compile and group by layer
	registry := stylec.NewRegistry()
	registry.PushScope()
	defer registry.PopScope()

	byLayer := make(map[stylec.Layer][]string)
	for _, m := range manifests {
		out, err := stylec.Compile(m.Config)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to compile %s: %v", m.Path, err))
			continue
		}
		if out.CSS == "" {
			continue
		}

		if !registry.ShouldInject(stylec.InjectionKey(m.Name, out.CSS)) {
			result.BlocksDeduped++
			continue
		}

		layer := m.Config.Layer
		if layer == "" {
			layer = stylec.LayerComponents
		}
		byLayer[layer] = append(byLayer[layer], out.CSS)
		result.ClassMaps[m.Name] = out.ClassMap
		result.ComponentsCompiled++
	}

	// 4. Assemble: ordering statement first, then layers in cascade order
	blocks := []string{stylec.LayerStatement()}
	for _, layer := range stylec.LayerOrder {
		blocks = append(blocks, byLayer[layer]...)
	}
	result.Stylesheet = strings.Join(blocks, "\n\n") + "\n"

	if config.Verbose {
		fmt.Printf("Compiled %d components (%d duplicate blocks suppressed)\n",
			result.ComponentsCompiled, result.BlocksDeduped)
	}

	// 5. Write outputs
	if config.OutFile != "" {
		if err := writeFile(config.OutFile, []byte(result.Stylesheet)); err != nil {
			return nil, fmt.Errorf("write stylesheet: %w", err)
		}
	}
	if config.ClassMapFile != "" {
		if err := writeClassMaps(config.ClassMapFile, result.ClassMaps); err != nil {
			return nil, fmt.Errorf("write class map: %w", err)
		}
	}

	return result, nil
}

// writeClassMaps exports the per-component class maps as JSON for
// downstream tooling. The snapshot is only valid for the stylesheet written
// by the same build: class names are not stable across builds.
func writeClassMaps(path string, maps map[string]map[string]string) error {
	data, err := json.MarshalIndent(maps, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(path, append(data, '\n'))
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
