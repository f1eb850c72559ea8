// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/thinkeloquent/runtime-template-resolver/logger"
)

// Load reads a single YAML file into a plain configuration tree. An empty
// file yields an empty tree.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}
	if tree == nil {
		tree = map[string]any{}
	}
	return tree, nil
}

// LoadAll reads an ordered list of YAML files and deep-merges them into one
// tree. Later files win: nested maps are merged recursively, everything
// else (scalars, sequences) is overwritten wholesale.
func LoadAll(paths ...string) (map[string]any, error) {
	merged := map[string]any{}
	for _, path := range paths {
		logger.Debugw("loading config file", "path", path)
		tree, err := Load(path)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, tree)
	}
	return merged, nil
}

// Merge deep-merges overlay onto base, returning a new tree. Neither input
// is mutated. When both sides hold a map under the same key the maps merge
// recursively; otherwise the overlay value replaces the base value.
func Merge(base, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(overlay))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range overlay {
		overlayMap, overlayIsMap := value.(map[string]any)
		baseMap, baseIsMap := merged[key].(map[string]any)
		if overlayIsMap && baseIsMap {
			merged[key] = Merge(baseMap, overlayMap)
			continue
		}
		merged[key] = value
	}
	return merged
}

// SearchPaths returns the candidate config file locations for an
// application, in priority order: the working directory's config/
// subdirectory, then the XDG user config home, then the system XDG config
// directories.
func SearchPaths(appName, fileName string) []string {
	paths := []string{
		filepath.Join("config", fileName),
		filepath.Join(xdg.ConfigHome, appName, fileName),
	}
	for _, dir := range xdg.ConfigDirs {
		paths = append(paths, filepath.Join(dir, appName, fileName))
	}
	return paths
}

// Find returns the first existing path from SearchPaths, or an error when
// none of the candidates exists.
func Find(appName, fileName string) (string, error) {
	candidates := SearchPaths(appName, fileName)
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("config file %q not found for %q in %d locations", fileName, appName, len(candidates))
}
