// ABOUTME: One-shot content seeding: back up current store values, then overwrite sections
// ABOUTME: from a YAML content set. Backs the `familybond seed` command.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/familybond-au/familybond/content"
	"github.com/familybond-au/familybond/store"
)

// Load reads a YAML file mapping section keys to documents and converts each
// document to JSON for the accessor's shape check.
func Load(path string) (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	sections := make(map[string]json.RawMessage, len(parsed))
	for key, doc := range parsed {
		if !content.Known(key) {
			return nil, fmt.Errorf("%w: %s", content.ErrUnknownSection, key)
		}
		encoded, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode section %s: %w", key, err)
		}
		sections[key] = encoded
	}
	return sections, nil
}

// Backup writes every registered section's current store value to a
// timestamped JSON file under dir and returns the file's path. Sections with
// no stored value are recorded as null.
func Backup(ctx context.Context, kv store.KV, dir string) (string, error) {
	snapshot := make(map[string]json.RawMessage, len(content.Keys()))
	for _, key := range content.Keys() {
		raw, err := kv.Get(ctx, content.StoreKey(key))
		if errors.Is(err, store.ErrNotFound) {
			snapshot[string(key)] = json.RawMessage("null")
			continue
		}
		if err != nil {
			return "", fmt.Errorf("back up section %s: %w", key, err)
		}
		snapshot[string(key)] = json.RawMessage(raw)
	}

	encoded, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode backup: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}
	name := fmt.Sprintf("content-backup-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return path, nil
}

// Apply overwrites each provided section through the accessor, in stable key
// order. The first store failure aborts the run.
func Apply(ctx context.Context, accessor *content.Accessor, sections map[string]json.RawMessage) error {
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := accessor.Set(ctx, content.Key(key), sections[key]); err != nil {
			return fmt.Errorf("seed section %s: %w", key, err)
		}
		log.Printf("component=seed action=section_written section=%s", key)
	}
	return nil
}

// Run backs up the store and then applies the seed file's sections.
func Run(ctx context.Context, kv store.KV, backupDir, seedPath string) error {
	sections, err := Load(seedPath)
	if err != nil {
		return err
	}

	backupPath, err := Backup(ctx, kv, backupDir)
	if err != nil {
		return err
	}
	log.Printf("component=seed action=backup_written path=%s", backupPath)

	return Apply(ctx, content.NewAccessor(kv), sections)
}
