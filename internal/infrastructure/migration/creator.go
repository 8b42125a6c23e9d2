package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MigrationFile describes a freshly created up/down pair
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration writes a timestamped up/down SQL stub pair into dir.
// If the down file cannot be written the up file is removed again so the
// directory never holds a half pair.
func CreateMigration(dir, name, description string) (*MigrationFile, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	now := time.Now()
	base := now.Format("20060102150405") + "_" + slugify(name)

	mf := &MigrationFile{
		Version:  now.Format("20060102150405"),
		Name:     name,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}

	up := stub(name, description, now, false)
	down := stub(name, description, now, true)

	if err := os.WriteFile(mf.UpPath, []byte(up), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", mf.UpPath, err)
	}
	if err := os.WriteFile(mf.DownPath, []byte(down), 0o644); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to write %s: %w", mf.DownPath, err)
	}

	return mf, nil
}

func stub(name, description string, at time.Time, rollback bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "-- %s", name)
	if rollback {
		b.WriteString(" (rollback)")
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "-- created %s\n", at.Format(time.RFC3339))
	if description != "" {
		fmt.Fprintf(&b, "-- %s\n", description)
	}
	b.WriteByte('\n')
	return b.String()
}

// slugify lowercases a migration name and collapses anything that is not
// alphanumeric into single underscores
func slugify(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)

	for strings.Contains(mapped, "__") {
		mapped = strings.ReplaceAll(mapped, "__", "_")
	}
	return strings.Trim(mapped, "_")
}

// ListMigrations returns the sorted base names of the migration pairs in dir
func ListMigrations(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	names := make([]string, 0, len(entries)/2)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if base, ok := strings.CutSuffix(entry.Name(), ".up.sql"); ok {
			names = append(names, base)
		}
	}
	sort.Strings(names)
	return names, nil
}
