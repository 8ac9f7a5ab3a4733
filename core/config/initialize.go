package config

import (
	"io/fs"
	"log"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration and example tasks to dir.
// Existing files are left alone.
func Initialize(dir string, logger *log.Logger) error {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return InitializeFs(afero.NewBasePathFs(osFs, dir), logger)
}

// InitializeFs writes the default configuration and example tasks to the
// root of configFs.
func InitializeFs(configFs afero.Fs, logger *log.Logger) error {
	if err := writeIfMissing(configFs, ConfigurationName, defaultConfigData, logger); err != nil {
		return err
	}

	if err := configFs.MkdirAll(TasksDirName, 0755); err != nil {
		return err
	}

	return fs.WalkDir(exampleTasks, "default/tasks", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		contents, err := exampleTasks.ReadFile(name)
		if err != nil {
			return err
		}
		return writeIfMissing(configFs, path.Join(TasksDirName, d.Name()), contents, logger)
	})
}

func writeIfMissing(configFs afero.Fs, name string, contents []byte, logger *log.Logger) error {
	exists, err := afero.Exists(configFs, name)
	switch {
	case err != nil:
		return err
	case exists:
		logger.Printf("%s already exists, skipping", name)
		return nil
	}

	logger.Printf("writing %s", name)
	return afero.WriteFile(configFs, name, contents, 0644)
}
