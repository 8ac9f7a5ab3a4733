package config

import (
	"embed"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/josephlewis42/dirscript/commands"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte

	//go:embed default/tasks/*.txt
	exampleTasks embed.FS
)

const (
	ConfigurationName = "config.yaml"
	EventLogName      = "events.log"
	TasksDirName      = "tasks"
)

type Configuration struct {
	configFs afero.Fs

	Tasks        []string           `json:"tasks" validate:"dive,required"`
	Color        commands.ColorMode `json:"color" validate:"oneof=always auto never"`
	Strict       bool               `json:"strict"`
	RecordEvents bool               `json:"record_events"`

	Shell Shell `json:"shell"`
}

type Shell struct {
	Prompt       string `json:"prompt" validate:"required"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Fs returns the filesystem rooted at the configuration directory. Task paths
// listed in the configuration are relative to it.
func (c *Configuration) Fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewMemMapFs()
	}
	return c.configFs
}

// OpenEventLog opens the event log in an append only state.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	return c.Fs().OpenFile(EventLogName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	return c.Fs().OpenFile(EventLogName, os.O_RDONLY, 0600)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration. It isn't backed by a
// directory, so the event log and relative task paths are unavailable.
func Default() *Configuration {
	return defaultConfig()
}
