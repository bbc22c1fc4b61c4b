package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/ida/cmds"
	"github.com/reusee/ida/logs"
	"github.com/reusee/ida/modes"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var schema string

var configFilesFlag = cmds.Collect[string]("-config")

type ConfigFiles []string

var configFileNames = []string{
	"ida.cue",
	".ida.cue",
}

func (Module) ConfigFiles(
	mode modes.Mode,
) (ret ConfigFiles) {
	// flag
	ret = append(ret, *configFilesFlag...)

	if mode != modes.ModeProduction {
		return
	}

	var dirs []string
	// working directory
	if dir, err := os.Getwd(); err == nil {
		dirs = append(dirs, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	// system wide dir
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, name := range configFileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				ret = append(ret, path)
			}
		}
	}

	return
}

func (Module) ConfigsLoader(
	files ConfigFiles,
	logger logs.Logger,
) Loader {
	if len(files) > 0 {
		logger.Info("config files", "paths", []string(files))
	}
	return NewLoader(files, schema)
}
