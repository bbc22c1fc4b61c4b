package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/ida/cmds"
	"github.com/reusee/ida/idalang"
	"github.com/reusee/ida/vars"
)

type MaxDepth int

var maxDepthFlag = cmds.Var[int]("-max-depth")

func (Module) MaxDepth(
	loader Loader,
) MaxDepth {
	return MaxDepth(vars.FirstNonZero(
		*maxDepthFlag,
		First[int](loader, "max_depth"),
		idalang.DefaultMaxDepth,
	))
}

type Prompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		First[string](loader, "prompt"),
		"ida > ",
	))
}

type HistoryFile string

func (Module) HistoryFile(
	loader Loader,
) HistoryFile {
	if path := First[string](loader, "history_file"); path != "" {
		return HistoryFile(path)
	}
	if dir, err := os.UserHomeDir(); err == nil {
		return HistoryFile(filepath.Join(dir, ".ida_history"))
	}
	return ""
}

// Preload collects preload lines of all config files, in file order
type Preload []string

func (Module) Preload(
	loader Loader,
) (ret Preload) {
	for lines := range All[[]string](loader, "preload") {
		ret = append(ret, lines...)
	}
	return
}
