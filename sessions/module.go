package sessions

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ida/configs"
	"github.com/reusee/ida/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
