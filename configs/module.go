package configs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Configurable is implemented by setting types provided from config files.
// ConfigExpr names the setting in logs and error messages.
type Configurable interface {
	ConfigExpr() string
}
