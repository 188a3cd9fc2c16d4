package build

import (
	_ "github.com/p4gefau1t/aescore/engine/software"
	_ "github.com/p4gefau1t/aescore/filecrypt"
	_ "github.com/p4gefau1t/aescore/version"
)
