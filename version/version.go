package version

import (
	"encoding/hex"
	"flag"
	"fmt"
	"runtime"

	"github.com/p4gefau1t/aescore/common"
	"github.com/p4gefau1t/aescore/constant"
	"github.com/p4gefau1t/aescore/option"
)

type versionOption struct {
	flag *bool
}

func (*versionOption) Name() string {
	return "version"
}

func (*versionOption) Priority() int {
	return 10
}

func (c *versionOption) Handle() error {
	if *c.flag {
		fmt.Println("AESCore", constant.Version)
		fmt.Println("Go Version:", runtime.Version())
		fmt.Println("OS/Arch:", runtime.GOOS+"/"+runtime.GOARCH)
		fmt.Println("Git Commit:", constant.Commit)
		return nil
	}
	return common.NewError("not set")
}

type keyOption struct {
	keyType *string
}

func (k *keyOption) Name() string {
	return "KEY"
}

func (k *keyOption) Handle() error {
	switch *k.keyType {
	case "aes128":
		return printKey(16)
	case "aes192":
		return printKey(24)
	case "aes256":
		return printKey(32)
	default:
		return common.NewError("not set")
	}
}

func (k *keyOption) Priority() int {
	return 1
}

func printKey(size int) error {
	key := make([]byte, size)
	common.CryptoRandRead(key)
	fmt.Printf("key: %s\n", hex.EncodeToString(key))
	return nil
}

func init() {
	option.RegisterHandler(&versionOption{
		flag: flag.Bool("version", false, "Display version and help info"),
	})
	option.RegisterHandler(&keyOption{
		keyType: flag.String("key", "", "Generate a random key (aes128, aes192 or aes256)"),
	})
}
