// Package filecrypt is a small file encryption tool on top of the aes
// mode core: key material is derived from a passphrase with PBKDF2, and
// the output file is laid out as salt, IV, then ciphertext.
package filecrypt

import (
	"context"
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"

	"github.com/p4gefau1t/aescore/aes"
	"github.com/p4gefau1t/aescore/common"
	"github.com/p4gefau1t/aescore/config"
	"github.com/p4gefau1t/aescore/engine"
	"github.com/p4gefau1t/aescore/option"
)

const (
	saltSize     = 16
	pbkdf2Rounds = 4096
)

type filecryptOption struct {
	encrypt *bool
	decrypt *bool
	path    *string
}

func (*filecryptOption) Name() string {
	return Name
}

func (*filecryptOption) Priority() int {
	return 5
}

func (o *filecryptOption) Handle() error {
	if !*o.encrypt && !*o.decrypt {
		return common.NewError("not set")
	}
	if *o.encrypt && *o.decrypt {
		log.Fatal("-encrypt and -decrypt are mutually exclusive")
	}
	data, err := os.ReadFile(*o.path)
	if err != nil {
		log.Fatalf("Failed to read config file %s: %v", *o.path, err)
	}
	cfg, err := loadConfig(data, strings.HasSuffix(*o.path, ".json"))
	if err != nil {
		log.Fatalf("Failed to parse config file %s: %v", *o.path, err)
	}
	passphrase, err := readPassphrase()
	if err != nil {
		log.Fatal(err)
	}
	if *o.encrypt {
		err = sealFile(cfg, passphrase)
	} else {
		err = openFile(cfg, passphrase)
	}
	if err != nil {
		log.Fatal(err)
	}
	return nil
}

func loadConfig(data []byte, isJSON bool) (*FilecryptConfig, error) {
	ctx := context.Background()
	var err error
	if isJSON {
		ctx, err = config.WithJSONConfig(ctx, data)
	} else {
		ctx, err = config.WithYAMLConfig(ctx, data)
	}
	if err != nil {
		return nil, err
	}
	cfg := config.FromContext(ctx, Name).(*Config)
	return &cfg.Filecrypt, nil
}

func keyLengthClass(bits int) (aes.KeyLength, error) {
	switch bits {
	case 128:
		return aes.Key128, nil
	case 192:
		return aes.Key192, nil
	case 256:
		return aes.Key256, nil
	default:
		return aes.Key128, aes.ErrInvalidKeyLength
	}
}

func deriveKey(passphrase, salt []byte, keyLength aes.KeyLength) []byte {
	return pbkdf2.Key(passphrase, salt, pbkdf2Rounds, keyLength.Size(), sha256.New)
}

func newContext(cfg *FilecryptConfig, passphrase, salt []byte) (*aes.Context, error) {
	keyLength, err := keyLengthClass(cfg.KeyLength)
	if err != nil {
		return nil, err
	}
	eng, err := engine.NewEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return aes.Init(eng, deriveKey(passphrase, salt, keyLength), keyLength)
}

func sealFile(cfg *FilecryptConfig, passphrase []byte) error {
	plaintext, err := os.ReadFile(cfg.Input)
	if err != nil {
		return common.NewError("failed to read input file").Base(err)
	}

	salt := make([]byte, saltSize)
	iv := make([]byte, aes.BlockSize)
	common.CryptoRandRead(salt)
	common.CryptoRandRead(iv)

	ctx, err := newContext(cfg, passphrase, salt)
	if err != nil {
		return err
	}
	defer ctx.Free()

	out := make([]byte, 0, saltSize+2*aes.BlockSize+len(plaintext))
	out = append(out, salt...)
	out = append(out, iv...)

	body, err := seal(ctx, cfg.Mode, iv, plaintext)
	if err != nil {
		return err
	}
	out = append(out, body...)

	if err := os.WriteFile(cfg.Output, out, 0o600); err != nil {
		return common.NewError("failed to write output file").Base(err)
	}
	log.Infof("Encrypted %d bytes with aes-%d-%s into %s", len(plaintext), cfg.KeyLength, cfg.Mode, cfg.Output)
	return nil
}

func openFile(cfg *FilecryptConfig, passphrase []byte) error {
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return common.NewError("failed to read input file").Base(err)
	}
	if len(data) < saltSize+aes.BlockSize {
		return common.NewError("ciphertext too short")
	}
	salt := data[:saltSize]
	iv := make([]byte, aes.BlockSize)
	copy(iv, data[saltSize:saltSize+aes.BlockSize])
	body := data[saltSize+aes.BlockSize:]

	ctx, err := newContext(cfg, passphrase, salt)
	if err != nil {
		return err
	}
	defer ctx.Free()

	plaintext, err := open(ctx, cfg.Mode, iv, body)
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, plaintext, 0o600); err != nil {
		return common.NewError("failed to write output file").Base(err)
	}
	log.Infof("Decrypted %d bytes with aes-%d-%s into %s", len(plaintext), cfg.KeyLength, cfg.Mode, cfg.Output)
	return nil
}

func seal(ctx *aes.Context, mode string, iv, plaintext []byte) ([]byte, error) {
	switch mode {
	case "ecb":
		padded := pad(plaintext)
		out := make([]byte, len(padded))
		for i := 0; i < len(padded); i += aes.BlockSize {
			if err := ctx.ECB(aes.Encrypt, out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize]); err != nil {
				return nil, err
			}
		}
		return out, nil
	case "cbc":
		padded := pad(plaintext)
		out := make([]byte, len(padded))
		return out, ctx.CBC(aes.Encrypt, iv, out, padded)
	case "cfb":
		padded := pad(plaintext)
		out := make([]byte, len(padded))
		return out, ctx.CFB(aes.Encrypt, iv, out, padded)
	case "ctr":
		out := make([]byte, len(plaintext))
		streamBlock := make([]byte, aes.BlockSize)
		offset := 0
		return out, ctx.CTR(iv, streamBlock, &offset, out, plaintext)
	default:
		return nil, common.NewError("unknown cipher mode " + mode)
	}
}

func open(ctx *aes.Context, mode string, iv, body []byte) ([]byte, error) {
	switch mode {
	case "ecb":
		out := make([]byte, len(body))
		if len(body)%aes.BlockSize != 0 {
			return nil, aes.ErrSizeNotBlockAligned
		}
		for i := 0; i < len(body); i += aes.BlockSize {
			if err := ctx.ECB(aes.Decrypt, out[i:i+aes.BlockSize], body[i:i+aes.BlockSize]); err != nil {
				return nil, err
			}
		}
		return unpad(out)
	case "cbc":
		out := make([]byte, len(body))
		if err := ctx.CBC(aes.Decrypt, iv, out, body); err != nil {
			return nil, err
		}
		return unpad(out)
	case "cfb":
		out := make([]byte, len(body))
		if err := ctx.CFB(aes.Decrypt, iv, out, body); err != nil {
			return nil, err
		}
		return unpad(out)
	case "ctr":
		out := make([]byte, len(body))
		streamBlock := make([]byte, aes.BlockSize)
		offset := 0
		if err := ctx.CTR(iv, streamBlock, &offset, out, body); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, common.NewError("unknown cipher mode " + mode)
	}
}

func readPassphrase() ([]byte, error) {
	fmt.Print("Passphrase: ")
	passphrase, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, common.NewError("failed to read passphrase").Base(err)
	}
	if len(passphrase) == 0 {
		return nil, common.NewError("empty passphrase")
	}
	return passphrase, nil
}

func init() {
	option.RegisterHandler(&filecryptOption{
		encrypt: flag.Bool("encrypt", false, "Encrypt the configured input file"),
		decrypt: flag.Bool("decrypt", false, "Decrypt the configured input file"),
		path:    flag.String("config", "filecrypt.yaml", "Config filename, yaml or json"),
	})
}
