package filecrypt

import "github.com/p4gefau1t/aescore/config"

const Name = "FILECRYPT"

type Config struct {
	Filecrypt FilecryptConfig `json:"filecrypt" yaml:"filecrypt"`
}

type FilecryptConfig struct {
	Mode      string `json:"mode" yaml:"mode"`
	KeyLength int    `json:"key_length" yaml:"key-length"`
	Engine    string `json:"engine" yaml:"engine"`
	Input     string `json:"input" yaml:"input"`
	Output    string `json:"output" yaml:"output"`
}

func init() {
	config.RegisterConfigCreator(Name, func() interface{} {
		return &Config{
			Filecrypt: FilecryptConfig{
				Mode:      "ctr",
				KeyLength: 256,
				Engine:    "software",
			},
		}
	})
}
