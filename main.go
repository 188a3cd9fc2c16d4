package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	_ "github.com/p4gefau1t/aescore/component"
	"github.com/p4gefau1t/aescore/option"
)

func main() {
	flag.Parse()
	for {
		h, err := option.PopOptionHandler()
		if err != nil {
			log.Fatal("invalid options")
		}
		err = h.Handle()
		if err == nil {
			break
		}
	}
}
