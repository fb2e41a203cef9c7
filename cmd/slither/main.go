package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"slither/cfg"
	"slither/ui"
)

func main() {
	conf := cfg.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   conf.LogFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
	}))

	log.Infof("slither client starting, server %s", conf.ServerURL)
	app := ui.New(conf)
	if err := app.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}
