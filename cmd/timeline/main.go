package main

import (
	"context"
	"os"

	"github.com/ardnew/goinstr/cmd/timeline/cli"
	"github.com/ardnew/goinstr/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Error("run failed", log.ErrAttr(err))
		os.Exit(1)
	}
}
