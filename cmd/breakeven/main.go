package main

import (
	"log/slog"
	"os"

	"github.com/ja7ad/breakeven/pkg/curve"
)

func main() {
	if err := execute(newRootCmd(curve.NewPNGRenderer())); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
