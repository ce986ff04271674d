// Package main implements a tool to show distribution of file sizes from a listing.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bool64/dev/version"
	"github.com/vearutop/filesizehist"
	"github.com/vearutop/filesizehist/render"
)

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		os.Exit(1)
	}

	name := os.Args[1]

	h, err := histogram(name, os.Stdin)
	if err != nil {
		log.Fatal(err.Error())
	}

	title := "filesizehistogram " + version.Info().Version

	img, err := render.Chart(h, render.WithTitle(render.Caption(h)))
	if err != nil {
		log.Fatal(err.Error())
	}

	show(title, withCaption(img, "Input: "+inputName(name)))
}

func usage(w io.Writer) {
	_, _ = io.WriteString(w, "Usage: filesizehistogram input\n"+
		`       input is a result of "find -printf '%s %p\n'", use "-" to read from stdin.`+"\n")
}

func histogram(name string, stdin io.Reader) (*filesizehist.Histogram, error) {
	sizes, err := filesizehist.Load(name, stdin)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", inputName(name), err)
	}

	return filesizehist.New(sizes)
}

func inputName(name string) string {
	if name == filesizehist.Stdin {
		return "stdin"
	}

	return name
}
