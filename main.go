package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"runtime"
)

func init() {
	// GLFW, OpenGL and GTK all want the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code. Deferred cleanup has finished by the
// time it returns.
func run(args []string, output io.Writer) int {
	cfg, err := parseConfig(args, output)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Println(err)
		return 2
	}

	mainContext, mainQuit := context.WithCancelCause(context.Background())
	defer mainQuit(nil)

	app, err := NewApp(mainContext, mainQuit, cfg)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer app.Close()

	if err := app.Run(); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
		return 1
	}
	return 0
}
