package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
)

var logfile *os.File
var verbose bool

// LogDir returns the directory depsort.log is written to.
func LogDir() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "depsort", "logs")
}

// Init appends log lines to depsort.log in dir. Without a usable file the
// file log is discarded and console output is unaffected.
func Init(dir string) {
	Close()
	log.SetOutput(io.Discard)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "depsort.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logfile = f
	log.SetOutput(f)
}

func Close() {
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

func Info(msg string) {
	fmt.Println(msg)
	log.Println(msg)
}

func Success(msg string) {
	fmt.Println(text.FgGreen.Sprint(msg))
	log.Println(msg)
}

func Error(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, text.FgRed.Sprint(msg))
	log.Println("[ERROR] " + msg)
}

func Gray(msg string) {
	fmt.Println(text.FgHiBlack.Sprint(msg))
	log.Println(msg)
}

// SetVerbose toggles verbose output to stdout.
func SetVerbose(v bool) { verbose = v }

// Debug prints only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	fmt.Println(text.FgHiBlack.Sprint(msg))
	log.Println("[DEBUG] " + msg)
}
