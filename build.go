//go:build ignore

// build.go - lemdata build helper
// Usage: go run build.go [-target=TARGET] [-v]
// Targets: build, test, generate, clean

package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

var (
	rootDir string
	distDir string

	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
)

func init() {
	cwd, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("Failed to get current directory: %v", err))
	}
	rootDir = cwd
	distDir = filepath.Join(rootDir, "dist")

	if _, err := os.Stat(filepath.Join(rootDir, "go.mod")); os.IsNotExist(err) {
		panic(fmt.Sprintf("go.mod not found in %s, run from the repository root", rootDir))
	}
}

func main() {
	target := flag.String("target", "build", "Build target")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	if runtime.GOOS == "windows" {
		colorReset, colorRed, colorGreen, colorCyan = "", "", "", ""
	}

	start := time.Now()
	var err error
	switch *target {
	case "build":
		err = build(*verbose)
	case "test":
		err = goCmd(*verbose, "test", "-race", "./...")
	case "generate":
		err = goCmd(*verbose, "run", "./cmd/lemdata")
	case "clean":
		err = os.RemoveAll(distDir)
	default:
		printError(fmt.Sprintf("Unknown target %q (build, test, generate, clean)", *target))
		os.Exit(1)
	}
	if err != nil {
		printError(fmt.Sprintf("%s failed: %v", *target, err))
		os.Exit(1)
	}

	printSuccess(fmt.Sprintf("%s completed in %s", *target, time.Since(start).Round(time.Millisecond)))
}

func build(verbose bool) error {
	exe := "lemdata"
	if runtime.GOOS == "windows" {
		exe += ".exe"
	}
	out := filepath.Join(distDir, exe)

	printInfo("Building lemdata...")
	if err := goCmd(verbose, "build", "-ldflags", "-s -w", "-o", out, "./cmd/lemdata"); err != nil {
		return err
	}

	if info, err := os.Stat(out); err == nil {
		printSuccess(fmt.Sprintf("Built %s (%.1f MB)", exe, float64(info.Size())/1024/1024))
	}
	return nil
}

func goCmd(verbose bool, args ...string) error {
	if verbose {
		fmt.Printf("Running: go %s\n", strings.Join(args, " "))
	}
	cmd := exec.Command("go", args...)
	cmd.Dir = rootDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func printInfo(msg string) {
	fmt.Printf("%s[INFO]%s %s\n", colorCyan, colorReset, msg)
}

func printSuccess(msg string) {
	fmt.Printf("%s[OK]%s %s\n", colorGreen, colorReset, msg)
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s[ERROR]%s %s\n", colorRed, colorReset, msg)
}
