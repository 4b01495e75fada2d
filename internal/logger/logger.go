package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const Yellow = "\033[0;33m"
const Green = "\033[0;32m"
const Blue = "\033[0;34m"
const Red = "\033[0;31m"
const Reset = "\033[0m"

var depth = 2
var stdout = log.New(os.Stdout, "", 0)
var stderr = log.New(os.Stderr, "", 0)
var LogLevel = "INFO"

func SetLogLevel(level string) {
	if level == "" {
		return
	}
	LogLevel = strings.ToUpper(level)
	if LogLevel == "VERBOSE" {
		stdout.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		stderr.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}
}

func LogVerbose(v ...any) {
	if LogLevel == "VERBOSE" {
		_ = stdout.Output(depth, fmt.Sprintln(v...))
	}
}
func LogInfo(v ...any) {
	if LogLevel != "WARN" && LogLevel != "ERROR" {
		_ = stdout.Output(depth, fmt.Sprintln(v...))
	}
}
func LogWarning(v ...any) {
	if LogLevel != "ERROR" {
		_ = stdout.Output(depth, Yellow+fmt.Sprintln(v...)+Reset)
	}
}
func LogError(v ...any) {
	_ = stderr.Output(depth, Red+fmt.Sprintln(v...)+Reset)
}

func LogVerbosef(format string, v ...any) {
	if LogLevel == "VERBOSE" {
		_ = stdout.Output(depth, fmt.Sprintf(format, v...))
	}
}
func LogInfof(format string, v ...any) {
	if LogLevel != "WARN" && LogLevel != "ERROR" {
		_ = stdout.Output(depth, fmt.Sprintf(format, v...))
	}
}
func LogWarningf(format string, v ...any) {
	if LogLevel != "ERROR" {
		_ = stdout.Output(depth, Yellow+fmt.Sprintf(format, v...)+Reset)
	}
}
func LogErrorf(format string, v ...any) {
	_ = stderr.Output(depth, Red+fmt.Sprintf(format, v...)+Reset)
}
