package main

import (
	"log"
	"os"
)

// newPrefixLogger returns a stderr logger for one subsystem.
func newPrefixLogger(prefix string) *log.Logger {
	return log.New(os.Stderr, prefix, log.LstdFlags)
}
