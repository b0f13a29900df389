//go:build !darwin && !linux

package autostart

import "errors"

var errUnsupported = errors.New("autostart: unsupported platform")

func install(execPath string) error { return errUnsupported }

func uninstall() error { return errUnsupported }

func installed() (bool, error) { return false, errUnsupported }
