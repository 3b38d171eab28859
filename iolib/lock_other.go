//go:build !windows

package iolib

func isSharingViolation(error) bool { return false }
