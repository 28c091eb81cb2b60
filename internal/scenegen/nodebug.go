//go:build !debug
// +build !debug

package scenegen

func DebugLog(format string, args ...interface{}) {}
