//go:build debug
// +build debug

package scenegen

import "fmt"

func DebugLog(format string, args ...interface{}) {
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}
