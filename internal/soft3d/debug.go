package soft3d

import (
	"fmt"
	"sync"
)

var (
	Debug    = false // set to true for verbose debug output
	Parallel = true  // set to false to force single-threaded post passes
)

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
