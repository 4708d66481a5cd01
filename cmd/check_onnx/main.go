// Probes for a usable onnxruntime installation before pointing the game at
// a policy model.
package main

import (
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/songshan0321/CPPND/pkg/game"
)

func main() {
	fmt.Println("Checking ONNX Runtime...")

	path, err := game.RuntimeLibraryPath()
	if err != nil {
		fmt.Println("❌", err)
		fmt.Println("Install it first, e.g. 'brew install onnxruntime' on macOS.")
		os.Exit(1)
	}
	fmt.Println("Found library:", path)

	ort.SetSharedLibraryPath(path)
	if err := ort.InitializeEnvironment(); err != nil {
		fmt.Println("❌ failed to initialize:", err)
		os.Exit(1)
	}
	defer ort.DestroyEnvironment()

	fmt.Println("✅ ONNX Runtime is ready. Run cmd/snake with -model to use a policy network.")
}
