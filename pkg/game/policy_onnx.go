package game

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Feature planes fed to the policy network: enemy head, enemy body, player
// occupancy, then one plane per food type.
const policyChannels = 6

// inferRequest is one queued inference job.
type inferRequest struct {
	input []float32
	res   chan []float32
}

var (
	inferQueue  = make(chan inferRequest, 200)
	serviceOnce sync.Once
	serviceErr  error
)

// policyModel wraps an ONNX session with its fixed input/output tensors.
type policyModel struct {
	session *ort.AdvancedSession
	input   *ort.Tensor[float32]
	output  *ort.Tensor[float32]
}

// StartPolicyService brings up the single inference worker shared by every
// session. All OnnxPolicy instances funnel through its queue; one model
// instance serves the whole process.
func StartPolicyService(modelPath string, board BoardConfig) error {
	serviceOnce.Do(func() {
		serviceErr = initRuntime()
		if serviceErr != nil {
			return
		}

		go func() {
			model, err := loadPolicyModel(modelPath, board)
			if err != nil {
				fmt.Fprintf(os.Stderr, "policy worker failed to load model: %v\n", err)
			}
			servePolicyQueue(model)
		}()
	})
	return serviceErr
}

// servePolicyQueue drains inference requests for the life of the process.
// A nil model (failed load) still answers every request, with nil logits,
// so callers fall back to the heuristic instead of blocking the tick.
func servePolicyQueue(model *policyModel) {
	for req := range inferQueue {
		if model == nil {
			req.res <- nil
			continue
		}
		req.res <- model.predict(req.input)
	}
}

// predictPolicy queues one inference and waits for its turn.
func predictPolicy(input []float32) []float32 {
	res := make(chan []float32, 1)
	inferQueue <- inferRequest{input: input, res: res}
	return <-res
}

func loadPolicyModel(modelPath string, board BoardConfig) (*policyModel, error) {
	inputShape := ort.NewShape(1, policyChannels, int64(board.Height), int64(board.Width))
	inputTensor, err := ort.NewTensor(inputShape, make([]float32, policyChannels*board.Height*board.Width))
	if err != nil {
		return nil, fmt.Errorf("input tensor: %w", err)
	}

	outputShape := ort.NewShape(1, 4)
	outputTensor, err := ort.NewTensor(outputShape, make([]float32, 4))
	if err != nil {
		return nil, fmt.Errorf("output tensor: %w", err)
	}

	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("session options: %w", err)
	}
	defer options.Destroy()

	session, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor}, options)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	return &policyModel{session: session, input: inputTensor, output: outputTensor}, nil
}

func (m *policyModel) predict(input []float32) []float32 {
	copy(m.input.GetData(), input)
	if err := m.session.Run(); err != nil {
		return nil
	}

	// Copy out so the caller never aliases the session's buffer.
	logits := m.output.GetData()
	out := make([]float32, len(logits))
	copy(out, logits)
	return out
}

// OnnxPolicy asks the trained policy network for the enemy's heading and
// falls back to the heuristic whenever the model is unavailable or its
// proposal would run into the enemy's own body.
type OnnxPolicy struct {
	fallback HeuristicPolicy
}

func (p OnnxPolicy) NextDirection(g *Game) Direction {
	logits := predictPolicy(g.featureGrid())
	if len(logits) != 4 {
		return p.fallback.NextDirection(g)
	}

	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}
	dir := [4]Direction{Up, Down, Left, Right}[best]

	enemy := g.Enemy()
	next := nextCell(enemy.HeadCell(), dir, g.gridWidth, g.gridHeight)
	if enemy.Occupies(next.X, next.Y) {
		return p.fallback.NextDirection(g)
	}
	return dir
}

// featureGrid encodes the board as policyChannels planes in CHW order.
func (g *Game) featureGrid() []float32 {
	plane := g.gridWidth * g.gridHeight
	grid := make([]float32, policyChannels*plane)
	at := func(ch int, p Point) {
		grid[ch*plane+p.Y*g.gridWidth+p.X] = 1
	}

	enemy := g.enemy.State()
	at(0, enemy.Head)
	for _, cell := range enemy.Body {
		at(1, cell)
	}

	player := g.player.State()
	at(2, player.Head)
	for _, cell := range player.Body {
		at(2, cell)
	}

	for _, f := range g.foods.Foods() {
		if f.Pos.X < 0 || f.Pos.Y < 0 {
			continue
		}
		switch f.Type {
		case FoodNormal:
			at(3, f.Pos)
		case FoodBoost:
			at(4, f.Pos)
		case FoodCut:
			at(5, f.Pos)
		}
	}
	return grid
}

// RuntimeLibraryPath locates the onnxruntime shared library on this host.
func RuntimeLibraryPath() (string, error) {
	paths := []string{
		"/opt/homebrew/opt/onnxruntime/lib/libonnxruntime.dylib",
		"/usr/local/opt/onnxruntime/lib/libonnxruntime.dylib",
		"/usr/local/lib/libonnxruntime.dylib",
	}
	if runtime.GOOS == "linux" {
		paths = []string{
			"/usr/lib/libonnxruntime.so",
			"/usr/local/lib/libonnxruntime.so",
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("onnxruntime library not found in the usual locations")
}

var runtimeOnce sync.Once

func initRuntime() error {
	var err error
	runtimeOnce.Do(func() {
		var path string
		path, err = RuntimeLibraryPath()
		if err != nil {
			return
		}
		ort.SetSharedLibraryPath(path)
		err = ort.InitializeEnvironment()
	})
	return err
}
