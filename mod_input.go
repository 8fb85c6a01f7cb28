package cottage

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyZ
	KeyO
	KeyP
	KeyK
	KeyL
	KeyN
	KeyM
	KeyEscape
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKP1
	KeyKP2
	KeyKP7
	KeyKP8
	KeyKP9
	MouseButtonLeft

	keyCount
)

type Input struct {
	Pressed [keyCount]bool

	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64
	MouseCaptured            bool

	firstMouse bool
}

func NewInput() *Input {
	return &Input{MouseCaptured: true, firstMouse: true}
}

// SetKey records the key state for this frame and derives the edge flags.
func (input *Input) SetKey(key int, down bool) {
	input.JustPressed[key] = down && !input.Pressed[key]
	input.JustReleased[key] = !down && input.Pressed[key]
	input.Pressed[key] = down
}

// SetMouse records the cursor position. The first sample only primes the
// delta so the camera does not jump when the window opens.
func (input *Input) SetMouse(x, y float64) {
	if input.firstMouse {
		input.MouseX, input.MouseY = x, y
		input.firstMouse = false
	}
	input.MouseDeltaX = x - input.MouseX
	input.MouseDeltaY = y - input.MouseY
	input.MouseX, input.MouseY = x, y
}

// InputModule installs the Input resource. With Window set the keyboard and
// mouse are polled from GLFW every frame; otherwise some other system (a test
// or a replay) writes Input.
type InputModule struct {
	Window bool
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewInput())
	if mod.Window {
		app.UseSystem(
			System(glfwInputSystem).
				InStage(PreUpdate),
		)
	}
}
