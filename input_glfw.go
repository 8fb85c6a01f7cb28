package cottage

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyToGlfw = map[int]glfw.Key{
	KeyW:          glfw.KeyW,
	KeyA:          glfw.KeyA,
	KeyS:          glfw.KeyS,
	KeyD:          glfw.KeyD,
	KeyZ:          glfw.KeyZ,
	KeyO:          glfw.KeyO,
	KeyP:          glfw.KeyP,
	KeyK:          glfw.KeyK,
	KeyL:          glfw.KeyL,
	KeyN:          glfw.KeyN,
	KeyM:          glfw.KeyM,
	KeyEscape:     glfw.KeyEscape,
	KeyKPAdd:      glfw.KeyKPAdd,
	KeyKPSubtract: glfw.KeyKPSubtract,
	KeyKPMultiply: glfw.KeyKPMultiply,
	KeyKPDivide:   glfw.KeyKPDivide,
	KeyKP1:        glfw.KeyKP1,
	KeyKP2:        glfw.KeyKP2,
	KeyKP7:        glfw.KeyKP7,
	KeyKP8:        glfw.KeyKP8,
	KeyKP9:        glfw.KeyKP9,
}

func glfwInputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.SetKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}
	input.SetKey(MouseButtonLeft, s.windowGlfw.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press)

	input.SetMouse(s.windowGlfw.GetCursorPos())

	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		input.MouseDeltaX, input.MouseDeltaY = 0, 0
	}
}
