package component

// Input - снимок ввода за один тик.
type Input struct {
	Left, Right, Up, Down bool
	PauseToggled          bool
	DebugToggled          bool

	MouseX, MouseY int
	MousePressed   bool // левая кнопка нажата в этом тике
	MouseReleased  bool // левая кнопка отпущена в этом тике
}
