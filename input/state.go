package input

// InputState tracks the pointer button
type InputState uint8

const (
	StateIdle    InputState = iota // No button held
	StatePressed                   // Primary button held, moves become drags
)
