package terminal

// xterm 256-color palette indices used by the default palette
//
// Color cube: index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// Grayscale ramp: indices 232-255, level = 8 + 10*(index-232)
const (
	P256Green     uint8 = 46  // (0,5,0)
	P256LightBlue uint8 = 81  // (1,4,5)
	P256Red       uint8 = 196 // (5,0,0)
	P256Gold      uint8 = 220 // (5,4,0)
	P256Amber     uint8 = 214 // (5,3,0)
	P256White     uint8 = 231 // (5,5,5)
)
