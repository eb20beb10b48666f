package dispatch

// X11 keysym codes the dispatcher understands. Letters and main-row digits
// share their ASCII values.
const (
	KeyUpperA = 65
	KeyUpperZ = 90
	KeyLowerA = 97
	KeyLowerZ = 122
	Key0      = 48
	Key9      = 57

	KeyBackSpace  = 0xff08 // 65288
	KeyKPMultiply = 0xffaa // 65450
	KeyKPAdd      = 0xffab // 65451
	KeyKPSubtract = 0xffad // 65453
	KeyKPDecimal  = 0xffae // 65454
	KeyKP0        = 0xffb0 // 65456
	// 65466 (0xffba) is not a keypad digit and is left unhandled.
	KeyKP9        = 0xffb9 // 65465
	KeySuperL     = 0xffeb // 65515
)

const (
	LeftArrow    = "←"
	HollowSquare = "□"
)
