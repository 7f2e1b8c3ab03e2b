package core

// Color is a terminal-agnostic RGB triple. The tui package maps it onto
// tcell colors at draw time.
type Color struct {
	R, G, B uint8
}

var (
	Black        = Color{0, 0, 0}
	White        = Color{255, 255, 255}
	Grey         = Color{136, 136, 136}
	Green        = Color{144, 238, 144}
	DarkGreen    = Color{46, 139, 87}
	Brown        = Color{150, 75, 0}
	DarkBrown    = Color{101, 67, 33}
	Blue         = Color{0, 0, 200}
	LightBlue    = Color{55, 198, 255}
	Beige        = Color{255, 178, 127}
	BrightRed    = Color{208, 28, 31}
	Gold         = Color{255, 215, 0}
	Yellow       = Color{255, 225, 53}
	YellowOrange = Color{255, 195, 77}
)
