package preset

import (
	"github.com/iiroan/better-terminal/internal/settings"
)

type scheme struct {
	foreground settings.Color
	background settings.Color
	palette    [settings.PaletteSize]settings.Color
}

func rgb(r, g, b uint8) settings.Color {
	return settings.RGBAColor(r, g, b, 1.0)
}

var schemes = map[ID]scheme{
	GruvboxDark: {
		background: rgb(40, 40, 40),
		foreground: rgb(235, 219, 178),
		palette: [settings.PaletteSize]settings.Color{
			rgb(40, 40, 40),
			rgb(204, 36, 29),
			rgb(152, 151, 26),
			rgb(215, 153, 33),
			rgb(69, 133, 136),
			rgb(177, 98, 134),
			rgb(104, 157, 106),
			rgb(168, 153, 132),
			rgb(146, 131, 116),
			rgb(251, 73, 52),
			rgb(184, 187, 38),
			rgb(250, 189, 47),
			rgb(131, 165, 152),
			rgb(211, 134, 155),
			rgb(142, 192, 124),
			rgb(235, 219, 178),
		},
	},
	CatppuccinMocha: {
		background: rgb(30, 30, 46),
		foreground: rgb(205, 214, 244),
		palette: [settings.PaletteSize]settings.Color{
			rgb(73, 77, 100),
			rgb(243, 139, 168),
			rgb(166, 227, 161),
			rgb(249, 226, 175),
			rgb(137, 180, 250),
			rgb(245, 194, 231),
			rgb(148, 226, 213),
			rgb(186, 194, 222),
			rgb(88, 91, 112),
			rgb(243, 139, 168),
			rgb(166, 227, 161),
			rgb(249, 226, 175),
			rgb(137, 180, 250),
			rgb(245, 194, 231),
			rgb(148, 226, 213),
			rgb(166, 173, 200),
		},
	},
	Monokai: {
		background: rgb(39, 40, 34),
		foreground: rgb(248, 248, 242),
		palette: [settings.PaletteSize]settings.Color{
			rgb(39, 40, 34),
			rgb(249, 38, 114),
			rgb(166, 226, 46),
			rgb(244, 191, 117),
			rgb(102, 217, 239),
			rgb(174, 129, 255),
			rgb(161, 239, 228),
			rgb(248, 248, 242),
			rgb(117, 113, 94),
			rgb(249, 38, 114),
			rgb(166, 226, 46),
			rgb(244, 191, 117),
			rgb(102, 217, 239),
			rgb(174, 129, 255),
			rgb(161, 239, 228),
			rgb(249, 248, 245),
		},
	},
	// Nord0 background, Nord4 foreground.
	Nord: {
		background: rgb(46, 52, 64),
		foreground: rgb(216, 222, 233),
		palette: [settings.PaletteSize]settings.Color{
			rgb(59, 66, 82),
			rgb(191, 97, 106),
			rgb(163, 190, 140),
			rgb(235, 203, 139),
			rgb(129, 161, 193),
			rgb(180, 142, 173),
			rgb(136, 192, 208),
			rgb(229, 233, 240),
			rgb(76, 86, 106),
			rgb(191, 97, 106),
			rgb(163, 190, 140),
			rgb(235, 203, 139),
			rgb(129, 161, 193),
			rgb(180, 142, 173),
			rgb(143, 188, 187),
			rgb(236, 239, 244),
		},
	},
	TokyoNight: {
		background: rgb(26, 27, 38),
		foreground: rgb(169, 177, 214),
		palette: [settings.PaletteSize]settings.Color{
			rgb(31, 32, 46),
			rgb(247, 118, 142),
			rgb(158, 206, 106),
			rgb(224, 175, 104),
			rgb(122, 162, 247),
			rgb(187, 154, 247),
			rgb(130, 204, 227),
			rgb(192, 198, 222),
			rgb(68, 73, 92),
			rgb(247, 118, 142),
			rgb(158, 206, 106),
			rgb(224, 175, 104),
			rgb(122, 162, 247),
			rgb(187, 154, 247),
			rgb(130, 204, 227),
			rgb(169, 177, 214),
		},
	},
}
