package mandel

import "image/color"

// White is used for points inside the set and for counts outside the palette.
var White = color.RGBA{255, 255, 255, 255}

// palette maps escape counts 1..63 to a dark red to yellow gradient.
// Index 0 is unused and reads as white through MapToColor.
var palette = [MaxIter]color.RGBA{
	0:  {255, 255, 255, 255},
	1:  {163, 0, 0, 255},
	2:  {163, 3, 0, 255},
	3:  {168, 6, 0, 255},
	4:  {168, 8, 0, 255},
	5:  {173, 12, 0, 255},
	6:  {173, 14, 0, 255},
	7:  {179, 18, 0, 255},
	8:  {179, 21, 0, 255},
	9:  {184, 24, 0, 255},
	10: {184, 28, 0, 255},
	11: {189, 31, 0, 255},
	12: {189, 35, 0, 255},
	13: {194, 39, 0, 255},
	14: {194, 42, 0, 255},
	15: {199, 46, 0, 255},
	16: {199, 50, 0, 255},
	17: {204, 54, 0, 255},
	18: {204, 58, 0, 255},
	19: {209, 63, 0, 255},
	20: {209, 66, 0, 255},
	21: {214, 71, 0, 255},
	22: {214, 75, 0, 255},
	23: {219, 80, 0, 255},
	24: {219, 84, 0, 255},
	25: {224, 90, 0, 255},
	26: {224, 94, 0, 255},
	27: {230, 99, 0, 255},
	28: {230, 103, 0, 255},
	29: {235, 109, 0, 255},
	30: {235, 113, 0, 255},
	31: {240, 120, 0, 255},
	32: {240, 124, 0, 255},
	33: {245, 131, 0, 255},
	34: {245, 135, 0, 255},
	35: {250, 142, 0, 255},
	36: {250, 146, 0, 255},
	37: {255, 153, 0, 255},
	38: {255, 157, 0, 255},
	39: {255, 163, 5, 255},
	40: {255, 168, 5, 255},
	41: {255, 173, 10, 255},
	42: {255, 177, 10, 255},
	43: {255, 183, 15, 255},
	44: {255, 187, 15, 255},
	45: {255, 192, 20, 255},
	46: {255, 196, 20, 255},
	47: {255, 201, 26, 255},
	48: {255, 205, 26, 255},
	49: {255, 210, 31, 255},
	50: {255, 214, 31, 255},
	51: {255, 218, 36, 255},
	52: {255, 222, 36, 255},
	53: {255, 226, 41, 255},
	54: {255, 230, 41, 255},
	55: {255, 234, 46, 255},
	56: {255, 238, 46, 255},
	57: {255, 241, 51, 255},
	58: {255, 245, 51, 255},
	59: {255, 248, 56, 255},
	60: {255, 252, 56, 255},
	61: {255, 255, 61, 255},
	62: {252, 255, 61, 255},
	63: {249, 255, 66, 255},
}

// MapToColor returns the display color for an escape count.
func MapToColor(n uint) color.RGBA {
	if n == 0 || n >= MaxIter {
		return White
	}
	return palette[n]
}
