package modes

// Builtin holds the melodies that ship with the keyboard, as semitone
// offsets within the octave.
var Builtin = map[string][]int{
	"alle_meine_entchen": {
		0, 2, 4, 5, 7, 7,
		9, 9, 9, 9, 7,
		9, 9, 9, 9, 7,
		5, 5, 5, 5, 4, 4,
		2, 2, 2, 2, 0,
	},
	"twinkle_twinkle": {
		0, 0, 7, 7, 9, 9, 7,
		5, 5, 4, 4, 2, 2, 0,
	},
	"zeiss": {
		5, 5, 7, 5, 5, 5, 5, 4, 2, 0,
	},
}
