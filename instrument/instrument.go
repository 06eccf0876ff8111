package instrument

// Instrument is a General MIDI program.
type Instrument struct {
	Name    string
	Program uint8
}

type Category struct {
	Name        string
	Instruments []Instrument
}

// DefaultProgram is used for names that are not in the table.
const DefaultProgram = 0

var categories = []Category{
	{
		Name: "Piano",
		Instruments: []Instrument{
			{"Acoustic Grand Piano", 0},
			{"Bright Acoustic Piano", 1},
			{"Electric Grand Piano", 2},
			{"Honky Tonk Piano", 3},
			{"Electric Piano 1", 4},
			{"Electric Piano 2", 5},
			{"Harpsichord", 6},
			{"Clavinet", 7},
		},
	},
	{
		Name: "Chromatic Percussion",
		Instruments: []Instrument{
			{"Celesta", 8},
			{"Glockenspiel", 9},
			{"Music Box", 10},
			{"Vibraphone", 11},
			{"Marimba", 12},
			{"Xylophone", 13},
			{"Tubular Bells", 14},
			{"Dulcimer", 15},
		},
	},
	{
		Name: "Organ",
		Instruments: []Instrument{
			{"Drawbar Organ", 16},
			{"Percussive Organ", 17},
			{"Rock Organ", 18},
			{"Church Organ", 19},
			{"Reed Organ", 20},
			{"Accordion", 21},
			{"Harmonica", 22},
			{"Tango Accordion", 23},
		},
	},
	{
		Name: "Guitar",
		Instruments: []Instrument{
			{"Acoustic Guitar Nylon", 24},
			{"Acoustic Guitar Steel", 25},
			{"Electric Guitar Jazz", 26},
			{"Electric Guitar Clean", 27},
			{"Electric Guitar Muted", 28},
			{"Overdriven Guitar", 29},
			{"Distortion Guitar", 30},
			{"Guitar Harmonics", 31},
		},
	},
	{
		Name: "Bass",
		Instruments: []Instrument{
			{"Acoustic Bass", 32},
			{"Electric Bass Finger", 33},
			{"Electric Bass Pick", 34},
			{"Fretless Bass", 35},
			{"Slap Bass 1", 36},
			{"Slap Bass 2", 37},
			{"Synth Bass 1", 38},
			{"Synth Bass 2", 39},
		},
	},
	{
		Name: "Strings",
		Instruments: []Instrument{
			{"Violin", 40},
			{"Viola", 41},
			{"Cello", 42},
			{"Contrabass", 43},
			{"Tremolo Strings", 44},
			{"Pizzicato Strings", 45},
			{"Orchestral Harp", 46},
			{"Timpani", 47},
		},
	},
	{
		Name: "Ensemble",
		Instruments: []Instrument{
			{"String Ensemble 1", 48},
			{"String Ensemble 2", 49},
			{"Synth Strings 1", 50},
			{"Synth Strings 2", 51},
			{"Choir Aahs", 52},
			{"Voice Oohs", 53},
			{"Synth Choir", 54},
			{"Orchestra Hit", 55},
		},
	},
	{
		Name: "Brass",
		Instruments: []Instrument{
			{"Trumpet", 56},
			{"Trombone", 57},
			{"Tuba", 58},
			{"Muted Trumpet", 59},
			{"French Horn", 60},
			{"Brass Section", 61},
			{"Synth Brass 1", 62},
			{"Synth Brass 2", 63},
		},
	},
	{
		Name: "Reed",
		Instruments: []Instrument{
			{"Soprano Sax", 64},
			{"Alto Sax", 65},
			{"Tenor Sax", 66},
			{"Baritone Sax", 67},
			{"Oboe", 68},
			{"English Horn", 69},
			{"Bassoon", 70},
			{"Clarinet", 71},
		},
	},
	{
		Name: "Pipe",
		Instruments: []Instrument{
			{"Piccolo", 72},
			{"Flute", 73},
			{"Recorder", 74},
			{"Pan Flute", 75},
			{"Blown Bottle", 76},
			{"Shakuhachi", 77},
			{"Whistle", 78},
			{"Ocarina", 79},
		},
	},
	{
		Name: "Synth Lead",
		Instruments: []Instrument{
			{"Lead 1 Square", 80},
			{"Lead 2 Sawtooth", 81},
			{"Lead 3 Calliope", 82},
			{"Lead 4 Chiff", 83},
			{"Lead 5 Charang", 84},
			{"Lead 6 Voice", 85},
			{"Lead 7 Fifths", 86},
			{"Lead 8 Bass And Lead", 87},
		},
	},
	{
		Name: "Synth Pad",
		Instruments: []Instrument{
			{"Pad 1 New Age", 88},
			{"Pad 2 Warm", 89},
			{"Pad 3 Polysynth", 90},
			{"Pad 4 Choir", 91},
			{"Pad 5 Bowed", 92},
			{"Pad 6 Metallic", 93},
			{"Pad 7 Halo", 94},
			{"Pad 8 Sweep", 95},
		},
	},
	{
		Name: "Synth Effects",
		Instruments: []Instrument{
			{"FX 1 Rain", 96},
			{"FX 2 Soundtrack", 97},
			{"FX 3 Crystal", 98},
			{"FX 4 Atmosphere", 99},
			{"FX 5 Brightness", 100},
			{"FX 6 Goblins", 101},
			{"FX 7 Echoes", 102},
			{"FX 8 Sci Fi", 103},
		},
	},
	{
		Name: "Ethnic",
		Instruments: []Instrument{
			{"Sitar", 104},
			{"Banjo", 105},
			{"Shamisen", 106},
			{"Koto", 107},
			{"Kalimba", 108},
			{"Bag Pipe", 109},
			{"Fiddle", 110},
			{"Shanai", 111},
		},
	},
	{
		Name: "Percussive",
		Instruments: []Instrument{
			{"Tinkle Bell", 112},
			{"Agogo", 113},
			{"Steel Drums", 114},
			{"Woodblock", 115},
			{"Taiko Drum", 116},
			{"Melodic Tom", 117},
			{"Synth Drum", 118},
			{"Reverse Cymbal", 119},
		},
	},
	{
		Name: "Sound Effects",
		Instruments: []Instrument{
			{"Guitar Fret Noise", 120},
			{"Breath Noise", 121},
			{"Seashore", 122},
			{"Bird Tweet", 123},
			{"Telephone Ring", 124},
			{"Helicopter", 125},
			{"Applause", 126},
			{"Gunshot", 127},
		},
	},
}

var byName = buildIndex()

func buildIndex() map[string]uint8 {
	res := make(map[string]uint8)
	for _, c := range categories {
		for _, inst := range c.Instruments {
			res[inst.Name] = inst.Program
		}
	}
	return res
}

// Lookup resolves a display name to its program number. Unknown names fall
// back to DefaultProgram and ok is false.
func Lookup(name string) (program uint8, ok bool) {
	program, ok = byName[name]
	if !ok {
		return DefaultProgram, false
	}
	return program, true
}

func Categories() []Category {
	res := make([]Category, len(categories))
	for i, c := range categories {
		res[i] = Category{Name: c.Name, Instruments: append([]Instrument(nil), c.Instruments...)}
	}
	return res
}
