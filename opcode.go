package vtcore

// OpTag discriminates the five escape-sequence families the parser can
// dispatch, mirroring the OPTAG_* values in
// original_source/src/term_opcodes.h. Go has no pressure to pack these into
// a 32-bit word the way the source's bitfield union did (spec §9 design
// note): Opcode is a plain tagged struct instead.
type OpTag uint8

const (
	OpNone OpTag = iota
	OpWrite
	OpEsc
	OpCsi
	OpOsc
	OpDcs
)

// Opcode is the parser's unit of output: one fully-collected escape
// sequence (or a single printable/control codepoint) ready for the
// executor to dispatch on.
type Opcode struct {
	Tag OpTag

	// Char holds the codepoint for OpWrite and for Exec (C0) dispatch.
	Char rune

	// Private is the CSI/DCS private marker byte ('<','=','>','?') or 0.
	Private byte
	// Inter is the single collected intermediate byte (0x20-0x2f) or 0.
	Inter byte
	// Final is the sequence's terminating byte.
	Final byte

	// Params holds CSI/DCS numeric parameters in order, split at ';'. A
	// sequence containing a ':' subparameter separator (e.g. SGR
	// "38:2:r:g:b") is routed to an ignore state by the FSM, so no parsed
	// Opcode carries colon subparameters.
	Params []int

	// ParamGroups is not filled in by Parser; it is nil on every Opcode the
	// parser emits.
	ParamGroups [][]int

	// Text carries the collected string body of an OSC, or the passthrough
	// body of a DCS, sequence.
	Text string
}

// escKey/csiKey index the mnemonic lookup tables below.
type escKey struct{ inter, final byte }
type csiKey struct{ private, inter, final byte }

// escNames, csiNames and dcsNames are grounded directly on the
// XTABLE_ESC_SEQS enumeration in original_source/src/term_opcodes.h: each
// entry there names an escape/CSI/DCS sequence by its marker/intermediate/
// final byte triple. The executor switches on these names rather than on
// Opcode's raw bytes.
var escNames = map[escKey]string{
	{0, 'D'}: "IND", {0, 'E'}: "NEL", {0, 'H'}: "HTS", {0, 'M'}: "RI",
	{0, 'N'}: "SS2", {0, 'O'}: "SS3", {0, 'V'}: "SPA", {0, 'W'}: "EPA",
	{0, 'Z'}: "DECID", {' ', 'F'}: "S7C1T", {' ', 'G'}: "S8C1T",
	{' ', 'L'}: "ANSI1", {' ', 'M'}: "ANSI2", {' ', 'N'}: "ANSI3",
	{'#', '3'}: "DECDHLT", {'#', '4'}: "DECDHLB", {'#', '5'}: "DECSWL",
	{'#', '6'}: "DECDWL", {'#', '8'}: "DECALN", {'%', '@'}: "CSDFL",
	{'%', 'G'}: "CSUTF8", {'(', 'C'}: "G0A", {')', 'C'}: "G1A",
	{'*', 'C'}: "G2A", {'+', 'C'}: "G3A", {'-', 'C'}: "G1B",
	{'.', 'C'}: "G2B", {'/', 'C'}: "G3B", {0, '6'}: "DECBI",
	{0, '7'}: "DECSC", {0, '8'}: "DECRC", {0, '9'}: "DECFI",
	{0, '='}: "DECKPAM", {0, 'F'}: "HPCLL", {0, 'c'}: "RIS",
	{0, 'l'}: "HPMEMLK", {0, 'm'}: "HPMEMULK", {0, 'n'}: "LS2",
	{0, 'o'}: "LS3", {0, '|'}: "LS3R", {0, '}'}: "LS2R", {0, '~'}: "LS1R",
}

var csiNames = map[csiKey]string{
	{0, 0, '@'}: "ICH", {0, 0, 'A'}: "CUU", {0, 0, 'B'}: "CUD",
	{0, 0, 'C'}: "CUF", {0, 0, 'D'}: "CUB", {0, 0, 'E'}: "CNL",
	{0, 0, 'F'}: "CPL", {0, 0, 'G'}: "CHA", {0, 0, 'H'}: "CUP",
	{0, 0, 'I'}: "CHT", {0, 0, 'J'}: "ED", {0, 0, 'K'}: "EL",
	{0, 0, 'L'}: "IL", {0, 0, 'M'}: "DL", {0, 0, 'P'}: "DCH",
	{0, 0, 'S'}: "SU", {0, 0, 'T'}: "SD", {0, 0, 'X'}: "ECH",
	{0, 0, 'Z'}: "CBT", {0, 0, '`'}: "HPA", {0, 0, 'a'}: "HPR",
	{0, 0, 'b'}: "REP", {0, 0, 'd'}: "VPA", {0, 0, 'e'}: "VPR",
	{0, 0, 'f'}: "HVP", {0, 0, 'g'}: "TBC", {0, 0, 'h'}: "SM",
	{0, 0, 'i'}: "MC", {0, 0, 'l'}: "RM", {0, 0, 'm'}: "SGR",
	{0, 0, 'n'}: "DSR", {0, 0, 'r'}: "DECSTBM", {0, 0, 'c'}: "DA",
	{0, 0, 's'}: "DECSLRM", {0, 0, 't'}: "XTWINOPS",
	{0, ' ', 'q'}: "DECSCUSR", {0, '!', 'p'}: "DECSTR",
	{0, '"', 'p'}: "DECSCL", {0, '$', 't'}: "DECCARA",
	{0, '$', 'v'}: "DECCRA", {0, '$', 'x'}: "DECFRA",
	{0, '$', 'z'}: "DECERA", {0, '\'', '}'}: "DECIC", {0, '\'', '~'}: "DECDC",
	{'>', 0, 'w'}: "DECEFR", {'>', 0, 'z'}: "DECELR",
	{'>', 0, '{'}: "DECSLE", {'>', 0, '|'}: "DECRQLP",
	{'?', 0, 'J'}: "DECSED", {'?', 0, 'K'}: "DECSEL",
	{'?', 0, 'h'}: "DECSET", {'?', 0, 'i'}: "DECMC",
	{'?', 0, 'l'}: "DECRST", {'?', 0, 'n'}: "DECDSR",
}

var dcsNames = map[csiKey]string{
	{0, 0, '|'}: "DECUDK", {0, '$', 'q'}: "DECRQSS",
	{0, '$', 't'}: "DECRSPS", {0, '+', 'Q'}: "XTGETXRES",
	{0, '+', 'p'}: "XTSETTCAP", {0, '+', 'q'}: "XTGETTCAP",
	{0, 0, 'q'}: "DECSIXEL", {0, 0, 'p'}: "DECREGIS",
}

// Name returns the sequence's mnemonic ("CUP", "SGR", "DECSET", ...), or ""
// for OpWrite/OpNone, for OpOsc (dispatched on its numeric parameter
// instead) and for unrecognized sequences (the executor ignores those, per
// spec §4.4 "unrecognized final byte: ignore silently").
func (o Opcode) Name() string {
	switch o.Tag {
	case OpEsc:
		return escNames[escKey{o.Inter, o.Final}]
	case OpCsi:
		return csiNames[csiKey{o.Private, o.Inter, o.Final}]
	case OpDcs:
		return dcsNames[csiKey{o.Private, o.Inter, o.Final}]
	default:
		return ""
	}
}

// Param returns the idx'th parameter, or def if absent; a present zero is
// returned as 0 (CSI/DEC parameters default to a nonzero value almost
// everywhere; the zero-means-default convention is handled by the executor
// per sequence, or by ParamOr).
func (o Opcode) Param(idx, def int) int {
	if idx < 0 || idx >= len(o.Params) {
		return def
	}
	return o.Params[idx]
}

// ParamOr is like Param but treats 0 (the CSI "omitted" encoding) as def too.
func (o Opcode) ParamOr(idx, def int) int {
	v := o.Param(idx, 0)
	if v == 0 {
		return def
	}
	return v
}
