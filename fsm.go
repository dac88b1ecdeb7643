package vtcore

// State identifies one of the parser's 17 states (spec §4.2).
type State uint8

const (
	StateGround State = iota
	StateEsc1
	StateEsc2
	StateCsi1
	StateCsi2
	StateCsiParam
	StateCsiIgnore
	StateOsc
	StateDcs1
	StateDcs2
	StateDcsParam
	StateDcsIgnore
	StateDcsPass
	StateSosPmApc
	StateUtf8B1
	StateUtf8B2
	StateUtf8B3
	numStates
)

// Action identifies the side effect the parser performs for one byte, in
// addition to the state transition itself.
type Action uint8

const (
	ActionNone Action = iota
	ActionPrint
	ActionPrintWide
	ActionExec
	ActionClear
	ActionGetIntermediate
	ActionGetPrivMarker
	ActionParam
	ActionEscDispatch
	ActionCsiDispatch
	ActionPut
	ActionOscPut
	ActionOscEnd
	ActionUtf8GetB2
	ActionUtf8GetB3
	ActionUtf8GetB4
	ActionUtf8Error
)

// transition is the (next state, action) pair the FSM table stores per
// (byte, state).
type transition struct {
	state  State
	action Action
}

// tableRange is one entry of a state's ordered range list: the first range
// whose [beg,end] contains the input byte wins. state of -1 (selfState)
// means "no change" and is resolved to the enclosing state at build time,
// matching the self-reference convention in
// original_source/src/term_fsm.c.
type tableRange struct {
	beg, end byte
	state    int // -1 means "stay in the current state"
	action   Action
}

const selfState = -1

// fsmTable is the full 256×numStates transition table, generated once at
// package init from the range descriptions below (spec §4.2, §9 "FSM table
// ... built once from ordered per-state range lists").
var fsmTable [256][numStates]transition

// fsmDescs mirrors the per-state range lists of
// original_source/src/term_fsm.c: UTF-8 continuation handling in Ground,
// the Esc/Csi/Dcs intermediate-collection chain, CSI/DCS parameter and
// private-marker bytes, OSC string collection terminated by BEL, and DCS
// passthrough terminated by ST (0x9c). One addition beyond the source: an
// explicit ESC 'P' -> Dcs1 range, since the source's Esc1 table has no
// transition into Dcs1 at all (DCS would be unreachable without it).
var fsmDescs = [numStates][]tableRange{
	StateGround: {
		{0xf0, 0xf7, int(StateUtf8B3), ActionUtf8GetB4},
		{0xe0, 0xef, int(StateUtf8B2), ActionUtf8GetB3},
		{0xc0, 0xdf, int(StateUtf8B1), ActionUtf8GetB2},
		{0x20, 0x7f, selfState, ActionPrint},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionUtf8Error},
	},
	StateUtf8B1: {
		{0x80, 0xff, int(StateGround), ActionPrintWide},
		{0x00, 0x3f, int(StateGround), ActionPrintWide},
		{0x00, 0xff, int(StateGround), ActionUtf8Error},
	},
	StateUtf8B2: {
		{0x80, 0xff, int(StateUtf8B1), ActionUtf8GetB2},
		{0x00, 0x3f, int(StateUtf8B1), ActionUtf8GetB2},
		{0x00, 0xff, int(StateGround), ActionUtf8Error},
	},
	StateUtf8B3: {
		{0x80, 0xff, int(StateUtf8B2), ActionUtf8GetB3},
		{0x00, 0x3f, int(StateUtf8B2), ActionUtf8GetB3},
		{0x00, 0xff, int(StateGround), ActionUtf8Error},
	},
	StateEsc1: {
		{']', ']', int(StateOsc), ActionNone},
		{'[', '[', int(StateCsi1), ActionNone},
		{'P', 'P', int(StateDcs1), ActionNone},
		{'0', 0x7e, int(StateGround), ActionEscDispatch},
		{' ', '/', int(StateEsc2), ActionGetIntermediate},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateEsc2: {
		{'0', 0x7e, int(StateGround), ActionEscDispatch},
		{' ', '/', int(StateGround), ActionNone},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateCsi1: {
		{'@', 0x7e, int(StateGround), ActionCsiDispatch},
		{'<', '?', int(StateCsiParam), ActionGetPrivMarker},
		{':', ':', int(StateCsiIgnore), ActionNone},
		{'0', ';', int(StateCsiParam), ActionParam},
		{' ', '/', int(StateCsi2), ActionGetIntermediate},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateCsi2: {
		{'@', 0x7e, int(StateGround), ActionCsiDispatch},
		{' ', '?', int(StateCsiIgnore), ActionNone},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateCsiIgnore: {
		{'@', 0x7e, int(StateGround), ActionNone},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateCsiParam: {
		{'@', 0x7e, int(StateGround), ActionCsiDispatch},
		{'<', '?', int(StateCsiIgnore), ActionNone},
		{':', ':', int(StateCsiIgnore), ActionNone},
		{'0', ';', selfState, ActionParam},
		{' ', '/', int(StateCsi2), ActionGetIntermediate},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateDcs1: {
		{'@', 0x7e, int(StateDcsPass), ActionNone},
		{'<', '?', int(StateDcsParam), ActionGetPrivMarker},
		{':', ':', int(StateDcsIgnore), ActionNone},
		{'0', ';', int(StateDcsParam), ActionParam},
		{' ', '/', int(StateDcs2), ActionGetIntermediate},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateDcs2: {
		{'@', 0x7e, int(StateDcsPass), ActionNone},
		{' ', '?', int(StateDcsIgnore), ActionNone},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateDcsIgnore: {
		{0x9c, 0x9c, int(StateGround), ActionNone},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateDcsParam: {
		{'@', 0x7e, int(StateDcsPass), ActionNone},
		{'<', '?', int(StateDcsIgnore), ActionNone},
		{':', ':', int(StateDcsIgnore), ActionNone},
		{'0', ';', selfState, ActionParam},
		{' ', '/', int(StateDcs2), ActionGetIntermediate},
		{0x00, 0x1f, selfState, ActionExec},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateDcsPass: {
		{0x9c, 0x9c, int(StateGround), ActionNone},
		{0x00, 0x7e, selfState, ActionPut},
		{0x00, 0xff, selfState, ActionNone},
	},
	StateOsc: {
		{0x07, 0x07, int(StateGround), ActionOscEnd},
		{0x00, 0x1f, selfState, ActionNone},
		{0x00, 0xff, selfState, ActionOscPut},
	},
	StateSosPmApc: {
		{0x9c, 0x9c, int(StateGround), ActionNone},
		{0x00, 0xff, selfState, ActionNone},
	},
}

func findRange(c byte, ranges []tableRange) *tableRange {
	for i := range ranges {
		if c >= ranges[i].beg && c <= ranges[i].end {
			return &ranges[i]
		}
	}
	return nil
}

func init() {
	buildFSMTable()
}

// buildFSMTable fills fsmTable from fsmDescs, then overrides ESC/CAN/SUB as
// state-independent interrupts. The three UTF-8 continuation states are
// excluded from the ESC/CAN/SUB override: 0x18/0x1a/0x1b are valid UTF-8
// continuation bytes there and must fall through to the normal range table
// instead (spec §4.2 "ESC/CAN/SUB as state-independent overrides excluding
// UTF-8 continuation states"). Ground is not excluded.
func buildFSMTable() {
	for s := State(0); s < numStates; s++ {
		for c := 0; c < 256; c++ {
			state := s
			action := ActionNone

			if r := findRange(byte(c), fsmDescs[s]); r != nil {
				if r.state != selfState {
					state = State(r.state)
				}
				action = r.action
			}

			fsmTable[c][s] = transition{state: state, action: action}
		}
	}

	for s := State(0); s < numStates; s++ {
		switch s {
		case StateUtf8B1, StateUtf8B2, StateUtf8B3:
			continue
		default:
			fsmTable[0x1b][s] = transition{state: StateEsc1, action: ActionClear}
			fsmTable[0x1a][s] = transition{state: StateGround, action: ActionExec}
			fsmTable[0x18][s] = transition{state: StateGround, action: ActionExec}
		}
	}
}

// fsmNext looks up the transition for the current state and input byte.
func fsmNext(state State, c byte) transition {
	return fsmTable[c][state]
}
