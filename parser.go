package vtcore

const maxParams = 32

// Parser drives the FSM table one byte at a time and accumulates an Opcode
// across possibly many bytes, grounded on
// original_source/src/term_parser.c's do_action dispatch. Unlike the
// source's reused 4-byte scratch buffer, each piece of accumulated state
// (UTF-8 continuation bytes, CSI/DCS params, the collected OSC/DCS text
// body) gets its own field — clearer for a reader, same behavior.
type Parser struct {
	state State

	utf8    [4]byte // filled high-byte-first, like ctx->chars in the source
	private byte
	inter   byte

	params   []int
	overflow bool

	// text accumulates OSC string bodies and DCS passthrough bodies.
	text []byte

	// dcsFinal remembers the final byte that entered DcsPass, since the
	// FSM table's Dcs1/Dcs2/DcsParam -> DcsPass transition carries no
	// dispatch action of its own.
	dcsFinal byte
	inDcs    bool

	// oscParamDone marks that the leading numeric OSC parameter has been
	// fully consumed and subsequent bytes belong to the string body.
	oscParamDone bool
}

// NewParser returns a parser positioned at StateGround.
func NewParser() *Parser {
	return &Parser{params: make([]int, 1, 8)}
}

// Parse feeds data through the state machine and returns every Opcode
// completed during the call, in order. Partial sequences straddling two
// Parse calls are carried in the parser's internal state, so output from a
// split write is identical to output from one contiguous write.
func (p *Parser) Parse(data []byte) []Opcode {
	var out []Opcode

	for _, c := range data {
		tr := fsmNext(p.state, c)
		if op, ok := p.dispatch(tr, c); ok {
			out = append(out, op)
		}
		p.state = tr.state
	}

	return out
}

func (p *Parser) clear() {
	p.utf8 = [4]byte{}
	p.private = 0
	p.inter = 0
	p.params = p.params[:1]
	p.params[0] = 0
	p.overflow = false
	p.text = p.text[:0]
}

func (p *Parser) addDigit(c byte) {
	if p.overflow {
		return
	}
	digit := int(c - '0')
	cur := p.params[len(p.params)-1]
	if cur > (1<<31-1-digit)/10 {
		p.overflow = true
		p.params[len(p.params)-1] = 0
		return
	}
	p.params[len(p.params)-1] = cur*10 + digit
}

func (p *Parser) nextParam() {
	if len(p.params) >= maxParams {
		return
	}
	p.params = append(p.params, 0)
	p.overflow = false
}

// dispatch performs the action named by tr (plus the DCS-entry bookkeeping
// described on Parser.dcsFinal) and returns a completed Opcode, if any.
func (p *Parser) dispatch(tr transition, c byte) (Opcode, bool) {
	if p.enteringDcsPass(tr) {
		p.dcsFinal = c
		p.inDcs = true
	}

	switch tr.action {
	case ActionPrint, ActionExec:
		return Opcode{Tag: OpWrite, Char: rune(c)}, true

	case ActionUtf8GetB4:
		p.utf8[0] = c
	case ActionUtf8GetB3:
		p.utf8[1] = c
	case ActionUtf8GetB2:
		p.utf8[2] = c
	case ActionPrintWide:
		p.utf8[3] = c
		r := decodeUTF8Accum(p.utf8)
		p.utf8 = [4]byte{}
		return Opcode{Tag: OpWrite, Char: r}, true
	case ActionUtf8Error:
		p.utf8 = [4]byte{}

	case ActionPut:
		p.text = append(p.text, c)

	case ActionOscPut:
		// The leading numeric parameter (command number) is consumed here;
		// everything after its terminating ';' is the string body.
		if !p.oscParamDone {
			if c >= '0' && c <= '9' {
				p.addDigit(c)
				break
			}
			p.oscParamDone = true
			if c != ';' {
				p.text = append(p.text, c)
			}
			break
		}
		p.text = append(p.text, c)

	case ActionOscEnd:
		op := Opcode{Tag: OpOsc, Params: append([]int(nil), p.params...), Text: string(p.text)}
		p.clear()
		p.oscParamDone = false
		return op, true

	case ActionGetPrivMarker:
		p.private = c
	case ActionGetIntermediate:
		p.inter = c

	case ActionParam:
		if c == ';' {
			p.nextParam()
		} else {
			p.addDigit(c)
		}

	case ActionClear:
		// ESC inside a DCS body begins the 7-bit string terminator (ESC \),
		// so the DCS is complete here.
		if p.inDcs && p.state == StateDcsPass {
			op := Opcode{Tag: OpDcs, Private: p.private, Inter: p.inter, Final: p.dcsFinal,
				Params: append([]int(nil), p.params...), Text: string(p.text)}
			p.clear()
			p.oscParamDone = false
			p.inDcs = false
			p.dcsFinal = 0
			return op, true
		}
		p.clear()
		p.oscParamDone = false

	case ActionEscDispatch:
		op := Opcode{Tag: OpEsc, Inter: p.inter, Final: c}
		p.clear()
		return op, true

	case ActionCsiDispatch:
		op := Opcode{Tag: OpCsi, Private: p.private, Inter: p.inter, Final: c,
			Params: append([]int(nil), p.params...)}
		p.clear()
		return op, true
	}

	if p.inDcs && tr.state == StateGround && p.state == StateDcsPass {
		op := Opcode{Tag: OpDcs, Private: p.private, Inter: p.inter, Final: p.dcsFinal,
			Params: append([]int(nil), p.params...), Text: string(p.text)}
		p.clear()
		p.inDcs = false
		p.dcsFinal = 0
		return op, true
	}

	return Opcode{}, false
}

func (p *Parser) enteringDcsPass(tr transition) bool {
	switch p.state {
	case StateDcs1, StateDcs2, StateDcsParam:
		return tr.state == StateDcsPass
	default:
		return false
	}
}

// decodeUTF8Accum reassembles a codepoint from the continuation bytes
// gathered into [0]=byte4 (leading), ... [3]=trailing, matching the
// TO_UCS4 bit layout in term_parser.c's ActionPrintWide case. Single-byte
// ASCII never reaches here; it is handled directly by ActionPrint.
func decodeUTF8Accum(b [4]byte) rune {
	switch {
	case b[0] != 0: // 4-byte sequence
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3f)<<12 | rune(b[2]&0x3f)<<6 | rune(b[3]&0x3f)
	case b[1] != 0: // 3-byte sequence
		return rune(b[1]&0x0f)<<12 | rune(b[2]&0x3f)<<6 | rune(b[3]&0x3f)
	default: // 2-byte sequence
		return rune(b[2]&0x1f)<<6 | rune(b[3]&0x3f)
	}
}
