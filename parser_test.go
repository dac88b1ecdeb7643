package vtcore

import "testing"

func TestParserPlainText(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("hi"))
	if len(ops) != 2 || ops[0].Char != 'h' || ops[1].Char != 'i' {
		t.Fatalf("got %+v", ops)
	}
}

func TestParserCSIWithParams(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1b[3;4H"))
	if len(ops) != 1 {
		t.Fatalf("expected 1 opcode, got %d: %+v", len(ops), ops)
	}
	op := ops[0]
	if op.Tag != OpCsi || op.Name() != "CUP" {
		t.Fatalf("got tag=%v name=%q, want CSI/CUP", op.Tag, op.Name())
	}
	if len(op.Params) != 2 || op.Params[0] != 3 || op.Params[1] != 4 {
		t.Fatalf("params = %v, want [3 4]", op.Params)
	}
}

func TestParserCSIPrivateMarker(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1b[?25h"))
	if len(ops) != 1 || ops[0].Name() != "DECSET" {
		t.Fatalf("got %+v, want DECSET", ops)
	}
	if ops[0].Private != '?' {
		t.Fatalf("private = %q, want '?'", ops[0].Private)
	}
}

func TestParserSplitAcrossCalls(t *testing.T) {
	p := NewParser()
	ops1 := p.Parse([]byte("\x1b["))
	ops2 := p.Parse([]byte("31m"))
	if len(ops1) != 0 {
		t.Fatalf("expected no opcode mid-sequence, got %+v", ops1)
	}
	if len(ops2) != 1 || ops2[0].Name() != "SGR" {
		t.Fatalf("got %+v, want SGR", ops2)
	}
}

func TestParserEscDispatch(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1bD"))
	if len(ops) != 1 || ops[0].Name() != "IND" {
		t.Fatalf("got %+v, want IND", ops)
	}
}

func TestParserOSCTitle(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1b]0;hello\x07"))
	if len(ops) != 1 {
		t.Fatalf("expected 1 opcode, got %+v", ops)
	}
	op := ops[0]
	if op.Tag != OpOsc || op.Param(0, -1) != 0 || op.Text != "hello" {
		t.Fatalf("got %+v", op)
	}
}

func TestParserDCSPassthrough(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1bP$qq\x9c"))
	if len(ops) != 1 {
		t.Fatalf("expected 1 opcode, got %+v", ops)
	}
	op := ops[0]
	if op.Tag != OpDcs || op.Name() != "DECRQSS" || op.Text != "q" {
		t.Fatalf("got %+v", op)
	}
}

func TestParserUTF8ThreeByte(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\xe2\x82\xac")) // euro sign
	if len(ops) != 1 || ops[0].Char != '€' {
		t.Fatalf("got %+v, want euro sign", ops)
	}
}

func TestParserCANResetsMidSequence(t *testing.T) {
	p := NewParser()
	ops := p.Parse([]byte("\x1b[31\x18A"))
	if len(ops) != 2 || ops[1].Tag != OpWrite || ops[1].Char != 'A' {
		t.Fatalf("got %+v, want CAN's Write(0x18) then Write('A')", ops)
	}
}
