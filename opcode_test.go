package vtcore

import "testing"

func TestOpcodeNameLookup(t *testing.T) {
	op := Opcode{Tag: OpCsi, Final: 'H'}
	if op.Name() != "CUP" {
		t.Fatalf("got %q, want CUP", op.Name())
	}
}

func TestOpcodeNameUnrecognized(t *testing.T) {
	op := Opcode{Tag: OpCsi, Final: 0x7e, Inter: '~'}
	if op.Name() != "" {
		t.Fatalf("got %q, want empty for unrecognized sequence", op.Name())
	}
}

func TestOpcodeParamDefaults(t *testing.T) {
	op := Opcode{Params: []int{0, 5}}
	if op.ParamOr(0, 1) != 1 {
		t.Fatalf("ParamOr(0,1) = %d, want 1 (0 means omitted)", op.ParamOr(0, 1))
	}
	if op.ParamOr(1, 1) != 5 {
		t.Fatalf("ParamOr(1,1) = %d, want 5", op.ParamOr(1, 1))
	}
	if op.Param(5, 42) != 42 {
		t.Fatalf("Param out of range = %d, want default 42", op.Param(5, 42))
	}
}
