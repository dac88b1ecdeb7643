package vtcore

import "testing"

func TestFSMGroundPrint(t *testing.T) {
	tr := fsmNext(StateGround, 'A')
	if tr.state != StateGround || tr.action != ActionPrint {
		t.Fatalf("got %+v, want Ground/Print", tr)
	}
}

func TestFSMGroundControl(t *testing.T) {
	tr := fsmNext(StateGround, 0x0a)
	if tr.state != StateGround || tr.action != ActionExec {
		t.Fatalf("got %+v, want Ground/Exec", tr)
	}
}

func TestFSMEscBracketEntersCsi(t *testing.T) {
	tr := fsmNext(StateEsc1, '[')
	if tr.state != StateCsi1 {
		t.Fatalf("got %+v, want Csi1", tr)
	}
}

func TestFSMCsiDispatch(t *testing.T) {
	tr := fsmNext(StateCsiParam, 'm')
	if tr.state != StateGround || tr.action != ActionCsiDispatch {
		t.Fatalf("got %+v, want Ground/CsiDispatch", tr)
	}
}

func TestFSMCsiParamDigitsSelfLoop(t *testing.T) {
	tr := fsmNext(StateCsiParam, '3')
	if tr.state != StateCsiParam || tr.action != ActionParam {
		t.Fatalf("got %+v, want CsiParam/Param (self loop)", tr)
	}
}

func TestFSMEscOverridesAnywhere(t *testing.T) {
	for _, s := range []State{StateGround, StateCsiParam, StateOsc} {
		tr := fsmNext(s, 0x1b)
		if tr.state != StateEsc1 || tr.action != ActionClear {
			t.Fatalf("state %v: got %+v, want Esc1/Clear", s, tr)
		}
	}
}

func TestFSMEscExcludedInUtf8Continuation(t *testing.T) {
	tr := fsmNext(StateUtf8B1, 0x1b)
	if tr.state == StateEsc1 {
		t.Fatal("ESC must not interrupt UTF-8 continuation states")
	}
}

func TestFSMCanSubResetToGround(t *testing.T) {
	tr := fsmNext(StateCsiParam, 0x18)
	if tr.state != StateGround || tr.action != ActionExec {
		t.Fatalf("got %+v, want Ground/Exec", tr)
	}
}

func TestFSMUtf8LeadByteSequence(t *testing.T) {
	tr := fsmNext(StateGround, 0xe2)
	if tr.state != StateUtf8B2 || tr.action != ActionUtf8GetB3 {
		t.Fatalf("got %+v, want Utf8B2/Utf8GetB3", tr)
	}

	tr = fsmNext(StateUtf8B2, 0x82)
	if tr.state != StateUtf8B1 || tr.action != ActionUtf8GetB2 {
		t.Fatalf("got %+v, want Utf8B1/Utf8GetB2", tr)
	}

	tr = fsmNext(StateUtf8B1, 0xac)
	if tr.state != StateGround || tr.action != ActionPrintWide {
		t.Fatalf("got %+v, want Ground/PrintWide", tr)
	}
}

func TestFSMOscTerminatesOnBel(t *testing.T) {
	tr := fsmNext(StateOsc, 0x07)
	if tr.state != StateGround || tr.action != ActionOscEnd {
		t.Fatalf("got %+v, want Ground/OscEnd", tr)
	}
}

func TestFSMDcsPassthroughTerminatesOnST(t *testing.T) {
	tr := fsmNext(StateDcsPass, 0x9c)
	if tr.state != StateGround {
		t.Fatalf("got %+v, want Ground", tr)
	}
}
