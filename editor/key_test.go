package editor

import (
	"bytes"
	"testing"
)

func decodeOne(t *testing.T, input string) Key {
	t.Helper()
	k, err := ReadKey(bytes.NewReader([]byte(input)))
	if err != nil {
		t.Fatalf("ReadKey(%q): %v", input, err)
	}
	return k
}

func TestReadKey_EscapeSequences(t *testing.T) {
	cases := []struct {
		input string
		want  Key
	}{
		{input: "\x1b[A", want: KeyArrowUp},
		{input: "\x1b[B", want: KeyArrowDown},
		{input: "\x1b[C", want: KeyArrowRight},
		{input: "\x1b[D", want: KeyArrowLeft},
		{input: "\x1b[H", want: KeyHome},
		{input: "\x1b[F", want: KeyEnd},
		{input: "\x1b[1~", want: KeyHome},
		{input: "\x1b[7~", want: KeyHome},
		{input: "\x1b[4~", want: KeyEnd},
		{input: "\x1b[8~", want: KeyEnd},
		{input: "\x1b[3~", want: KeyDelete},
		{input: "\x1b[5~", want: KeyPageUp},
		{input: "\x1b[6~", want: KeyPageDown},
		{input: "\x1bOH", want: KeyHome},
		{input: "\x1bOF", want: KeyEnd},
	}

	for _, tc := range cases {
		if got := decodeOne(t, tc.input); got != tc.want {
			t.Fatalf("ReadKey(%q)=%d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestReadKey_PlainBytes(t *testing.T) {
	if got := decodeOne(t, "q"); got != Key('q') {
		t.Fatalf("ReadKey(q)=%d, want %d", got, Key('q'))
	}
	if got := decodeOne(t, "\x11"); got != Ctrl('q') {
		t.Fatalf("ReadKey(0x11)=%d, want Ctrl-Q=%d", got, Ctrl('q'))
	}
	if got := decodeOne(t, "\t"); got != Key('\t') {
		t.Fatalf("ReadKey(tab)=%d, want %d", got, Key('\t'))
	}
}

func TestReadKey_DegradesToEscape(t *testing.T) {
	cases := []string{
		"\x1b",    // bare escape, no follow-up available
		"\x1b[",   // truncated after the bracket
		"\x1b[9~", // digit outside the recognized set
		"\x1b[9",  // digit with no closing tilde
		"\x1b[5x", // digit closed by the wrong byte
		"\x1b[Z",  // unrecognized letter
		"\x1bOX",  // unrecognized O sequence
		"\x1bxy",  // unrecognized second byte
	}

	for _, input := range cases {
		if got := decodeOne(t, input); got != Key(0x1b) {
			t.Fatalf("ReadKey(%q)=%d, want bare escape", input, got)
		}
	}
}

func TestReadKey_SequentialKeysFromOneStream(t *testing.T) {
	r := bytes.NewReader([]byte("ab\x1b[C\x1b[3~"))
	want := []Key{Key('a'), Key('b'), KeyArrowRight, KeyDelete}

	for i, w := range want {
		k, err := ReadKey(r)
		if err != nil {
			t.Fatalf("key %d: %v", i, err)
		}
		if k != w {
			t.Fatalf("key %d=%d, want %d", i, k, w)
		}
	}
}
