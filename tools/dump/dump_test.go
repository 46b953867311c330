package dump

import (
	"bytes"
	"errors"
	"testing"

	"github.com/clktmr/semihosting/trace"
	"github.com/clktmr/semihosting/trap"
)

func recordTrace(t *testing.T) []byte {
	var buf bytes.Buffer
	records := []trace.Record{
		{Shape: trace.ShapeBlock, Op: trap.Open, Args: []uintptr{0x1000, 4, 3}, Result: 1},
		{Shape: trace.ShapeBlock, Op: trap.Write, Args: []uintptr{1, 0x2000, 14}, Result: 9},
		{Shape: trace.ShapeBlock, Op: trap.Write, Args: []uintptr{1, 0x2005, 9}, Result: 0},
	}
	for _, r := range records {
		if err := trace.WriteRecord(&buf, r); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestDump(t *testing.T) {
	var out bytes.Buffer
	if err := Dump(&out, bytes.NewReader(recordTrace(t)), false); err != nil {
		t.Fatal(err)
	}
	expected := "     0 SYS_OPEN[0x1000 0x4 0x3] = 0x1\n" +
		"     1 SYS_WRITE[0x1 0x2000 0xe] = 0x9\n" +
		"     2 SYS_WRITE[0x1 0x2005 0x9] = 0x0\n"
	if out.String() != expected {
		t.Fatalf("expected\n%s\ngot\n%s", expected, out.String())
	}
}

func TestDumpCount(t *testing.T) {
	var out bytes.Buffer
	if err := Dump(&out, bytes.NewReader(recordTrace(t)), true); err != nil {
		t.Fatal(err)
	}
	expected := "SYS_OPEN           1\nSYS_WRITE          2\n"
	if out.String() != expected {
		t.Fatalf("expected %q, got %q", expected, out.String())
	}
}

func TestDumpDamaged(t *testing.T) {
	data := recordTrace(t)
	data[len(data)-1] ^= 0xff
	err := Dump(&bytes.Buffer{}, bytes.NewReader(data), false)
	if !errors.Is(err, trace.ErrChecksum) {
		t.Fatalf("expected %v, got %v", trace.ErrChecksum, err)
	}
}
