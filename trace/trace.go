// Package trace records host crossings.
//
// Every crossing is stored as one frame: a little endian uint16 length, the
// record and a CRC-8 of the record. A record holds the call shape, the
// operation, the argument words and the result word, each word as little
// endian uint64.
package trace

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/sigurn/crc8"

	"github.com/clktmr/semihosting/debug"
	"github.com/clktmr/semihosting/trap"
)

var (
	ErrChecksum  = errors.New("trace: checksum mismatch")
	ErrMalformed = errors.New("trace: malformed record")
)

var table = crc8.MakeTable(crc8.CRC8_MAXIM)

// Shape is the calling convention of a crossing.
type Shape byte

const (
	ShapeWord  Shape = 1 // argument passed in the register
	ShapeBlock Shape = 2 // argument block
)

// Record is a single host crossing.
type Record struct {
	Shape  Shape
	Op     trap.Op
	Args   []uintptr
	Result uintptr
}

func (r Record) String() string {
	if r.Shape == ShapeWord {
		return fmt.Sprintf("%v(%#x) = %#x", r.Op, r.Args[0], r.Result)
	}
	return fmt.Sprintf("%v%#x = %#x", r.Op, r.Args, r.Result)
}

const maxArgs = 16

func (r Record) marshal() ([]byte, error) {
	if len(r.Args) > maxArgs || (r.Shape == ShapeWord && len(r.Args) != 1) {
		return nil, ErrMalformed
	}
	b := make([]byte, 0, 3+8*(len(r.Args)+1))
	b = append(b, byte(r.Shape), byte(r.Op), byte(len(r.Args)))
	for _, a := range r.Args {
		b = binary.LittleEndian.AppendUint64(b, uint64(a))
	}
	b = binary.LittleEndian.AppendUint64(b, uint64(r.Result))
	return b, nil
}

func (r *Record) unmarshal(b []byte) error {
	if len(b) < 3 {
		return ErrMalformed
	}
	shape, op, n := Shape(b[0]), trap.Op(b[1]), int(b[2])
	if n > maxArgs || len(b) != 3+8*(n+1) || (shape != ShapeWord && shape != ShapeBlock) || (shape == ShapeWord && n != 1) {
		return ErrMalformed
	}
	b = b[3:]
	r.Shape, r.Op, r.Args = shape, op, make([]uintptr, n)
	for i := range r.Args {
		r.Args[i] = uintptr(binary.LittleEndian.Uint64(b[8*i:]))
	}
	r.Result = uintptr(binary.LittleEndian.Uint64(b[8*n:]))
	return nil
}

// WriteRecord appends a framed record to w.
func WriteRecord(w io.Writer, r Record) error {
	payload, err := r.marshal()
	if err != nil {
		return err
	}
	debug.Assert(len(payload) <= math.MaxUint16, "record exceeds frame")
	frame := make([]byte, 0, 2+len(payload)+1)
	frame = binary.LittleEndian.AppendUint16(frame, uint16(len(payload)))
	frame = append(frame, payload...)
	frame = append(frame, crc8.Checksum(payload, table))
	_, err = w.Write(frame)
	return err
}

// Reader decodes a trace.
type Reader struct {
	r   io.Reader
	buf []byte
}

func NewReader(r io.Reader) *Reader { return &Reader{r: r} }

// Next returns the next record. It returns io.EOF at the end of the trace
// and io.ErrUnexpectedEOF if the trace is truncated.
func (d *Reader) Next() (r Record, err error) {
	var hdr [2]byte
	if _, err = io.ReadFull(d.r, hdr[:]); err != nil {
		return
	}
	n := int(binary.LittleEndian.Uint16(hdr[:]))
	if cap(d.buf) < n+1 {
		d.buf = make([]byte, n+1)
	}
	buf := d.buf[:n+1]
	if _, err = io.ReadFull(d.r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return
	}

	csum := crc8.Init(table)
	csum = crc8.Update(csum, buf[:n], table)
	csum = crc8.Complete(csum, table)
	if csum != buf[n] {
		return r, ErrChecksum
	}

	err = r.unmarshal(buf[:n])
	return
}
