package shape

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Op identifies a recorded Context call.
type Op uint8

const (
	// State
	OpSave Op = iota
	OpRestore
	OpTransform

	// Path construction
	OpBeginPath
	OpMoveTo
	OpLineTo
	OpArc
	OpClosePath

	// Painting
	OpFill
	OpStroke
	OpFillText

	// Style
	OpSetFillStyle
	OpSetStrokeStyle
	OpSetLineWidth
	OpSetGlobalAlpha
	OpSetShadow
	OpSetFont
	OpSetTextAlign
	OpSetTextBaseline
)

var opNames = [...]string{
	OpSave:            "Save",
	OpRestore:         "Restore",
	OpTransform:       "Transform",
	OpBeginPath:       "BeginPath",
	OpMoveTo:          "MoveTo",
	OpLineTo:          "LineTo",
	OpArc:             "Arc",
	OpClosePath:       "ClosePath",
	OpFill:            "Fill",
	OpStroke:          "Stroke",
	OpFillText:        "FillText",
	OpSetFillStyle:    "SetFillStyle",
	OpSetStrokeStyle:  "SetStrokeStyle",
	OpSetLineWidth:    "SetLineWidth",
	OpSetGlobalAlpha:  "SetGlobalAlpha",
	OpSetShadow:       "SetShadow",
	OpSetFont:         "SetFont",
	OpSetTextAlign:    "SetTextAlign",
	OpSetTextBaseline: "SetTextBaseline",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Call is one recorded Context call.
//
// Args holds the numeric arguments in call order: (x, y) for MoveTo, LineTo
// and FillText, (x, y, r, start, end) for Arc, the width or alpha for the
// setters. Str holds the colour, font, alignment or text argument.
type Call struct {
	Op            Op
	Args          []float64
	Str           string
	Anticlockwise bool
	Matrix        gg.Matrix
	Shadow        Shadow
}

func (c Call) String() string {
	switch {
	case c.Str != "" && len(c.Args) > 0:
		return fmt.Sprintf("%v(%q, %v)", c.Op, c.Str, c.Args)
	case c.Str != "":
		return fmt.Sprintf("%v(%q)", c.Op, c.Str)
	case len(c.Args) > 0:
		return fmt.Sprintf("%v%v", c.Op, c.Args)
	}
	return c.Op.String()
}

// Recorder is a [Context] that records calls instead of painting.
//
// Colour strings are validated with [ParseColor] so that the recorder fails
// where a real canvas would; font strings are not resolved. Failing calls are
// still recorded. Set FailOn to make painting calls of that kind return an
// error.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	calls []Call
	depth int

	// FailOn maps an op to the error it should return.
	FailOn map[Op]error
}

var _ Context = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{calls: make([]Call, 0, 32)}
}

// Calls returns the recorded calls. The slice is owned by the recorder.
func (r *Recorder) Calls() []Call { return r.calls }

// Ops returns the op of every recorded call.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Depth returns the number of unmatched Save calls.
func (r *Recorder) Depth() int { return r.depth }

// Reset clears the recorded calls and the save depth.
func (r *Recorder) Reset() {
	r.calls = r.calls[:0]
	r.depth = 0
}

func (r *Recorder) record(c Call) { r.calls = append(r.calls, c) }

func (r *Recorder) fail(op Op) error {
	if r.FailOn == nil {
		return nil
	}
	return r.FailOn[op]
}

func (r *Recorder) Save() {
	r.depth++
	r.record(Call{Op: OpSave})
}

func (r *Recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.record(Call{Op: OpRestore})
}

func (r *Recorder) Transform(m gg.Matrix) {
	r.record(Call{Op: OpTransform, Matrix: m})
}

func (r *Recorder) BeginPath() { r.record(Call{Op: OpBeginPath}) }

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Call{Op: OpMoveTo, Args: []float64{x, y}})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Call{Op: OpLineTo, Args: []float64{x, y}})
}

func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	r.record(Call{
		Op:            OpArc,
		Args:          []float64{x, y, radius, startAngle, endAngle},
		Anticlockwise: anticlockwise,
	})
}

func (r *Recorder) ClosePath() { r.record(Call{Op: OpClosePath}) }

func (r *Recorder) Fill() error {
	r.record(Call{Op: OpFill})
	return r.fail(OpFill)
}

func (r *Recorder) Stroke() error {
	r.record(Call{Op: OpStroke})
	return r.fail(OpStroke)
}

func (r *Recorder) SetFillStyle(color string) error {
	r.record(Call{Op: OpSetFillStyle, Str: color})
	_, err := ParseColor(color)
	return err
}

func (r *Recorder) SetStrokeStyle(color string) error {
	r.record(Call{Op: OpSetStrokeStyle, Str: color})
	_, err := ParseColor(color)
	return err
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Call{Op: OpSetLineWidth, Args: []float64{w}})
}

func (r *Recorder) SetGlobalAlpha(a float64) {
	r.record(Call{Op: OpSetGlobalAlpha, Args: []float64{a}})
}

func (r *Recorder) SetShadow(s Shadow) error {
	r.record(Call{Op: OpSetShadow, Shadow: s})
	if s.Color == "" {
		return nil
	}
	_, err := ParseColor(s.Color)
	return err
}

func (r *Recorder) SetFont(font string) error {
	r.record(Call{Op: OpSetFont, Str: font})
	return r.fail(OpSetFont)
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.record(Call{Op: OpSetTextAlign, Str: string(a)})
}

func (r *Recorder) SetTextBaseline(b TextBaseline) {
	r.record(Call{Op: OpSetTextBaseline, Str: string(b)})
}

func (r *Recorder) FillText(s string, x, y float64) error {
	r.record(Call{Op: OpFillText, Str: s, Args: []float64{x, y}})
	return r.fail(OpFillText)
}
