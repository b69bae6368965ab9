// Package schema reads and writes the FlatBuffers tables of a Fragments
// model. The layout is described in index.fbs; every accessor here follows
// the slot order declared there.
package schema

import "strconv"

// RepresentationClass selects the geometry array a representation indexes.
type RepresentationClass byte

const (
	RepresentationClassNONE            RepresentationClass = 0
	RepresentationClassSHELL           RepresentationClass = 1
	RepresentationClassCIRCLEEXTRUSION RepresentationClass = 2
)

var EnumNamesRepresentationClass = map[RepresentationClass]string{
	RepresentationClassNONE:            "NONE",
	RepresentationClassSHELL:           "SHELL",
	RepresentationClassCIRCLEEXTRUSION: "CIRCLE_EXTRUSION",
}

func (v RepresentationClass) String() string {
	if s, ok := EnumNamesRepresentationClass[v]; ok {
		return s
	}
	return "RepresentationClass(" + strconv.FormatInt(int64(v), 10) + ")"
}

// AxisPartClass selects the sub-array an axis part indexes.
type AxisPartClass byte

const (
	AxisPartClassNONE        AxisPartClass = 0
	AxisPartClassWIRE        AxisPartClass = 1
	AxisPartClassWIRESET     AxisPartClass = 2
	AxisPartClassCIRCLECURVE AxisPartClass = 3
)

var EnumNamesAxisPartClass = map[AxisPartClass]string{
	AxisPartClassNONE:        "NONE",
	AxisPartClassWIRE:        "WIRE",
	AxisPartClassWIRESET:     "WIRE_SET",
	AxisPartClassCIRCLECURVE: "CIRCLE_CURVE",
}

func (v AxisPartClass) String() string {
	if s, ok := EnumNamesAxisPartClass[v]; ok {
		return s
	}
	return "AxisPartClass(" + strconv.FormatInt(int64(v), 10) + ")"
}

// RenderedFaces tells whether a material is single or double sided.
type RenderedFaces byte

const (
	RenderedFacesONE RenderedFaces = 0
	RenderedFacesTWO RenderedFaces = 1
)

// Stroke is the line style of a material.
type Stroke byte

const (
	StrokeDEFAULT Stroke = 0
)
