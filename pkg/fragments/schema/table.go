package schema

import flatbuffers "github.com/google/flatbuffers/go"

// Slot returns the vtable offset of field index i.
func Slot(i int) flatbuffers.VOffsetT {
	return flatbuffers.VOffsetT(4 + 2*i)
}

func fieldString(t *flatbuffers.Table, slot flatbuffers.VOffsetT) []byte {
	o := flatbuffers.UOffsetT(t.Offset(slot))
	if o == 0 {
		return nil
	}
	return t.ByteVector(o + t.Pos)
}

func fieldTable(t *flatbuffers.Table, slot flatbuffers.VOffsetT) (flatbuffers.UOffsetT, bool) {
	o := flatbuffers.UOffsetT(t.Offset(slot))
	if o == 0 {
		return 0, false
	}
	return t.Indirect(o + t.Pos), true
}

func vectorLen(t *flatbuffers.Table, slot flatbuffers.VOffsetT) int {
	o := flatbuffers.UOffsetT(t.Offset(slot))
	if o == 0 {
		return 0
	}
	return t.VectorLen(o)
}

// element returns the absolute position of element j of a vector whose
// elements are stride bytes wide.
func element(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j, stride int) (flatbuffers.UOffsetT, bool) {
	o := flatbuffers.UOffsetT(t.Offset(slot))
	if o == 0 {
		return 0, false
	}
	return t.Vector(o) + flatbuffers.UOffsetT(j*stride), true
}

func stringAt(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) []byte {
	pos, ok := element(t, slot, j, 4)
	if !ok {
		return nil
	}
	return t.ByteVector(pos)
}

func tableAt(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) (flatbuffers.UOffsetT, bool) {
	pos, ok := element(t, slot, j, 4)
	if !ok {
		return 0, false
	}
	return t.Indirect(pos), true
}

func uint32At(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) uint32 {
	pos, ok := element(t, slot, j, 4)
	if !ok {
		return 0
	}
	return t.GetUint32(pos)
}

func int32At(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) int32 {
	pos, ok := element(t, slot, j, 4)
	if !ok {
		return 0
	}
	return t.GetInt32(pos)
}

func uint16At(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) uint16 {
	pos, ok := element(t, slot, j, 2)
	if !ok {
		return 0
	}
	return t.GetUint16(pos)
}

func float64At(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) float64 {
	pos, ok := element(t, slot, j, 8)
	if !ok {
		return 0
	}
	return t.GetFloat64(pos)
}

func byteAt(t *flatbuffers.Table, slot flatbuffers.VOffsetT, j int) byte {
	pos, ok := element(t, slot, j, 1)
	if !ok {
		return 0
	}
	return t.GetByte(pos)
}
