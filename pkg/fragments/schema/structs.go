package schema

import flatbuffers "github.com/google/flatbuffers/go"

// Struct sizes in bytes, used for vector element strides.
const (
	SizeFloatVector    = 12
	SizeDoubleVector   = 24
	SizeBoundingBox    = 24
	SizeTransform      = 48
	SizeMaterial       = 6
	SizeSample         = 16
	SizeRepresentation = 32
	SizeCircleCurve    = 44
	SizeWire           = 24
)

type FloatVector struct {
	_tab flatbuffers.Struct
}

func (rcv *FloatVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *FloatVector) X() float32 { return rcv._tab.GetFloat32(rcv._tab.Pos + 0) }
func (rcv *FloatVector) Y() float32 { return rcv._tab.GetFloat32(rcv._tab.Pos + 4) }
func (rcv *FloatVector) Z() float32 { return rcv._tab.GetFloat32(rcv._tab.Pos + 8) }

func CreateFloatVector(builder *flatbuffers.Builder, x, y, z float32) flatbuffers.UOffsetT {
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(z)
	builder.PrependFloat32(y)
	builder.PrependFloat32(x)
	return builder.Offset()
}

type DoubleVector struct {
	_tab flatbuffers.Struct
}

func (rcv *DoubleVector) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *DoubleVector) X() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos + 0) }
func (rcv *DoubleVector) Y() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos + 8) }
func (rcv *DoubleVector) Z() float64 { return rcv._tab.GetFloat64(rcv._tab.Pos + 16) }

type BoundingBox struct {
	_tab flatbuffers.Struct
}

func (rcv *BoundingBox) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *BoundingBox) Min(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+0, obj)
}

func (rcv *BoundingBox) Max(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+12, obj)
}

// Transform is a position plus the X and Y basis directions.
type Transform struct {
	_tab flatbuffers.Struct
}

func (rcv *Transform) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Transform) Position(obj *DoubleVector) *DoubleVector {
	if obj == nil {
		obj = new(DoubleVector)
	}
	obj.Init(rcv._tab.Bytes, rcv._tab.Pos+0)
	return obj
}

func (rcv *Transform) XDirection(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+24, obj)
}

func (rcv *Transform) YDirection(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+36, obj)
}

func CreateTransform(builder *flatbuffers.Builder,
	positionX, positionY, positionZ float64,
	xDirectionX, xDirectionY, xDirectionZ float32,
	yDirectionX, yDirectionY, yDirectionZ float32,
) flatbuffers.UOffsetT {
	builder.Prep(8, SizeTransform)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(yDirectionZ)
	builder.PrependFloat32(yDirectionY)
	builder.PrependFloat32(yDirectionX)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(xDirectionZ)
	builder.PrependFloat32(xDirectionY)
	builder.PrependFloat32(xDirectionX)
	builder.Prep(8, SizeDoubleVector)
	builder.PrependFloat64(positionZ)
	builder.PrependFloat64(positionY)
	builder.PrependFloat64(positionX)
	return builder.Offset()
}

// Material is an RGBA color with face and stroke flags.
type Material struct {
	_tab flatbuffers.Struct
}

func (rcv *Material) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Material) R() byte { return rcv._tab.GetByte(rcv._tab.Pos + 0) }
func (rcv *Material) G() byte { return rcv._tab.GetByte(rcv._tab.Pos + 1) }
func (rcv *Material) B() byte { return rcv._tab.GetByte(rcv._tab.Pos + 2) }
func (rcv *Material) A() byte { return rcv._tab.GetByte(rcv._tab.Pos + 3) }

func (rcv *Material) RenderedFaces() RenderedFaces {
	return RenderedFaces(rcv._tab.GetByte(rcv._tab.Pos + 4))
}

func (rcv *Material) Stroke() Stroke {
	return Stroke(rcv._tab.GetByte(rcv._tab.Pos + 5))
}

func CreateMaterial(builder *flatbuffers.Builder, r, g, b, a byte, faces RenderedFaces, stroke Stroke) flatbuffers.UOffsetT {
	builder.Prep(1, SizeMaterial)
	builder.PrependByte(byte(stroke))
	builder.PrependByte(byte(faces))
	builder.PrependByte(a)
	builder.PrependByte(b)
	builder.PrependByte(g)
	builder.PrependByte(r)
	return builder.Offset()
}

// Sample attaches a representation, material and local transform to an item.
type Sample struct {
	_tab flatbuffers.Struct
}

func (rcv *Sample) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Sample) Item() uint32           { return rcv._tab.GetUint32(rcv._tab.Pos + 0) }
func (rcv *Sample) Material() uint32       { return rcv._tab.GetUint32(rcv._tab.Pos + 4) }
func (rcv *Sample) Representation() uint32 { return rcv._tab.GetUint32(rcv._tab.Pos + 8) }
func (rcv *Sample) LocalTransform() uint32 { return rcv._tab.GetUint32(rcv._tab.Pos + 12) }

func CreateSample(builder *flatbuffers.Builder, item, material, representation, localTransform uint32) flatbuffers.UOffsetT {
	builder.Prep(4, SizeSample)
	builder.PrependUint32(localTransform)
	builder.PrependUint32(representation)
	builder.PrependUint32(material)
	builder.PrependUint32(item)
	return builder.Offset()
}

// Representation points into the shell or circle extrusion array,
// depending on its class.
type Representation struct {
	_tab flatbuffers.Struct
}

func (rcv *Representation) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Representation) Id() uint32 { return rcv._tab.GetUint32(rcv._tab.Pos + 0) }

func (rcv *Representation) Bbox(obj *BoundingBox) *BoundingBox {
	if obj == nil {
		obj = new(BoundingBox)
	}
	obj.Init(rcv._tab.Bytes, rcv._tab.Pos+4)
	return obj
}

func (rcv *Representation) RepresentationClass() RepresentationClass {
	return RepresentationClass(rcv._tab.GetByte(rcv._tab.Pos + 28))
}

func CreateRepresentation(builder *flatbuffers.Builder, id uint32,
	minX, minY, minZ, maxX, maxY, maxZ float32,
	class RepresentationClass,
) flatbuffers.UOffsetT {
	builder.Prep(4, SizeRepresentation)
	builder.Pad(3)
	builder.PrependByte(byte(class))
	builder.Prep(4, SizeBoundingBox)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(maxZ)
	builder.PrependFloat32(maxY)
	builder.PrependFloat32(maxX)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(minZ)
	builder.PrependFloat32(minY)
	builder.PrependFloat32(minX)
	builder.PrependUint32(id)
	return builder.Offset()
}

// CircleCurve is an arc; the aperture is in degrees.
type CircleCurve struct {
	_tab flatbuffers.Struct
}

func (rcv *CircleCurve) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CircleCurve) Aperture() float32 { return rcv._tab.GetFloat32(rcv._tab.Pos + 0) }

func (rcv *CircleCurve) Position(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+4, obj)
}

func (rcv *CircleCurve) Radius() float32 { return rcv._tab.GetFloat32(rcv._tab.Pos + 16) }

func (rcv *CircleCurve) XDirection(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+20, obj)
}

func (rcv *CircleCurve) YDirection(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+32, obj)
}

func CreateCircleCurve(builder *flatbuffers.Builder, aperture float32,
	positionX, positionY, positionZ float32,
	radius float32,
	xDirectionX, xDirectionY, xDirectionZ float32,
	yDirectionX, yDirectionY, yDirectionZ float32,
) flatbuffers.UOffsetT {
	builder.Prep(4, SizeCircleCurve)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(yDirectionZ)
	builder.PrependFloat32(yDirectionY)
	builder.PrependFloat32(yDirectionX)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(xDirectionZ)
	builder.PrependFloat32(xDirectionY)
	builder.PrependFloat32(xDirectionX)
	builder.PrependFloat32(radius)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(positionZ)
	builder.PrependFloat32(positionY)
	builder.PrependFloat32(positionX)
	builder.PrependFloat32(aperture)
	return builder.Offset()
}

// Wire is a straight segment.
type Wire struct {
	_tab flatbuffers.Struct
}

func (rcv *Wire) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Wire) P1(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+0, obj)
}

func (rcv *Wire) P2(obj *FloatVector) *FloatVector {
	return nestedFloatVector(rcv._tab.Bytes, rcv._tab.Pos+12, obj)
}

func CreateWire(builder *flatbuffers.Builder, p1X, p1Y, p1Z, p2X, p2Y, p2Z float32) flatbuffers.UOffsetT {
	builder.Prep(4, SizeWire)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(p2Z)
	builder.PrependFloat32(p2Y)
	builder.PrependFloat32(p2X)
	builder.Prep(4, SizeFloatVector)
	builder.PrependFloat32(p1Z)
	builder.PrependFloat32(p1Y)
	builder.PrependFloat32(p1X)
	return builder.Offset()
}

func nestedFloatVector(buf []byte, pos flatbuffers.UOffsetT, obj *FloatVector) *FloatVector {
	if obj == nil {
		obj = new(FloatVector)
	}
	obj.Init(buf, pos)
	return obj
}
