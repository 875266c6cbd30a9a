package flatbuffers

import (
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

// FlatBuffers 的所有标量都按小端序存储。
//
// 这里有两套编解码函数：
//	- GetXxx / WriteXxx：不做边界检查，调用方（Builder）已经通过 Prep 预留好了空间；
//	- Read / Put：带边界检查，越界时返回 ErrIndexOutOfBound ，供访问层实现 fail-soft 读取。

// GetByte decodes a little-endian byte from a byte slice.
func GetByte(buf []byte) byte { return buf[0] }

// GetBool decodes a little-endian bool from a byte slice.
func GetBool(buf []byte) bool { return buf[0] == 1 }

// GetUint8 decodes a little-endian uint8 from a byte slice.
func GetUint8(buf []byte) uint8 { return buf[0] }

// GetUint16 decodes a little-endian uint16 from a byte slice.
func GetUint16(buf []byte) uint16 { return binary.LittleEndian.Uint16(buf) }

// GetUint32 decodes a little-endian uint32 from a byte slice.
func GetUint32(buf []byte) uint32 { return binary.LittleEndian.Uint32(buf) }

// GetUint64 decodes a little-endian uint64 from a byte slice.
func GetUint64(buf []byte) uint64 { return binary.LittleEndian.Uint64(buf) }

// GetInt8 decodes a little-endian int8 from a byte slice.
func GetInt8(buf []byte) int8 { return int8(buf[0]) }

// GetInt16 decodes a little-endian int16 from a byte slice.
func GetInt16(buf []byte) int16 { return int16(GetUint16(buf)) }

// GetInt32 decodes a little-endian int32 from a byte slice.
func GetInt32(buf []byte) int32 { return int32(GetUint32(buf)) }

// GetInt64 decodes a little-endian int64 from a byte slice.
func GetInt64(buf []byte) int64 { return int64(GetUint64(buf)) }

// GetFloat32 decodes a little-endian float32 from a byte slice.
func GetFloat32(buf []byte) float32 { return math.Float32frombits(GetUint32(buf)) }

// GetFloat64 decodes a little-endian float64 from a byte slice.
func GetFloat64(buf []byte) float64 { return math.Float64frombits(GetUint64(buf)) }

// GetUOffsetT decodes a little-endian UOffsetT from a byte slice.
func GetUOffsetT(buf []byte) UOffsetT { return UOffsetT(GetUint32(buf)) }

// GetSOffsetT decodes a little-endian SOffsetT from a byte slice.
func GetSOffsetT(buf []byte) SOffsetT { return SOffsetT(GetInt32(buf)) }

// GetVOffsetT decodes a little-endian VOffsetT from a byte slice.
func GetVOffsetT(buf []byte) VOffsetT { return VOffsetT(GetUint16(buf)) }

// WriteByte encodes a little-endian byte into a byte slice.
func WriteByte(buf []byte, n byte) { buf[0] = n }

// WriteBool encodes a little-endian bool into a byte slice.
func WriteBool(buf []byte, b bool) {
	buf[0] = 0
	if b {
		buf[0] = 1
	}
}

// WriteUint8 encodes a little-endian uint8 into a byte slice.
func WriteUint8(buf []byte, n uint8) { buf[0] = n }

// WriteUint16 encodes a little-endian uint16 into a byte slice.
func WriteUint16(buf []byte, n uint16) { binary.LittleEndian.PutUint16(buf, n) }

// WriteUint32 encodes a little-endian uint32 into a byte slice.
func WriteUint32(buf []byte, n uint32) { binary.LittleEndian.PutUint32(buf, n) }

// WriteUint64 encodes a little-endian uint64 into a byte slice.
func WriteUint64(buf []byte, n uint64) { binary.LittleEndian.PutUint64(buf, n) }

// WriteInt8 encodes a little-endian int8 into a byte slice.
func WriteInt8(buf []byte, n int8) { buf[0] = byte(n) }

// WriteInt16 encodes a little-endian int16 into a byte slice.
func WriteInt16(buf []byte, n int16) { WriteUint16(buf, uint16(n)) }

// WriteInt32 encodes a little-endian int32 into a byte slice.
func WriteInt32(buf []byte, n int32) { WriteUint32(buf, uint32(n)) }

// WriteInt64 encodes a little-endian int64 into a byte slice.
func WriteInt64(buf []byte, n int64) { WriteUint64(buf, uint64(n)) }

// WriteFloat32 encodes a little-endian float32 into a byte slice.
func WriteFloat32(buf []byte, n float32) { WriteUint32(buf, math.Float32bits(n)) }

// WriteFloat64 encodes a little-endian float64 into a byte slice.
func WriteFloat64(buf []byte, n float64) { WriteUint64(buf, math.Float64bits(n)) }

// WriteVOffsetT encodes a little-endian VOffsetT into a byte slice.
func WriteVOffsetT(buf []byte, n VOffsetT) { WriteUint16(buf, uint16(n)) }

// WriteSOffsetT encodes a little-endian SOffsetT into a byte slice.
func WriteSOffsetT(buf []byte, n SOffsetT) { WriteInt32(buf, int32(n)) }

// WriteUOffsetT encodes a little-endian UOffsetT into a byte slice.
func WriteUOffsetT(buf []byte, n UOffsetT) { WriteUint32(buf, uint32(n)) }

// Scalar is the closed set of fixed-width values a buffer can hold inline.
type Scalar interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 |
		float32 | float64 | SOffsetT | UOffsetT | VOffsetT
}

// SizeOf returns the encoded byte width of T.
func SizeOf[T Scalar]() int {
	var v T
	switch any(v).(type) {
	case bool, int8, uint8:
		return 1
	case int16, uint16, VOffsetT:
		return 2
	case int32, uint32, float32, SOffsetT, UOffsetT:
		return 4
	default:
		return 8
	}
}

func checkBounds(buf []byte, pos UOffsetT, n int) error {
	if n < 0 || uint64(pos)+uint64(n) > uint64(len(buf)) {
		return xerrors.Errorf("%d bytes at %d in buffer of %d: %w", n, pos, len(buf), ErrIndexOutOfBound)
	}
	return nil
}

// Read decodes the T stored at pos. It returns ErrIndexOutOfBound when
// [pos, pos+SizeOf[T]()) is not inside buf.
func Read[T Scalar](buf []byte, pos UOffsetT) (T, error) {
	var v T
	if err := checkBounds(buf, pos, SizeOf[T]()); err != nil {
		return v, err
	}
	b := buf[pos:]
	switch p := any(&v).(type) {
	case *bool:
		*p = GetBool(b)
	case *int8:
		*p = GetInt8(b)
	case *uint8:
		*p = GetUint8(b)
	case *int16:
		*p = GetInt16(b)
	case *uint16:
		*p = GetUint16(b)
	case *int32:
		*p = GetInt32(b)
	case *uint32:
		*p = GetUint32(b)
	case *int64:
		*p = GetInt64(b)
	case *uint64:
		*p = GetUint64(b)
	case *float32:
		*p = GetFloat32(b)
	case *float64:
		*p = GetFloat64(b)
	case *SOffsetT:
		*p = GetSOffsetT(b)
	case *UOffsetT:
		*p = GetUOffsetT(b)
	case *VOffsetT:
		*p = GetVOffsetT(b)
	}
	return v, nil
}

// Put encodes v at pos. It returns ErrIndexOutOfBound when
// [pos, pos+SizeOf[T]()) is not inside buf; buf is left untouched then.
func Put[T Scalar](buf []byte, pos UOffsetT, v T) error {
	if err := checkBounds(buf, pos, SizeOf[T]()); err != nil {
		return err
	}
	b := buf[pos:]
	switch x := any(v).(type) {
	case bool:
		WriteBool(b, x)
	case int8:
		WriteInt8(b, x)
	case uint8:
		WriteUint8(b, x)
	case int16:
		WriteInt16(b, x)
	case uint16:
		WriteUint16(b, x)
	case int32:
		WriteInt32(b, x)
	case uint32:
		WriteUint32(b, x)
	case int64:
		WriteInt64(b, x)
	case uint64:
		WriteUint64(b, x)
	case float32:
		WriteFloat32(b, x)
	case float64:
		WriteFloat64(b, x)
	case SOffsetT:
		WriteSOffsetT(b, x)
	case UOffsetT:
		WriteUOffsetT(b, x)
	case VOffsetT:
		WriteVOffsetT(b, x)
	}
	return nil
}

// ReadBytes returns the n bytes starting at pos. The result aliases buf.
func ReadBytes(buf []byte, pos UOffsetT, n int) ([]byte, error) {
	if err := checkBounds(buf, pos, n); err != nil {
		return nil, err
	}
	return buf[pos : int(pos)+n : int(pos)+n], nil
}

// PutBytes copies p into buf at pos.
func PutBytes(buf []byte, pos UOffsetT, p []byte) error {
	if err := checkBounds(buf, pos, len(p)); err != nil {
		return err
	}
	copy(buf[pos:], p)
	return nil
}

// readOr is the fail-soft form of Read used by the accessors.
func readOr[T Scalar](buf []byte, pos UOffsetT, d T) T {
	v, err := Read[T](buf, pos)
	if err != nil {
		return d
	}
	return v
}
