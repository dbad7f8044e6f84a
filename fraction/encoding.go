package fraction

import (
	"bytes"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/vmihailenco/msgpack/v4"
)

func init() {
	msgpack.RegisterExt(0, (*Frac)(nil))
}

// The only wire format is the canonical text form "-?digits(/digits)?"
// with the denominator positive and omitted when one. JSON quotes it,
// msgpack carries it as ext payload bytes.

func (f *Frac) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(f.String())), nil
}

func (f *Frac) UnmarshalJSON(b []byte) error {
	unquoted, err := strconv.Unquote(string(b))
	if err != nil {
		return err
	}
	v, err := Parse(unquoted)
	if err != nil {
		return err
	}
	f.adopt(v)
	return nil
}

func (f *Frac) MarshalMsgpack() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Frac) UnmarshalMsgpack(data []byte) error {
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	f.adopt(v)
	return nil
}

// adopt steals the freshly constructed value's handles into f. This is
// the one in-place mutation in the package and happens only while
// decoding into a value the codec owns exclusively.
func (f *Frac) adopt(v *Frac) {
	if f.num != nil {
		f.num.Release()
	}
	if f.den != nil {
		f.den.Release()
	}
	f.num, f.den = v.num, v.den
	v.num, v.den = nil, nil
	atomic.StoreInt64(&f.refs, 1)
}

// MsgpackMarshalPanic encodes val with the compact, sorted encoder
// settings used across the project, panicking on encoder failure.
func MsgpackMarshalPanic(val interface{}) []byte {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf).UseCompactEncoding(true).SortMapKeys(true)
	err := enc.Encode(val)
	if err != nil {
		panic(fmt.Errorf("MsgpackMarshalPanic: %#v %s", val, err.Error()))
	}
	return buf.Bytes()
}

func MsgpackUnmarshal(data []byte, val interface{}) error {
	err := msgpack.Unmarshal(data, val)
	if err == nil {
		return nil
	}
	return fmt.Errorf("MsgpackUnmarshal: %s", err.Error())
}
