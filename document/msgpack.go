package document

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// EncodeMsgpack encodes object entries as a msgpack map in insertion order
func (o *Object) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(o.Len()); err != nil {
		return err
	}
	for _, entry := range o.Entries() {
		if err := enc.EncodeString(entry.Key); err != nil {
			return err
		}
		if err := enc.Encode(Normalize(entry.Value)); err != nil {
			return fmt.Errorf("failed to encode %v: %w", entry.Key, err)
		}
	}
	return nil
}

// DecodeMsgpack decodes a msgpack map keeping its key order
func (o *Object) DecodeMsgpack(dec *msgpack.Decoder) error {
	value, err := decodeMsgpackValue(dec)
	if err != nil {
		return err
	}
	decoded, ok := value.(*Object)
	if !ok {
		return fmt.Errorf("expected msgpack map, but had %T", value)
	}
	*o = *decoded
	return nil
}

// EncodeMsgpack encodes a node tree as msgpack
func EncodeMsgpack(value any) ([]byte, error) {
	return msgpack.Marshal(Normalize(value))
}

func decodeMsgpack(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	value, err := decodeMsgpackValue(msgpack.NewDecoder(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decode msgpack document: %w", err)
	}
	return value, nil
}

func decodeMsgpackValue(dec *msgpack.Decoder) (any, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}
	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		size, err := dec.DecodeMapLen()
		if err != nil || size == -1 {
			return nil, err
		}
		ret := NewObject()
		for i := 0; i < size; i++ {
			key, err := dec.DecodeInterface()
			if err != nil {
				return nil, err
			}
			value, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			ret.Set(keyString(key), value)
		}
		return ret, nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		size, err := dec.DecodeArrayLen()
		if err != nil || size == -1 {
			return nil, err
		}
		ret := make([]any, size)
		for i := range ret {
			if ret[i], err = decodeMsgpackValue(dec); err != nil {
				return nil, err
			}
		}
		return ret, nil
	}
	return dec.DecodeInterface()
}
