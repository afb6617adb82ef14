package catalog

import (
	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// CatalogRecordMUS serializes CatalogRecord in the MUS format.
//
// The serializer is written by hand rather than generated: the record is a
// single flat type with scalar fields, and the optional duration is encoded
// as a presence flag followed by the value.
var CatalogRecordMUS = catalogRecordMUS{}

var _ mus.Serializer[CatalogRecord] = CatalogRecordMUS

type catalogRecordMUS struct{}

func (s catalogRecordMUS) Marshal(v CatalogRecord, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.Id), bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.TestType, bs[n:])
	n += ord.Bool.Marshal(v.Adaptive, bs[n:])
	n += ord.Bool.Marshal(v.Remote, bs[n:])
	n += ord.Bool.Marshal(v.DurationMinutes != nil, bs[n:])
	if v.DurationMinutes != nil {
		n += varint.Int.Marshal(*v.DurationMinutes, bs[n:])
	}
	n += ord.String.Marshal(v.Description, bs[n:])
	return n
}

func (s catalogRecordMUS) Unmarshal(bs []byte) (v CatalogRecord, n int, err error) {
	var (
		id      uint64
		n1      int
		present bool
	)
	id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Id = ID(id)

	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TestType, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Adaptive, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Remote, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	present, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if present {
		var minutes int
		minutes, n1, err = varint.Int.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
		v.DurationMinutes = &minutes
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s catalogRecordMUS) Size(v CatalogRecord) (size int) {
	size = varint.Uint64.Size(uint64(v.Id))
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.TestType)
	size += ord.Bool.Size(v.Adaptive)
	size += ord.Bool.Size(v.Remote)
	size += ord.Bool.Size(v.DurationMinutes != nil)
	if v.DurationMinutes != nil {
		size += varint.Int.Size(*v.DurationMinutes)
	}
	size += ord.String.Size(v.Description)
	return size
}

func (s catalogRecordMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	for i := 0; i < 3; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for i := 0; i < 2; i++ {
		n1, err = ord.Bool.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	var present bool
	present, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if present {
		n1, err = varint.Int.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
