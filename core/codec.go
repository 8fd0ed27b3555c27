package core

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// IDMUS is the MUS serializer for ID.
var IDMUS = idMUS{}

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

// SummaryMUS is the MUS serializer for Summary.
// Field order: PublicationId, Title, Text, Model, CreatedAt (unix micros).
var SummaryMUS = summaryMUS{}

type summaryMUS struct{}

func (s summaryMUS) Marshal(v Summary, bs []byte) (n int) {
	n = IDMUS.Marshal(v.PublicationId, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Text, bs[n:])
	n += ord.String.Marshal(v.Model, bs[n:])
	return n + varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
}

func (s summaryMUS) Unmarshal(bs []byte) (v Summary, n int, err error) {
	v.PublicationId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Model, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CreatedAt = time.UnixMicro(micros).UTC()
	return
}

func (s summaryMUS) Size(v Summary) (size int) {
	size = IDMUS.Size(v.PublicationId)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Text)
	size += ord.String.Size(v.Model)
	return size + varint.Int64.Size(v.CreatedAt.UnixMicro())
}
