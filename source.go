package formlang

import (
	"fmt"
	"sort"
)

// FileID identifies a loaded source unit.
type FileID int32

// CharCount packs (file id, offset) into one 64-bit word, the same
// value a Pair's Info() carries. High bits are the file id, low
// charCountOffsetBits bits the in-file byte offset — enough headroom
// for the sizes this core ever sees in one translation unit.
type CharCount int64

const (
	charCountOffsetBits = 20
	charCountOffsetMask = (1 << charCountOffsetBits) - 1
)

func PackCharCount(file FileID, offset int) CharCount {
	return CharCount(int64(file)<<charCountOffsetBits | int64(offset&charCountOffsetMask))
}

func (c CharCount) File() FileID { return FileID(int64(c) >> charCountOffsetBits) }
func (c CharCount) Offset() int  { return int(int64(c) & charCountOffsetMask) }

// Location is a 1-based line/column position, resolved lazily from a
// CharCount via a per-file LineIndex. Scanning and column-width tables
// are the lexer's job; this is the minimal
// surface the core's error reporting needs from that external
// collaborator.
type Location struct {
	File   FileID
	Line   int32
	Column int32
}

func (l Location) String() string { return fmt.Sprintf("%d:%d", l.Line, l.Column) }

// LineIndex converts byte offsets within one file's source to
// line/column pairs, using a binary search over cached line-start offsets, generalized
// from byte cursors to the packed CharCount this core carries on every Pair.
type LineIndex struct {
	file      FileID
	lineStart []int
}

func NewLineIndex(file FileID, input []byte) *LineIndex {
	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &LineIndex{file: file, lineStart: lineStart}
}

func (li *LineIndex) Locate(offset int) Location {
	if offset < 0 {
		offset = 0
	}
	idx := sort.Search(len(li.lineStart), func(i int) bool {
		return li.lineStart[i] > offset
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return Location{
		File:   li.file,
		Line:   int32(idx + 1),
		Column: int32(offset-li.lineStart[idx]) + 1,
	}
}

// SourceTable resolves CharCounts to Locations across every loaded
// file, threaded on Context rather than kept as a package global.
type SourceTable struct {
	names   []string
	indexes []*LineIndex
}

func NewSourceTable() *SourceTable { return &SourceTable{} }

func (st *SourceTable) AddFile(name string, input []byte) FileID {
	id := FileID(len(st.names))
	st.names = append(st.names, name)
	st.indexes = append(st.indexes, NewLineIndex(id, input))
	return id
}

func (st *SourceTable) Name(id FileID) string {
	if int(id) < 0 || int(id) >= len(st.names) {
		return "<unknown>"
	}
	return st.names[id]
}

func (st *SourceTable) Locate(c CharCount) Location {
	f := c.File()
	if int(f) < 0 || int(f) >= len(st.indexes) {
		return Location{}
	}
	return st.indexes[f].Locate(c.Offset())
}
