/*
 * Aster
 *
 * Copyright 2026 The Aster Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package source tracks file identity and byte offsets and turns them into
human-readable line/column positions. Every token, AST node and diagnostic
in later stages carries a Span produced by this package.
*/
package source

import "fmt"

/*
FileID identifies a source file within a single compilation. Compilations
never share a Map, so FileID 0 is always valid once a file has been added.
*/
type FileID int

/*
Location is a single point in a source file: a byte offset plus the
1-based line and column it resolves to.
*/
type Location struct {
	File FileID
	Byte int
	Line int
	Col  int
}

/*
Span is a half-open-by-position range [Start, End] with End >= Start
lexicographically (by byte offset within the same file). Every token, AST
node and diagnostic carries one.
*/
type Span struct {
	Start Location
	End   Location
}

/*
Merge returns the smallest span containing both s and other: the minimum
start and the maximum end.
*/
func (s Span) Merge(other Span) Span {
	ret := s
	if other.Start.Byte < ret.Start.Byte {
		ret.Start = other.Start
	}
	if other.End.Byte > ret.End.Byte {
		ret.End = other.End
	}
	return ret
}

/*
Empty reports whether this span covers zero bytes.
*/
func (s Span) Empty() bool {
	return s.Start.Byte == s.End.Byte
}

/*
String returns a human-readable "line:col" representation anchored at
the span's start, suitable for diagnostic output.
*/
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Col)
}

/*
Map tracks line starts for one or more source files added with AddFile. It
converts byte offsets into Locations without rescanning the file on every
call.
*/
type Map struct {
	files []fileEntry
}

type fileEntry struct {
	name        string
	content     string
	lineStarts  []int // byte offset of the first byte of each line
}

/*
NewMap creates an empty source map.
*/
func NewMap() *Map {
	return &Map{}
}

/*
AddFile registers a new file with the map and returns its FileID. Line
starts are pre-computed in a single forward pass.
*/
func (m *Map) AddFile(name string, content string) FileID {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	m.files = append(m.files, fileEntry{name: name, content: content, lineStarts: starts})
	return FileID(len(m.files) - 1)
}

/*
Name returns the registered name of a file.
*/
func (m *Map) Name(f FileID) string {
	if int(f) < 0 || int(f) >= len(m.files) {
		return "<unknown>"
	}
	return m.files[f].name
}

/*
Content returns the registered content of a file.
*/
func (m *Map) Content(f FileID) string {
	if int(f) < 0 || int(f) >= len(m.files) {
		return ""
	}
	return m.files[f].content
}

/*
Locate resolves a byte offset within a file into a full Location using a
binary search over the precomputed line starts.
*/
func (m *Map) Locate(f FileID, byteOffset int) Location {
	if int(f) < 0 || int(f) >= len(m.files) {
		return Location{File: f, Byte: byteOffset, Line: 1, Col: 1}
	}

	starts := m.files[f].lineStarts

	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= byteOffset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return Location{
		File: f,
		Byte: byteOffset,
		Line: lo + 1,
		Col:  byteOffset - starts[lo] + 1,
	}
}

/*
SpanString renders a span as "name:line:col", the canonical prefix for a
diagnostic message (§7 "User-visible behaviour").
*/
func (m *Map) SpanString(s Span) string {
	return fmt.Sprintf("%s:%d:%d", m.Name(s.Start.File), s.Start.Line, s.Start.Col)
}
