package document

// InsertAt inserts text at a rune offset and returns the new document along
// with the offset just past the inserted text.
func InsertAt(doc string, offset int, text string) (string, int) {
	offset = ClampOffset(doc, offset)
	if text == "" {
		return doc, offset
	}

	runes := []rune(doc)
	out := make([]rune, 0, len(runes)+Len(text))
	out = append(out, runes[:offset]...)
	out = append(out, []rune(text)...)
	out = append(out, runes[offset:]...)
	return string(out), offset + Len(text)
}

// DeleteRange removes the half-open rune range [start, end) and returns the
// new document along with the collapsed offset.
func DeleteRange(doc string, start, end int) (string, int) {
	start = ClampOffset(doc, start)
	end = ClampOffset(doc, end)
	if end < start {
		start, end = end, start
	}
	if start == end {
		return doc, start
	}

	runes := []rune(doc)
	out := make([]rune, 0, len(runes)-(end-start))
	out = append(out, runes[:start]...)
	out = append(out, runes[end:]...)
	return string(out), start
}
