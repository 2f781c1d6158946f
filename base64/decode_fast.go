package base64

func decodeFast(src []byte) (dst []byte, err error) {
	if src == nil {
		return nil, ErrInputEmpty
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	// Input that breaks the preconditions can send the indices
	// below out of range.
	defer func() {
		if recover() != nil {
			dst, err = nil, ErrUnknown
		}
	}()

	// Trim separators from both ends.
	start, end := 0, len(src)-1
	for start < end && !meaningful(src[start]) {
		start++
	}
	for end > 0 && !meaningful(src[end]) {
		end--
	}

	var pad int
	if src[end] == Pad {
		pad = 1
		if end > 0 && src[end-1] == Pad {
			pad = 2
		}
	}

	// Either every line is LineLength characters followed by
	// CRLF, or there is only one line. Which one is decided by
	// looking at a single byte.
	chars := end - start + 1
	var sep int
	if len(src) > LineLength && src[LineLength] == '\r' {
		sep = chars / (LineLength + 2) * 2
	}

	// (chars-sep)*6/8 without the multiplication.
	n := chars - sep
	size := n/4*3 + n%4*3/4 - pad
	dst, err = alloc(size)
	if err != nil {
		return nil, err
	}

	s, d := start, 0
	for groups, even := 0, size/3*3; d < even; {
		v := uint(decodeTable[src[s+0]])<<18 |
			uint(decodeTable[src[s+1]])<<12 |
			uint(decodeTable[src[s+2]])<<6 |
			uint(decodeTable[src[s+3]])
		s += 4

		dst[d+0] = byte(v >> 16)
		dst[d+1] = byte(v >> 8)
		dst[d+2] = byte(v)
		d += 3

		if sep > 0 {
			groups++
			if groups == groupsPerLine {
				s += 2
				groups = 0
			}
		}
	}

	if d < size {
		// Final 2 or 3 characters, excluding padding.
		var v uint
		for j := 0; s <= end-pad; j++ {
			v |= uint(decodeTable[src[s]]) << (18 - 6*j)
			s++
		}
		for r := 16; d < size; r -= 8 {
			dst[d] = byte(v >> r)
			d++
		}
	}
	return dst, nil
}
