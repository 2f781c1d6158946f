package base64

func decode(src []byte) ([]byte, error) {
	if src == nil {
		return nil, ErrStringEmpty
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	// Anything that is neither in the alphabet nor Pad is a
	// separator: line breaks, whitespace, or garbage.
	var sep int
	for _, c := range src {
		if !meaningful(c) {
			sep++
		}
	}
	chars := len(src) - sep
	if chars%4 != 0 {
		return nil, ErrCorrupt
	}

	// Count trailing padding, skipping separators.
	var pad int
	for i := len(src) - 1; i >= 0; i-- {
		c := src[i]
		if c == Pad {
			pad++
		} else if decodeTable[c] != invalid {
			break
		}
	}
	if pad > 2 {
		return nil, ErrCorrupt
	}

	size := chars/4*3 - pad
	dst, err := alloc(size)
	if err != nil {
		return nil, err
	}

	s, d := 0, 0
	for d < size {
		// Gather four meaningful characters. Pad contributes
		// zero bits.
		var v uint
		for j := 0; j < 4; s++ {
			c := src[s]
			if x := decodeTable[c]; x != invalid {
				v |= uint(x) << (18 - 6*j)
				j++
			} else if c == Pad {
				j++
			}
		}

		dst[d] = byte(v >> 16)
		d++
		if d < size {
			dst[d] = byte(v >> 8)
			d++
		}
		if d < size {
			dst[d] = byte(v)
			d++
		}
	}
	return dst, nil
}
