package base64

func encode(src []byte, wrap bool) ([]byte, error) {
	if src == nil {
		return nil, ErrInputEmpty
	}
	if len(src) == 0 {
		return []byte{}, nil
	}

	n := len(src)
	if n/3+1 > maxLen/4 {
		return nil, ErrNoMemory
	}
	even := n / 3 * 3
	chars := (n + 2) / 3 * 4
	size := chars
	if wrap {
		size += (chars - 1) / LineLength * 2
	}
	dst, err := alloc(size)
	if err != nil {
		return nil, err
	}

	// Convert 3 -> 4, breaking the line after every
	// groupsPerLine groups unless only the final group
	// remains.
	d, groups := 0, 0
	for s := 0; s < even; s += 3 {
		v := uint(src[s])<<16 | uint(src[s+1])<<8 | uint(src[s+2])
		dst[d+0] = Alphabet[v>>18&0x3f]
		dst[d+1] = Alphabet[v>>12&0x3f]
		dst[d+2] = Alphabet[v>>6&0x3f]
		dst[d+3] = Alphabet[v&0x3f]
		d += 4

		if !wrap {
			continue
		}
		groups++
		if groups == groupsPerLine && d < size-2 {
			dst[d+0] = '\r'
			dst[d+1] = '\n'
			d += 2
			groups = 0
		}
	}

	// The missing low bits of a partial group are zero.
	switch n - even {
	case 2:
		v := uint(src[even])<<16 | uint(src[even+1])<<8
		dst[size-4] = Alphabet[v>>18&0x3f]
		dst[size-3] = Alphabet[v>>12&0x3f]
		dst[size-2] = Alphabet[v>>6&0x3f]
		dst[size-1] = Pad
	case 1:
		v := uint(src[even]) << 16
		dst[size-4] = Alphabet[v>>18&0x3f]
		dst[size-3] = Alphabet[v>>12&0x3f]
		dst[size-2] = Pad
		dst[size-1] = Pad
	}
	return dst, nil
}
