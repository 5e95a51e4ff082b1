package size

// IsValid reports whether idx is a valid element index for sz.
func IsValid(sz Size, idx int) bool {
	return idx >= 0 && idx < sz.Full
}

// IsSameRow reports whether a and b lie in the same row.
func IsSameRow(a, b Location) bool { return a.Row() == b.Row() }

// IsSameCol reports whether a and b lie in the same column.
func IsSameCol(a, b Location) bool { return a.Col() == b.Col() }

// IsSameBlock reports whether a and b lie in the same block.
func IsSameBlock(a, b Location) bool { return a.Block() == b.Block() }

// IsSameRowRange reports whether every Location in locs shares begin's row.
func IsSameRowRange(begin Location, locs []Location) bool {
	for _, l := range locs {
		if !IsSameRow(begin, l) {
			return false
		}
	}

	return true
}

// IsSameColRange reports whether every Location in locs shares begin's column.
func IsSameColRange(begin Location, locs []Location) bool {
	for _, l := range locs {
		if !IsSameCol(begin, l) {
			return false
		}
	}

	return true
}

// IsSameBlockRange reports whether every Location in locs shares begin's block.
func IsSameBlockRange(begin Location, locs []Location) bool {
	for _, l := range locs {
		if !IsSameBlock(begin, l) {
			return false
		}
	}

	return true
}

// GetSameRow filters locs down to those sharing pivot's row.
func GetSameRow(pivot Location, locs []Location) []Location {
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if IsSameRow(pivot, l) {
			out = append(out, l)
		}
	}

	return out
}

// GetSameCol filters locs down to those sharing pivot's column.
func GetSameCol(pivot Location, locs []Location) []Location {
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if IsSameCol(pivot, l) {
			out = append(out, l)
		}
	}

	return out
}

// GetSameBlock filters locs down to those sharing pivot's block.
func GetSameBlock(pivot Location, locs []Location) []Location {
	out := make([]Location, 0, len(locs))
	for _, l := range locs {
		if IsSameBlock(pivot, l) {
			out = append(out, l)
		}
	}

	return out
}
