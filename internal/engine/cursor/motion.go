package cursor

// Motion identifies one of the closed set of cursor movements.
type Motion uint8

const (
	// MoveLeftWrap moves one column left, wrapping to the end of the
	// previous line at column zero.
	MoveLeftWrap Motion = iota
	// MoveRightWrap moves one column right, wrapping to column zero of
	// the next line at the last column.
	MoveRightWrap
	// MoveUp moves one row up.
	MoveUp
	// MoveDown moves one row down.
	MoveDown
	// MoveToStartOfLine moves to column zero.
	MoveToStartOfLine
	// MoveToEndOfLine moves to the last valid column.
	MoveToEndOfLine
	// MoveUpOnePage moves up by the viewport height in rows.
	MoveUpOnePage
	// MoveDownOnePage moves down by the viewport height in rows.
	MoveDownOnePage
)

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MoveLeftWrap:
		return "left-wrap"
	case MoveRightWrap:
		return "right-wrap"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case MoveToStartOfLine:
		return "line-start"
	case MoveToEndOfLine:
		return "line-end"
	case MoveUpOnePage:
		return "page-up"
	case MoveDownOnePage:
		return "page-down"
	default:
		return "unknown"
	}
}

// IsVertical returns true for the motions that change row and carry
// the sticky column across lines.
func (m Motion) IsVertical() bool {
	switch m {
	case MoveUp, MoveDown, MoveUpOnePage, MoveDownOnePage:
		return true
	default:
		return false
	}
}
