package views

import (
	"strings"
)

// DotsWidth is the width of the navigation dots column
const DotsWidth = 3

// DotsTop returns the row of the first dot in a column of the given height,
// centering the dots vertically.
func DotsTop(count, height int) int {
	top := (height - (count*2 - 1)) / 2
	if top < 0 {
		return 0
	}
	return top
}

// DotAt maps a row inside the dots column onto a slide index
func DotAt(row, count, height int) (int, bool) {
	rel := row - DotsTop(count, height)
	if rel < 0 || rel%2 != 0 {
		return 0, false
	}
	index := rel / 2
	if index >= count {
		return 0, false
	}
	return index, true
}

// RenderDots renders one dot per slide, the active one highlighted, as a
// column of the given height.
func (r *Renderer) RenderDots(indicators []bool, height int) string {
	count := len(indicators)
	rows := make([]string, height)
	blank := strings.Repeat(" ", DotsWidth)
	for i := range rows {
		rows[i] = blank
	}

	top := DotsTop(count, height)
	for i, active := range indicators {
		row := top + i*2
		if row >= height {
			break
		}
		if active {
			rows[row] = " " + r.styles.DotActive.Render("●") + " "
		} else {
			rows[row] = " " + r.styles.Dot.Render("○") + " "
		}
	}
	return strings.Join(rows, "\n")
}
