package game

import "strconv"

// Render lays the position out as nine display strings: eight ranks
// from black's side down, then the file legend. Empty squares
// alternate '.' and ' ' in a checkered pattern. Equal positions
// render byte-identically.
func Render(b *Board) []string {
	var result []string
	var line []byte

	for ndx := 0; ndx < SquareCount; ndx++ {
		if ndx >= 8 && ndx%8 == 0 {
			result = append(result, string(line))
			line = line[:0]
		}
		if ndx%8 == 0 {
			line = append(line, strconv.Itoa(8-ndx/8)...)
			line = append(line, ' ')
		}
		line = append(line, ' ')
		if p := b.squares[ndx]; p.IsEmpty() {
			if (ndx/8+ndx%8)%2 == 1 {
				line = append(line, ' ')
			} else {
				line = append(line, '.')
			}
		} else {
			line = append(line, p.Symbol())
		}
		line = append(line, ' ')
	}
	result = append(result, string(line))
	result = append(result, "   A  B  C  D  E  F  G  H")

	return result
}
