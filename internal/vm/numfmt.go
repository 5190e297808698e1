package vm

import "strconv"

func formatNumber(n float64) string {
	if n != n {
		return "NaN"
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}
