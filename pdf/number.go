package pdf

import (
	"math"
	"strconv"
	"strings"
)

// formatNumber renders v using the canonical decimal policy required by the
// content-stream grammar: no locale, '.' as the decimal separator, trailing
// zeros (and a trailing '.') trimmed, no scientific notation, finite values
// only. Non-finite input is a caller bug (see Emitter.num); this function
// never itself fails since it is only reached once that check has passed.
func formatNumber(v float32) string {
	s := strconv.AppendFloat(nil, float64(v), 'f', -1, 32)
	str := string(s)
	if strings.ContainsRune(str, '.') {
		str = strings.TrimRight(str, "0")
		str = strings.TrimRight(str, ".")
	}
	if str == "" || str == "-" {
		str = "0"
	}
	return str
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
