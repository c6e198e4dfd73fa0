package utils

import (
	"strings"
)

// NormalizeDateRange aplica a regra "ambas ou nenhuma" ao intervalo de datas:
// strings vazias são tratadas como ausentes e o intervalo só vale quando as
// duas datas foram informadas
func NormalizeDateRange(startDate, endDate string) (string, string, bool) {
	start := strings.TrimSpace(startDate)
	end := strings.TrimSpace(endDate)

	if start == "" || end == "" {
		return "", "", false
	}

	return start, end, true
}
