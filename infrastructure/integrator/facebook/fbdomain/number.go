package fbdomain

import (
	"bytes"
	"strconv"

	"github.com/sirupsen/logrus"
)

// A Graph API devolve campos numéricos ora como número, ora como string
// ("spend":"12.34", "impressions":"1000"). Os tipos Flex* aceitam os dois
// formatos e tratam ausente/inválido como zero na fronteira de mapeamento

type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	value, ok := parseFlex(data)
	if !ok {
		*f = 0
		return nil
	}

	*f = FlexFloat(value)
	return nil
}

type FlexInt int64

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	value, ok := parseFlex(data)
	if !ok {
		*i = 0
		return nil
	}

	*i = FlexInt(value)
	return nil
}

func parseFlex(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}

	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			logrus.WithField("value", string(data)).Warn("graph: valor numérico inválido")
			return 0, false
		}
		if unquoted == "" {
			return 0, false
		}
		data = []byte(unquoted)
	}

	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		logrus.WithField("value", string(data)).Warn("graph: valor numérico inválido")
		return 0, false
	}

	return value, true
}
