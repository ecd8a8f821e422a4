package zone

// UnknownZoneName - метка для ключа зоны без распознаваемых чисел
const UnknownZoneName = "Unknown"

// vocabulary - фиксированный словарь человекочитаемых названий зон.
// Названия чисто декоративные: смена словаря меняет исторические метки,
// что допустимо - ключ зоны остаётся единственным носителем семантики.
var vocabulary = []string{
	"Amber Harbor", "Birch Hollow", "Cedar Point", "Drift Meadow",
	"Ember Heights", "Fox Crossing", "Golden Quay", "Hazel Grove",
	"Iron Landing", "Juniper Fields", "Kestrel Ridge", "Lantern Bay",
	"Maple Commons", "North Hollow", "Opal Terrace", "Pine Verge",
	"Quiet Harbor", "Raven Court", "Silver Bend", "Thistle Walk",
	"Umber Valley", "Violet Marsh", "Willow Gate", "Yarrow Green",
	"Ashen Bluff", "Briar Knoll", "Cinder Lane", "Dove Haven",
	"Elm Corner", "Fern Rise", "Garnet Shore", "Heron Flats",
	"Ivy Square", "Jade Hollow", "Kite Meadow", "Larch Summit",
	"Moss Harbor", "Nettle Cove", "Oak Passage", "Pearl Bluff",
}

// Name детерминированно отображает ключ зоны в название из словаря.
// Из ключа извлекаются все целые числа (с учётом знака) и сворачиваются
// полиномиальным хэшем; тот же ключ всегда даёт ту же метку.
// Пустой или непарсящийся ключ даёт UnknownZoneName, ошибки невозможны.
func Name(zoneKey string) string {
	ints, ok := extractInts(zoneKey)
	if !ok {
		return UnknownZoneName
	}

	var h uint64
	for _, v := range ints {
		h = h*31 + uint64(v)
	}
	return vocabulary[h%uint64(len(vocabulary))]
}

// extractInts извлекает все целые числа из строки в порядке появления.
// Минус считается знаком, только если непосредственно предшествует цифре.
func extractInts(s string) ([]int64, bool) {
	var (
		out   []int64
		cur   int64
		inNum bool
		neg   bool
	)
	flush := func() {
		if inNum {
			if neg {
				cur = -cur
			}
			out = append(out, cur)
			cur, inNum, neg = 0, false, false
		}
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if !inNum {
				inNum = true
				neg = i > 0 && s[i-1] == '-'
			}
			cur = cur*10 + int64(c-'0')
		default:
			flush()
		}
	}
	flush()
	return out, len(out) > 0
}
