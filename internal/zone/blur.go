package zone

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/worldme/worldme/internal/models"
)

const (
	// DefaultBlurRadiusMeters - радиус блюра по умолчанию
	DefaultBlurRadiusMeters = 100.0

	// metersPerDegreeLat - примерная длина одного градуса широты
	metersPerDegreeLat = 111320.0

	// jitterFraction - доля размера ячейки, в пределах которой смещается
	// размытая точка относительно центра ячейки. Меньше 0.5, чтобы точка
	// гарантированно не выходила за границы ячейки.
	jitterFraction = 0.4

	// minCosLat - нижняя граница косинусной поправки у полюсов,
	// чтобы ширина ячейки по долготе оставалась конечной
	minCosLat = 0.01
)

// BlurredPoint - результат блюра: размытая координата и стабильный ключ зоны
type BlurredPoint struct {
	Latitude  float64
	Longitude float64
	ZoneKey   string
}

// Blur квантует координату в сетку с ячейкой ~radiusMeters и возвращает
// размытую точку внутри той же ячейки плюс детерминированный ключ зоны.
// Две точки в одной ячейке всегда дают один и тот же ключ; отображение
// намеренно многозначное и необратимое.
//
// Ширина ячейки по долготе считается через косинус широты центра широтной
// ячейки (а не исходной точки), иначе две точки одной ячейки могли бы
// получить разные индексы по долготе.
func Blur(lat, lng, radiusMeters float64) (BlurredPoint, error) {
	if !validCoordinate(lat, lng) {
		return BlurredPoint{}, fmt.Errorf("%w: lat=%v lng=%v", models.ErrInvalidCoordinate, lat, lng)
	}
	if math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) || radiusMeters <= 0 {
		return BlurredPoint{}, fmt.Errorf("%w: %v", models.ErrInvalidRadius, radiusMeters)
	}

	latCell := radiusMeters / metersPerDegreeLat
	latIdx := int64(math.Floor(lat / latCell))
	centerLat := (float64(latIdx) + 0.5) * latCell

	cosLat := math.Cos(centerLat * math.Pi / 180)
	if cosLat < minCosLat {
		cosLat = minCosLat
	}
	lngCell := radiusMeters / (metersPerDegreeLat * cosLat)
	lngIdx := int64(math.Floor(lng / lngCell))
	centerLng := (float64(lngIdx) + 0.5) * lngCell

	key := fmt.Sprintf("z%.0f:%d:%d", radiusMeters, latIdx, lngIdx)

	// Смещение детерминировано от ключа зоны: повторный вызов для той же
	// ячейки даёт ту же размытую точку, но центр ячейки не раскрывается.
	rng := rand.New(rand.NewSource(seedFromKey(key)))
	blurLat := centerLat + (rng.Float64()-0.5)*2*jitterFraction*latCell
	blurLng := centerLng + (rng.Float64()-0.5)*2*jitterFraction*lngCell

	return BlurredPoint{
		Latitude:  blurLat,
		Longitude: blurLng,
		ZoneKey:   key,
	}, nil
}

// Key возвращает только ключ зоны для координаты
func Key(lat, lng, radiusMeters float64) (string, error) {
	p, err := Blur(lat, lng, radiusMeters)
	if err != nil {
		return "", err
	}
	return p.ZoneKey, nil
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// seedFromKey сворачивает ключ зоны в seed для генератора смещения
func seedFromKey(key string) int64 {
	sum := sha256.Sum256([]byte(key))
	return int64(binary.BigEndian.Uint64(sum[:8]))
}
