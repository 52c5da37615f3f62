package staticmap

import "github.com/UnknownOlympus/mapsnap/internal/models"

// Zoom bounds of the OSM tile pyramid accepted by the rendering service.
const (
	minZoom = 1
	maxZoom = 18
)

// pixelWidthMeters is the standardized 0.28 mm rendering pixel used in
// scale-denominator computations (OGC Styled Layer Descriptor).
const pixelWidthMeters = 0.00028

// scaleDenominators holds the OSM/Mapnik scale denominator for each zoom
// level, indexed by zoom.
var scaleDenominators = [maxZoom + 1]float64{
	1:  279541132.014,
	2:  139770566.007,
	3:  69885283.004,
	4:  34942641.502,
	5:  17471320.751,
	6:  8735660.375,
	7:  4367830.188,
	8:  2183915.094,
	9:  1091957.547,
	10: 545978.773,
	11: 272989.387,
	12: 136494.693,
	13: 68247.347,
	14: 34123.673,
	15: 17061.837,
	16: 8530.918,
	17: 4265.459,
	18: 2132.729583,
}

// resolveZoom maps a bounding radius in meters onto a zoom level. The map
// scale is the bounding diameter over the smaller image dimension at the
// standardized pixel width. The denominator table is scanned from the most
// detailed level down and the first matching level wins; a scale coarser
// than every denominator yields the minimum zoom. The result is clamped to
// the valid interval.
func resolveZoom(radiusMeters float64, size models.Size) int {
	mapWidth := size.Width
	if size.Height < mapWidth {
		mapWidth = size.Height
	}

	scale := radiusMeters * 2 / (float64(mapWidth) * pixelWidthMeters)

	zoom := minZoom
	for level := maxZoom; level >= minZoom; level-- {
		if scale < scaleDenominators[level] {
			zoom = level - 1
			break
		}

		if level > minZoom && scale > scaleDenominators[level] && scale < scaleDenominators[level-1] {
			zoom = level - 2
			break
		}
	}

	if zoom < minZoom {
		zoom = minZoom
	}

	if zoom > maxZoom {
		zoom = maxZoom
	}

	return zoom
}
