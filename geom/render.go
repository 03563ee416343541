package geom

import (
	"image"

	"github.com/unixpickle/model3d/model2d"
)

// Rasterize renders the filled cells of a 2D view as unit squares and
// rasterizes the result to a grayscale image. Scale is the number of
// pixels per cell.
func Rasterize[T any](v *View[T], filled func(T) bool, scale float64) *image.Gray {
	solid := make(model2d.JoinedSolid, 0, v.size.X()*v.size.Y())
	it := v.Points()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		val, present := v.Get(p)
		if !present || !filled(val) {
			continue
		}
		solid = append(solid, model2d.NewRect(
			model2d.XY(float64(p.X()), float64(p.Y())),
			model2d.XY(float64(p.X()+1), float64(p.Y()+1)),
		))
	}
	if len(solid) == 0 {
		return image.NewGray(image.Rect(0, 0, 1, 1))
	}
	rast := &model2d.Rasterizer{Scale: scale}
	return rast.RasterizeSolid(solid)
}
