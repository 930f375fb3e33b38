package pdf

// ImageOrientation is an EXIF orientation tag value (1-8).
type ImageOrientation int

const (
	OrientationTopLeft     ImageOrientation = 1
	OrientationTopRight    ImageOrientation = 2
	OrientationBottomRight ImageOrientation = 3
	OrientationBottomLeft  ImageOrientation = 4
	OrientationLeftTop     ImageOrientation = 5
	OrientationRightTop    ImageOrientation = 6
	OrientationRightBottom ImageOrientation = 7
	OrientationLeftBottom  ImageOrientation = 8
)

// imageOrientationMatrix returns the six `cm` coefficients [a b c d e f]
// for placing an image of size (w, h) at (x, y) under the given EXIF
// orientation, per the fixed 8-entry table.
func imageOrientationMatrix(o ImageOrientation, x, y, w, h float32) (Matrix, error) {
	switch o {
	case OrientationTopLeft:
		return Matrix{w, 0, 0, h, x, y}, nil
	case OrientationTopRight:
		return Matrix{-w, 0, 0, h, w + x, y}, nil
	case OrientationBottomRight:
		return Matrix{-w, 0, 0, -h, w + x, h + y}, nil
	case OrientationBottomLeft:
		return Matrix{w, 0, 0, -h, x, h + y}, nil
	case OrientationLeftTop:
		return Matrix{0, -h, -w, 0, w + x, h + y}, nil
	case OrientationRightTop:
		return Matrix{0, -h, w, 0, x, h + y}, nil
	case OrientationRightBottom:
		return Matrix{0, h, w, 0, x, y}, nil
	case OrientationLeftBottom:
		return Matrix{0, h, -w, 0, w + x, y}, nil
	default:
		return Matrix{}, newError(Unsupported, "unknown image orientation: %d", o)
	}
}

// DrawImage places the image resource named name at (x, y) with size
// (w, h), oriented per o. The resource is registered with the page (and
// therefore available in the output) idempotently by ResourceRegistry.
func (e *Emitter) DrawImage(name string, x, y, w, h float32, o ImageOrientation) {
	m, err := imageOrientationMatrix(o, x, y, w, h)
	if err != nil {
		e.SetError(err)
		return
	}

	e.SaveContext()
	e.SetTransform(m)
	e.outf("/%s Do", name)
	e.RestoreContext()

	if e.registry != nil {
		e.registry.MarkImageUsed(name)
	}
}
