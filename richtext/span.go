package richtext

// InlineSpan is the closed tagged variant of the inline span tree: either a
// TextSpan or a WidgetSpan. Merged style/annotation are computed top-down
// during the visit and never mutated on the node itself.
type InlineSpan interface {
	isInlineSpan()
}

// TextSpan carries literal text, optionally followed by child spans. When
// both Text and Children are present, text emits first, then children, in
// order.
type TextSpan struct {
	Style      TextStyle
	Text       string
	Baseline   float32
	Children   []InlineSpan
	Annotation AnnotationBuilder
}

func (TextSpan) isInlineSpan() {}

// WidgetSpan embeds a single Widget as a leaf, flowed inline with
// surrounding text.
type WidgetSpan struct {
	Style      TextStyle
	Child      Widget
	Baseline   float32
	Annotation AnnotationBuilder
}

func (WidgetSpan) isInlineSpan() {}

// VisitFunc receives each leaf delivered by Visit: the originating span,
// its merged style, and the effective (nearest non-null, child-overrides-
// parent) annotation. Returning false short-circuits the walk.
type VisitFunc func(leaf InlineSpan, style TextStyle, annotation AnnotationBuilder) bool

// Visit performs a depth-first pre-order walk of root, merging style and
// resolving the effective annotation top-down, and delivers each leaf
// (non-empty TextSpan.Text, or WidgetSpan) to fn. A TextSpan with no Text
// and no Children delivers nothing; one with Text but empty Children
// delivers one leaf then stops. The walk stops early if fn returns false.
func Visit(root InlineSpan, parentStyle TextStyle, parentAnnotation AnnotationBuilder, fn VisitFunc) bool {
	switch s := root.(type) {
	case TextSpan:
		style := parentStyle.Merge(s.Style)
		annotation := parentAnnotation
		if s.Annotation != nil {
			annotation = s.Annotation
		}

		if s.Text != "" {
			if !fn(s, style, annotation) {
				return false
			}
		}
		for _, child := range s.Children {
			if !Visit(child, style, annotation, fn) {
				return false
			}
		}
		return true

	case WidgetSpan:
		style := parentStyle.Merge(s.Style)
		annotation := parentAnnotation
		if s.Annotation != nil {
			annotation = s.Annotation
		}
		return fn(s, style, annotation)

	default:
		return true
	}
}
