package controls

import "github.com/go-ember/ember/pkg/graphics"

// Alignment positions a control within its parent's viewport when the
// parent uses absolute layout. AlignNone leaves the control at its
// explicit position.
type Alignment uint8

const (
	AlignNone Alignment = 0

	AlignLeft    Alignment = 0x01
	AlignHCenter Alignment = 0x02
	AlignRight   Alignment = 0x04
	AlignTop     Alignment = 0x10
	AlignVCenter Alignment = 0x20
	AlignBottom  Alignment = 0x40

	AlignTopLeft      = AlignTop | AlignLeft
	AlignTopCenter    = AlignTop | AlignHCenter
	AlignTopRight     = AlignTop | AlignRight
	AlignCenterLeft   = AlignVCenter | AlignLeft
	AlignCenter       = AlignVCenter | AlignHCenter
	AlignCenterRight  = AlignVCenter | AlignRight
	AlignBottomLeft   = AlignBottom | AlignLeft
	AlignBottomCenter = AlignBottom | AlignHCenter
	AlignBottomRight  = AlignBottom | AlignRight
)

// ParseAlignment resolves a textual alignment name from declarative
// form files. Unknown names map to AlignNone.
func ParseAlignment(name string) Alignment {
	switch name {
	case "top-left":
		return AlignTopLeft
	case "top-center":
		return AlignTopCenter
	case "top-right":
		return AlignTopRight
	case "center-left":
		return AlignCenterLeft
	case "center":
		return AlignCenter
	case "center-right":
		return AlignCenterRight
	case "bottom-left":
		return AlignBottomLeft
	case "bottom-center":
		return AlignBottomCenter
	case "bottom-right":
		return AlignBottomRight
	}
	return AlignNone
}

// Layout positions the children of a container. Update is invoked
// during the container's geometry pass, after the container's own
// bounds are final; it must call Update on every child with the
// offset that realizes the computed position.
type Layout interface {
	Update(container *Container)
}

// AbsoluteLayout places each child at its own bounds, adjusted by the
// child's alignment relative to the container viewport.
type AbsoluteLayout struct{}

func NewAbsoluteLayout() *AbsoluteLayout { return &AbsoluteLayout{} }

func (l *AbsoluteLayout) Update(container *Container) {
	viewport := container.Base().viewportBounds
	for _, child := range container.children {
		b := child.Base()
		bounds := b.bounds
		pos := bounds.Origin()

		a := b.alignment
		margin := b.Margin()
		if a&AlignLeft != 0 {
			pos.X = margin.Left
		} else if a&AlignHCenter != 0 {
			pos.X = (viewport.Width - bounds.Width) / 2
		} else if a&AlignRight != 0 {
			pos.X = viewport.Width - bounds.Width - margin.Right
		}
		if a&AlignTop != 0 {
			pos.Y = margin.Top
		} else if a&AlignVCenter != 0 {
			pos.Y = (viewport.Height - bounds.Height) / 2
		} else if a&AlignBottom != 0 {
			pos.Y = viewport.Height - bounds.Height - margin.Bottom
		}

		child.Update(container, graphics.Offset{
			X: pos.X - bounds.X,
			Y: pos.Y - bounds.Y,
		})
	}
}

// VerticalLayout stacks children top to bottom, each offset by its
// margin. Child x positions are kept; alignment on the horizontal
// axis is honored.
type VerticalLayout struct {
	// Spacing is extra distance between consecutive children.
	Spacing float64

	// BottomUp reverses the stacking direction.
	BottomUp bool
}

func NewVerticalLayout() *VerticalLayout { return &VerticalLayout{} }

func (l *VerticalLayout) Update(container *Container) {
	viewport := container.Base().viewportBounds

	ordered := container.children
	if l.BottomUp {
		ordered = make([]Child, len(container.children))
		for i, child := range container.children {
			ordered[len(ordered)-1-i] = child
		}
	}

	y := 0.0
	for _, child := range ordered {
		b := child.Base()
		bounds := b.bounds
		margin := b.Margin()

		x := bounds.X
		a := b.alignment
		if a&AlignLeft != 0 {
			x = margin.Left
		} else if a&AlignHCenter != 0 {
			x = (viewport.Width - bounds.Width) / 2
		} else if a&AlignRight != 0 {
			x = viewport.Width - bounds.Width - margin.Right
		}

		y += margin.Top
		child.Update(container, graphics.Offset{
			X: x - bounds.X,
			Y: y - bounds.Y,
		})
		y += bounds.Height + margin.Bottom + l.Spacing
	}
}

// FlowLayout places children left to right, wrapping to a new row when
// a child would overflow the container viewport.
type FlowLayout struct {
	// HorizontalSpacing separates children within a row.
	HorizontalSpacing float64

	// VerticalSpacing separates rows.
	VerticalSpacing float64
}

func NewFlowLayout() *FlowLayout { return &FlowLayout{} }

func (l *FlowLayout) Update(container *Container) {
	viewport := container.Base().viewportBounds

	x, y := 0.0, 0.0
	rowHeight := 0.0
	for _, child := range container.children {
		b := child.Base()
		bounds := b.bounds
		margin := b.Margin()

		w := bounds.Width + margin.Left + margin.Right
		if x > 0 && x+w > viewport.Width {
			x = 0
			y += rowHeight + l.VerticalSpacing
			rowHeight = 0
		}

		child.Update(container, graphics.Offset{
			X: x + margin.Left - bounds.X,
			Y: y + margin.Top - bounds.Y,
		})

		x += w + l.HorizontalSpacing
		if h := bounds.Height + margin.Top + margin.Bottom; h > rowHeight {
			rowHeight = h
		}
	}
}
