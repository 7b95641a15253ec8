package component

// Hitbox is a collider box relative to the entity transform.
type Hitbox struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// ApplyTo copies the box into a physics collider and marks it for rebuild
// when it changed.
func (h Hitbox) ApplyTo(body *PhysicsBody) {
	if body == nil {
		return
	}
	if body.Width == h.Width && body.Height == h.Height && body.OffsetX == h.OffsetX && body.OffsetY == h.OffsetY {
		return
	}
	body.Width = h.Width
	body.Height = h.Height
	body.OffsetX = h.OffsetX
	body.OffsetY = h.OffsetY
	body.Dirty = true
}

// HitboxOf returns the collider box currently set on body.
func HitboxOf(body *PhysicsBody) Hitbox {
	if body == nil {
		return Hitbox{}
	}
	return Hitbox{Width: body.Width, Height: body.Height, OffsetX: body.OffsetX, OffsetY: body.OffsetY}
}
