package thicket

// Anchors returns the horizontal and vertical anchors.
func (c *Control) Anchors() (horizontal, vertical Anchors) {
	return c.hAnchors, c.vAnchors
}

// SetAnchors sets the control's anchors and schedules a frame recompute.
func (c *Control) SetAnchors(horizontal, vertical Anchors) {
	c.hAnchors = horizontal
	c.vAnchors = vertical
	c.setFrameNeedsUpdateIfNeeded()
}

// Frame returns the control's rectangle in root frame space, recomputing it
// from the parent's frame and the anchors if it was invalidated.
// Panics if the control has no parent.
func (c *Control) Frame() Frame {
	if c.frameDirty {
		c.recalculateFrame()
	}
	return c.frame
}

// SetFrameNeedsUpdate invalidates the cached frame of c and its descendants.
// Panics if the control has no parent.
func (c *Control) SetFrameNeedsUpdate() {
	if c.parent == nil {
		panic("thicket: control without a parent does not need frame updates")
	}
	c.frameDirty = true
	for _, child := range c.children {
		child.setFrameNeedsUpdateIfNeeded()
	}
}

// setFrameNeedsUpdateIfNeeded skips controls that are already dirty. A dirty
// control never has clean descendants, so the cascade can stop there.
func (c *Control) setFrameNeedsUpdateIfNeeded() {
	if c.frameDirty {
		return
	}
	c.SetFrameNeedsUpdate()
}

func (c *Control) recalculateFrame() {
	if c.parent == nil {
		panic("thicket: cannot compute the frame of detached control " + quoteName(c))
	}
	pf := c.parent.Frame()
	old := c.frame
	c.frame = Frame{
		X: c.hAnchors.IntervalWithin(pf.X),
		Y: c.vAnchors.IntervalWithin(pf.Y),
	}
	c.frameDirty = false
	if c.frame != old && c.OnFrameChanged != nil {
		c.OnFrameChanged()
	}
}

// markSubtreeDirty sets frameDirty on c and all its descendants.
func markSubtreeDirty(c *Control) {
	c.frameDirty = true
	for _, child := range c.children {
		markSubtreeDirty(child)
	}
}
