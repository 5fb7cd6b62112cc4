package window

// PopupStack is a LIFO of popup window ids; the last element is on top.
type PopupStack struct {
	ids []ID
}

func (p *PopupStack) Push(id ID) {
	p.ids = append(p.ids, id)
}

// Pop removes and returns the top id.
func (p *PopupStack) Pop() (ID, bool) {
	if len(p.ids) == 0 {
		return 0, false
	}
	id := p.ids[len(p.ids)-1]
	p.ids = p.ids[:len(p.ids)-1]
	return id, true
}

// Top returns the top id without removing it.
func (p *PopupStack) Top() (ID, bool) {
	if len(p.ids) == 0 {
		return 0, false
	}
	return p.ids[len(p.ids)-1], true
}

func (p *PopupStack) Len() int {
	return len(p.ids)
}

// IDs returns the stack bottom to top.
func (p *PopupStack) IDs() []ID {
	out := make([]ID, len(p.ids))
	copy(out, p.ids)
	return out
}
