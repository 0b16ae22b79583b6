package router

// History keeps the back and forward path stacks. Entries hold paths only;
// navigation state is never replayed from history.
type History struct {
	back    []string
	forward []string
}

// NewHistory creates empty history
func NewHistory() *History {
	return &History{}
}

// Push records from as the page to return to and drops the forward stack
func (h *History) Push(from string) {
	h.back = append(h.back, from)
	h.forward = h.forward[:0]
}

// Back pops the previous path. current is moved onto the forward stack.
func (h *History) Back(current string) (string, bool) {
	if len(h.back) == 0 {
		return "", false
	}
	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, current)
	return prev, true
}

// Forward undoes the last Back
func (h *History) Forward(current string) (string, bool) {
	if len(h.forward) == 0 {
		return "", false
	}
	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, current)
	return next, true
}

// CanGoBack reports whether Back would succeed
func (h *History) CanGoBack() bool {
	return len(h.back) > 0
}

// CanGoForward reports whether Forward would succeed
func (h *History) CanGoForward() bool {
	return len(h.forward) > 0
}

// Len returns the number of back entries
func (h *History) Len() int {
	return len(h.back)
}

// Clear removes all entries
func (h *History) Clear() {
	h.back = h.back[:0]
	h.forward = h.forward[:0]
}
