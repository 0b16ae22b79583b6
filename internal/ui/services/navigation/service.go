package navigation

// DefaultViewportHeight is used until the first window size arrives
const DefaultViewportHeight = 10

// Service moves a cursor over a list of Count rows and keeps it inside the
// visible window.
type Service struct {
	state State
}

// NewService creates a cursor over count rows
func NewService(count int) *Service {
	s := &Service{state: State{ViewportHeight: DefaultViewportHeight}}
	s.SetCount(count)
	return s
}

// Cursor returns the current row, or -1 when the list is empty
func (s *Service) Cursor() int {
	if s.state.Count == 0 {
		return -1
	}
	return s.state.Cursor
}

func (s *Service) ViewportOffset() int { return s.state.ViewportOffset }

func (s *Service) ViewportHeight() int { return s.state.ViewportHeight }

func (s *Service) Count() int { return s.state.Count }

// Window returns the half-open row range [start, end) that is visible
func (s *Service) Window() (int, int) {
	end := s.state.ViewportOffset + s.state.ViewportHeight
	if end > s.state.Count {
		end = s.state.Count
	}
	return s.state.ViewportOffset, end
}

// SetCount changes the number of rows, clamping the cursor
func (s *Service) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	s.state.Count = count
	s.state.Cursor = s.clampIndex(s.state.Cursor)
	if s.state.ViewportOffset > s.maxIndex() {
		s.state.ViewportOffset = s.maxIndex()
	}
	s.ensureVisible()
}

// SetViewportHeight updates the number of visible rows
func (s *Service) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	s.state.ViewportHeight = height
	s.ensureVisible()
}

// Navigate moves the cursor. It reports whether the cursor changed.
func (s *Service) Navigate(direction Direction) bool {
	old := s.state.Cursor

	switch direction {
	case DirectionUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.state.Cursor = s.clampIndex(s.state.Cursor - s.pageSize())
	case DirectionPageDown:
		s.state.Cursor = s.clampIndex(s.state.Cursor + s.pageSize())
	case DirectionHome:
		s.state.Cursor = 0
	case DirectionEnd:
		s.state.Cursor = s.maxIndex()
	}
	s.ensureVisible()

	return old != s.state.Cursor
}

// MoveToIndex moves the cursor to index, clamped to the list
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = s.clampIndex(index)
	s.ensureVisible()
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func (s *Service) maxIndex() int {
	if s.state.Count == 0 {
		return 0
	}
	return s.state.Count - 1
}

func (s *Service) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > s.maxIndex() {
		return s.maxIndex()
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
