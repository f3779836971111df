package metrics

// Business metric helpers. Services call these after a successful write; a
// nil Metrics receiver is tolerated so tests can skip wiring.

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	if m == nil {
		return
	}
	m.BoardsCreatedTotal.Inc()
}

// IncrementColumnCreated increments the column creation counter
func (m *Metrics) IncrementColumnCreated() {
	if m == nil {
		return
	}
	m.ColumnsCreatedTotal.Inc()
}

// IncrementCardCreated increments the card creation counter
func (m *Metrics) IncrementCardCreated() {
	if m == nil {
		return
	}
	m.CardsCreatedTotal.Inc()
}

// IncrementCardMoved increments the cross-column card move counter
func (m *Metrics) IncrementCardMoved() {
	if m == nil {
		return
	}
	m.CardsMovedTotal.Inc()
}

// IncrementCommentAdded increments the comment counter
func (m *Metrics) IncrementCommentAdded() {
	if m == nil {
		return
	}
	m.CommentsAddedTotal.Inc()
}

// AddRowsPurged records rows removed by the purge job for one table
func (m *Metrics) AddRowsPurged(table string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.RowsPurgedTotal.WithLabelValues(table).Add(float64(n))
}
