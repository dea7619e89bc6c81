package model

// ScanLog keeps scanned SKUs in scan order. It only ever grows.
type ScanLog struct {
	items []Sku
}

func NewScanLogWithCapacity(capacity int) ScanLog {
	return ScanLog{items: make([]Sku, 0, capacity)}
}

func (l *ScanLog) Append(sku Sku) {
	l.items = append(l.items, sku)
}

func (l *ScanLog) GetItemsCopy() []Sku {
	items := make([]Sku, len(l.items))
	copy(items, l.items)
	return items
}

func (l *ScanLog) Len() int {
	return len(l.items)
}

func (l *ScanLog) Count(sku Sku) int {
	return CountOf(l.items, sku)
}

func CountOf(items []Sku, sku Sku) int {
	count := 0
	for _, item := range items {
		if item == sku {
			count++
		}
	}
	return count
}
